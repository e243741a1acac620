// file: internal/cmdline/types.go

package cmdline

import (
	"strings"
)

// Kind identifies the role a token plays in an example invocation.
type Kind int

const (
	KindExecutable Kind = iota
	KindInterpreter
	KindOption
	KindArgument
	KindCapturedOutput
)

func (k Kind) String() string {
	switch k {
	case KindExecutable:
		return "executable"
	case KindInterpreter:
		return "interpreter"
	case KindOption:
		return "option"
	case KindArgument:
		return "argument"
	case KindCapturedOutput:
		return "captured_output"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Interpreter is a script interpreter from the fixed vocabulary, or
// InterpreterNone for compiled executables.
type Interpreter string

const (
	InterpreterNone   Interpreter = ""
	InterpreterPython Interpreter = "python"
	InterpreterPerl   Interpreter = "perl"
	InterpreterRuby   Interpreter = "ruby"
)

// interpreterVocab is the set of interpreter names recognised as a
// leading token.
var interpreterVocab = map[string]Interpreter{
	"python": InterpreterPython,
	"perl":   InterpreterPerl,
	"ruby":   InterpreterRuby,
}

// scriptExtensions maps script file extensions to the interpreter that
// runs them.
var scriptExtensions = map[string]Interpreter{
	".py": InterpreterPython,
	".pl": InterpreterPerl,
	".rb": InterpreterRuby,
}

// Interpreters returns the interpreter vocabulary in a stable order.
func Interpreters() []Interpreter {
	return []Interpreter{InterpreterPython, InterpreterPerl, InterpreterRuby}
}

// Valid reports whether i is none or a member of the vocabulary.
func (i Interpreter) Valid() bool {
	if i == InterpreterNone {
		return true
	}
	_, ok := interpreterVocab[string(i)]
	return ok
}

// Token is a single classified unit of an invocation.
type Token struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
	// Meta carries the interpreter name for the executable token.
	Meta string `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Executable is the program being wrapped, plus the interpreter that
// runs it when it is a script.
type Executable struct {
	Name        string      `json:"name" yaml:"name"`
	Interpreter Interpreter `json:"interpreter,omitempty" yaml:"interpreter,omitempty"`
	// InterpreterToken is the interpreter word as written when it appeared
	// as its own token. It is empty when the interpreter was inferred from
	// the script extension.
	InterpreterToken string `json:"interpreterToken,omitempty" yaml:"interpreterToken,omitempty"`
}

// ExplicitInterpreter reports whether the interpreter was named on the
// commandline rather than inferred.
func (e Executable) ExplicitInterpreter() bool {
	return e.InterpreterToken != ""
}

// Invocation is the structured classification of one example commandline.
// It is built once by Classify and must be treated as read-only.
type Invocation struct {
	Executable        Executable `json:"executable" yaml:"executable"`
	Options           []string   `json:"options" yaml:"options"`
	TrailingArguments []string   `json:"trailingArguments" yaml:"trailingArguments"`
	CapturedOutput    string     `json:"capturedOutput,omitempty" yaml:"capturedOutput,omitempty"`
}

// HasCapturedOutput reports whether the invocation ends in a redirection.
func (inv *Invocation) HasCapturedOutput() bool {
	return inv.CapturedOutput != ""
}

// Tokens returns the classified tokens in source order.
func (inv *Invocation) Tokens() []Token {
	tokens := make([]Token, 0, 3+len(inv.Options)+len(inv.TrailingArguments))
	if inv.Executable.ExplicitInterpreter() {
		tokens = append(tokens, Token{Kind: KindInterpreter, Text: inv.Executable.InterpreterToken})
	}
	tokens = append(tokens, Token{
		Kind: KindExecutable,
		Text: inv.Executable.Name,
		Meta: string(inv.Executable.Interpreter),
	})
	for _, opt := range inv.Options {
		tokens = append(tokens, Token{Kind: KindOption, Text: opt})
	}
	for _, arg := range inv.TrailingArguments {
		tokens = append(tokens, Token{Kind: KindArgument, Text: arg})
	}
	if inv.HasCapturedOutput() {
		tokens = append(tokens, Token{Kind: KindCapturedOutput, Text: inv.CapturedOutput})
	}
	return tokens
}

// String renders the invocation back into a commandline that Tokenize
// splits into the same words.
func (inv *Invocation) String() string {
	var words []string
	for _, tok := range inv.Tokens() {
		if tok.Kind == KindCapturedOutput {
			words = append(words, RedirectOut)
		}
		words = append(words, quote(tok.Text))
	}
	return strings.Join(words, " ")
}

// quote wraps s in single quotes when splitting would otherwise change it.
func quote(s string) string {
	if s == "" {
		return "''"
	}
	if words, err := Tokenize(s); err == nil && len(words) == 1 && words[0] == s {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
