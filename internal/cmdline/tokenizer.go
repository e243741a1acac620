// file: internal/cmdline/tokenizer.go

package cmdline

import (
	"strings"

	"github.com/google/shlex"
)

// Tokenize splits a raw example commandline into shell words. Single and
// double quoted substrings form one word with the quotes removed. A '#'
// is an ordinary character, even at the start of a word. A blank
// commandline yields no words and no error.
func Tokenize(raw string) ([]string, error) {
	words, err := shlex.Split(literalHashes(raw))
	if err != nil {
		return nil, &MalformedInputError{Input: raw, Err: err}
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

// literalHashes escapes every unquoted '#' that begins a word so the
// lexer does not treat it as the start of a comment.
func literalHashes(raw string) string {
	if !strings.ContainsRune(raw, '#') {
		return raw
	}

	var (
		b         strings.Builder
		quote     rune
		escaped   bool
		wordStart = true
	)
	b.Grow(len(raw) + 4)
	for _, r := range raw {
		switch {
		case escaped:
			escaped = false
			wordStart = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			}
		case quote == '"':
			if r == '\\' {
				escaped = true
			} else if r == '"' {
				quote = 0
			}
		case r == '\\':
			escaped = true
			wordStart = false
		case r == '\'' || r == '"':
			quote = r
			wordStart = false
		case strings.ContainsRune(" \t\r\n", r):
			wordStart = true
		case r == '#' && wordStart:
			b.WriteByte('\\')
			wordStart = false
		default:
			wordStart = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Parse tokenizes and classifies raw in one step.
func Parse(raw string) (*Invocation, error) {
	tokens, err := Tokenize(raw)
	if err != nil {
		return nil, err
	}
	return Classify(tokens)
}
