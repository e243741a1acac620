// file: internal/cli/validator.go
package cli

import (
	"fmt"
	"regexp"
	"strings"

	"galgen/internal/cmdline"
	"galgen/internal/formats"
)

// Validator checks an answer and returns its canonical form.
type Validator func(string) (string, error)

// YesNoSynonyms maps the accepted spellings of a yes/no answer onto y or n.
var YesNoSynonyms = map[string]string{
	"yes":   "y",
	"no":    "n",
	"true":  "y",
	"false": "n",
	"on":    "y",
	"off":   "n",
}

var toolIDRe = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)

// Chain runs validators in order, feeding each the previous result.
func Chain(vs ...Validator) Validator {
	return func(s string) (string, error) {
		var err error
		for _, v := range vs {
			if s, err = v(s); err != nil {
				return "", err
			}
		}
		return s, nil
	}
}

// Clean trims and lower-cases the answer.
func Clean(s string) (string, error) {
	return strings.ToLower(strings.TrimSpace(s)), nil
}

// Synonyms replaces known alternative spellings.
func Synonyms(m map[string]string) Validator {
	return func(s string) (string, error) {
		if canon, ok := m[s]; ok {
			return canon, nil
		}
		return s, nil
	}
}

// Vocab only accepts one of the allowed words.
func Vocab(allowed ...string) Validator {
	return func(s string) (string, error) {
		for _, a := range allowed {
			if s == a {
				return s, nil
			}
		}
		return "", fmt.Errorf("I don't understand '%s'", s)
	}
}

// Nonblank rejects empty and whitespace-only answers.
func Nonblank(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("can't be a blank string")
	}
	return s, nil
}

// Optional lets a blank answer through and applies v otherwise.
func Optional(v Validator) Validator {
	return func(s string) (string, error) {
		if strings.TrimSpace(s) == "" {
			return "", nil
		}
		return v(s)
	}
}

// YesNo accepts y, n and their synonyms.
func YesNo() Validator {
	return Chain(Clean, Synonyms(YesNoSynonyms), Vocab("y", "n"))
}

// ShortChoice accepts a single letter out of choices, e.g. "iop".
func ShortChoice(choices string) Validator {
	letters := strings.Split(choices, "")
	return Chain(Clean, Vocab(letters...))
}

// ToolID accepts identifiers made of letters, digits, dots, dashes and
// underscores.
func ToolID(s string) (string, error) {
	if !toolIDRe.MatchString(s) {
		return "", fmt.Errorf("'%s' is not a valid tool id", s)
	}
	return s, nil
}

// Commandline accepts an example commandline that classifies cleanly.
// The answer is returned unchanged.
func Commandline(s string) (string, error) {
	if _, err := cmdline.Parse(s); err != nil {
		return "", err
	}
	return s, nil
}

// Format accepts a format name known to r.
func Format(r *formats.Resolver) Validator {
	return Chain(Clean, func(s string) (string, error) {
		if !r.IsFormat(s) {
			return "", fmt.Errorf("unknown format '%s' (known: %s)", s, strings.Join(r.Formats(), ", "))
		}
		return s, nil
	})
}

// CommandlineHelp describes the shape of commandline galgen understands.
const CommandlineHelp = `
An example commandline is the executable, optionally preceded by an
interpreter (python, perl or ruby), then any options, then the trailing
arguments, and finally an optional '> file' capturing the output.
Options look like -v, --verbose or single letters before the first
argument. Forms like --foo=bar are not supported.`

// RoleHelp explains the answers to the argument role question.
const RoleHelp = `For each argument answer i (input file), o (output file) or
p (parameter).`
