// file: internal/cmdline/classifier.go

package cmdline

import (
	"path/filepath"
	"regexp"
	"strings"
)

// RedirectOut is the shell output redirection marker. It must stand alone
// as a token to be recognised.
const RedirectOut = ">"

var (
	// dashedOptionRe matches -x, -foo, --foo, --foo-bar, --in.file.
	dashedOptionRe = regexp.MustCompile(`^--?[\w.][\w.-]*$`)
	// bareFlagRe matches single letter flags as used by tar or ps.
	bareFlagRe = regexp.MustCompile(`^[A-Za-z]$`)
)

// Classify matches a token sequence against the invocation grammar:
//
//	invocation  = executable option* argument* [ ">" filename ]
//	executable  = interpreter script | script.(py|pl|rb) | program
//
// The pass is left to right and never backtracks. It fails with a
// *ClassificationError and no partial result.
func Classify(tokens []string) (*Invocation, error) {
	exe, consumed, err := classifyExecutable(tokens)
	if err != nil {
		return nil, err
	}

	args, captured, err := splitCapturedOutput(tokens[consumed:], consumed)
	if err != nil {
		return nil, err
	}

	for i, tok := range args {
		if isValueAttached(tok) {
			return nil, tokenError(ReasonUnsupportedOptionForm, tok, consumed+i)
		}
	}

	options, trailing := partitionOptions(args)

	return &Invocation{
		Executable:        exe,
		Options:           options,
		TrailingArguments: trailing,
		CapturedOutput:    captured,
	}, nil
}

// classifyExecutable recognises the one or two leading tokens naming the
// program and returns how many tokens it consumed.
func classifyExecutable(tokens []string) (Executable, int, error) {
	if len(tokens) == 0 || tokens[0] == RedirectOut {
		return Executable{}, 0, classificationError(ReasonMissingExecutable)
	}

	first := tokens[0]
	if interp, ok := interpreterVocab[strings.ToLower(first)]; ok {
		if len(tokens) < 2 || tokens[1] == RedirectOut {
			return Executable{}, 0, classificationError(ReasonMissingExecutable)
		}
		return Executable{Name: tokens[1], Interpreter: interp, InterpreterToken: first}, 2, nil
	}

	if interp, ok := scriptExtensions[strings.ToLower(filepath.Ext(first))]; ok {
		return Executable{Name: first, Interpreter: interp}, 1, nil
	}

	return Executable{Name: first}, 1, nil
}

// splitCapturedOutput removes a trailing "> filename" pair from rest.
// offset is the position of rest[0] in the full token stream.
func splitCapturedOutput(rest []string, offset int) ([]string, string, error) {
	idx := -1
	for i, tok := range rest {
		if tok == RedirectOut {
			idx = i
			break
		}
	}
	if idx < 0 {
		return rest, "", nil
	}

	last := len(rest) - 1
	if idx != last-1 || rest[last] == RedirectOut {
		return nil, "", tokenError(ReasonDanglingRedirection, RedirectOut, offset+idx)
	}
	return rest[:idx], rest[last], nil
}

// partitionOptions splits args at the first token that cannot be an
// option. Everything from that token on is a trailing argument.
func partitionOptions(args []string) ([]string, []string) {
	i := 0
	for i < len(args) {
		if bareFlagRe.MatchString(args[i]) {
			// A run of bare letters is only a flag run when it is not
			// followed by a positional token.
			j := i
			for j < len(args) && bareFlagRe.MatchString(args[j]) {
				j++
			}
			if j < len(args) && !dashedOptionRe.MatchString(args[j]) {
				break
			}
			i = j
			continue
		}
		if !dashedOptionRe.MatchString(args[i]) {
			break
		}
		i++
	}

	options := append([]string{}, args[:i]...)
	trailing := append([]string{}, args[i:]...)
	return options, trailing
}

// isValueAttached reports option tokens of the form --foo=bar or -n=3.
func isValueAttached(tok string) bool {
	return strings.HasPrefix(tok, "-") && strings.Contains(tok, "=")
}

// IsOptionShaped reports whether tok has the shape of an option when seen
// on its own: a dashed flag or a single letter.
func IsOptionShaped(tok string) bool {
	return dashedOptionRe.MatchString(tok) || bareFlagRe.MatchString(tok)
}
