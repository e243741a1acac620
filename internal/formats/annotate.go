// file: internal/formats/annotate.go

package formats

import (
	"regexp"

	"galgen/internal/cmdline"
)

// Role is the suggested purpose of a trailing argument.
type Role string

const (
	RoleUnknown Role = ""
	RoleInput   Role = "input"
	RoleOutput  Role = "output"
	RoleParam   Role = "parameter"
)

var (
	filenameRe   = regexp.MustCompile(`^[\w.-]+\.[A-Za-z]\w*$`)
	inputNameRe  = regexp.MustCompile(`(?i)^(in|input)\b`)
	outputNameRe = regexp.MustCompile(`(?i)^(out|output)\b`)
)

// LooksLikeFilename reports tokens shaped like name.ext.
func LooksLikeFilename(tok string) bool {
	return filenameRe.MatchString(tok)
}

// SuggestRole guesses input or output from the leading word of a token,
// e.g. "input.fa" or "out.tsv".
func SuggestRole(tok string) Role {
	switch {
	case inputNameRe.MatchString(tok):
		return RoleInput
	case outputNameRe.MatchString(tok):
		return RoleOutput
	default:
		return RoleUnknown
	}
}

// Annotation is a review hint for one positional token of an invocation.
type Annotation struct {
	// Position is the index among trailing arguments, or -1 for the
	// captured output.
	Position int    `json:"position" yaml:"position"`
	Token    string `json:"token" yaml:"token"`
	Role     Role   `json:"role,omitempty" yaml:"role,omitempty"`
	Format   string `json:"format,omitempty" yaml:"format,omitempty"`
	IsFile   bool   `json:"isFile" yaml:"isFile"`
	Captured bool   `json:"captured,omitempty" yaml:"captured,omitempty"`
}

// Annotate produces hints for each trailing argument and for the captured
// output. The invocation itself is left untouched.
func Annotate(inv *cmdline.Invocation, r *Resolver) []Annotation {
	annotations := make([]Annotation, 0, len(inv.TrailingArguments)+1)

	for i, arg := range inv.TrailingArguments {
		a := Annotation{
			Position: i,
			Token:    arg,
			Role:     SuggestRole(arg),
			IsFile:   LooksLikeFilename(arg),
		}
		if a.IsFile {
			a.Format, _ = r.Lookup(arg)
		}
		annotations = append(annotations, a)
	}

	if inv.HasCapturedOutput() {
		a := Annotation{
			Position: -1,
			Token:    inv.CapturedOutput,
			Role:     RoleOutput,
			IsFile:   true,
			Captured: true,
		}
		a.Format, _ = r.Lookup(inv.CapturedOutput)
		annotations = append(annotations, a)
	}

	return annotations
}
