// file: internal/cmdline/errors.go

package cmdline

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks by callers that only care about the
// category of a failure.
var (
	ErrMalformedInput = errors.New("malformed commandline")
	ErrClassification = errors.New("cannot classify commandline")
)

// Reasons reported by ClassificationError.
const (
	ReasonMissingExecutable     = "missing executable"
	ReasonDanglingRedirection   = "dangling redirection"
	ReasonUnsupportedOptionForm = "unsupported option form"
)

// MalformedInputError is returned by Tokenize when the raw commandline
// cannot be split, typically because of unbalanced quoting.
type MalformedInputError struct {
	Input string
	Err   error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed commandline %q: %v", e.Input, e.Err)
}

func (e *MalformedInputError) Unwrap() []error {
	return []error{ErrMalformedInput, e.Err}
}

// ClassificationError is returned by Classify when the token stream does
// not match the invocation grammar.
type ClassificationError struct {
	Reason string
	// Token is the offending token, empty when the failure is about a
	// missing token.
	Token string
	// Position is the index of Token in the stream, or -1.
	Position int
}

func (e *ClassificationError) Error() string {
	if e.Token == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %q at position %d", e.Reason, e.Token, e.Position)
}

func (e *ClassificationError) Is(target error) bool {
	return target == ErrClassification
}

func classificationError(reason string) *ClassificationError {
	return &ClassificationError{Reason: reason, Position: -1}
}

func tokenError(reason, token string, pos int) *ClassificationError {
	return &ClassificationError{Reason: reason, Token: token, Position: pos}
}
