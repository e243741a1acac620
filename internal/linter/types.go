// file: internal/linter/types.go

package linter

import (
	"galgen/internal/cmdline"
)

// Result represents the outcome of classifying a single example commandline.
type Result struct {
	Line        int                 `json:"line"`
	Commandline string              `json:"commandline"`
	Passed      bool                `json:"passed"`
	Error       string              `json:"error,omitempty"`
	Reason      string              `json:"reason,omitempty"`
	Invocation  *cmdline.Invocation `json:"invocation,omitempty"`
}

// Summary aggregates all results for one input.
type Summary struct {
	Source     string   `json:"source"`
	Total      int      `json:"total"`
	Passed     int      `json:"passed"`
	Failed     int      `json:"failed"`
	DurationMs int64    `json:"duration_ms"`
	Results    []Result `json:"results"`
}
