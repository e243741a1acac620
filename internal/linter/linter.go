// file: internal/linter/linter.go

package linter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"galgen/internal/cmdline"
	"galgen/internal/logger"
	"galgen/internal/metrics"
)

// ErrLintFailed is returned when at least one commandline does not classify.
var ErrLintFailed = errors.New("linting failed")

// Stdin is the file name that makes LintFile read standard input.
const Stdin = "-"

// Linter classifies files of example commandlines, one per line.
type Linter struct {
	Logger  *logger.Logger
	Metrics *metrics.Metrics
	stdin   io.Reader
}

// New creates a new Linter. m may be nil.
func New(log *logger.Logger, m *metrics.Metrics) *Linter {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Linter{
		Logger:  log,
		Metrics: m,
		stdin:   os.Stdin,
	}
}

// SetInput replaces the reader used when LintFile is given "-".
func (l *Linter) SetInput(r io.Reader) {
	l.stdin = r
}

// LintFile lints the file at path, or standard input when path is "-".
func (l *Linter) LintFile(path string) (Summary, error) {
	if path == Stdin {
		return l.LintReader("<stdin>", l.stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return l.LintReader(path, f)
}

// LintReader lints every line of r. Blank lines and lines starting with #
// are skipped. The summary is complete even when ErrLintFailed is returned.
func (l *Linter) LintReader(name string, r io.Reader) (Summary, error) {
	startTime := time.Now()
	summary := Summary{Source: name, Results: []Result{}}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result := l.lintLine(lineNo, line)
		summary.Total++
		if result.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read %s: %w", name, err)
	}

	elapsed := time.Since(startTime)
	summary.DurationMs = elapsed.Milliseconds()
	if l.Metrics != nil {
		l.Metrics.SetLintDuration(elapsed.Seconds())
	}

	l.Logger.Info("lint finished",
		"source", name,
		"total", summary.Total,
		"passed", summary.Passed,
		"failed", summary.Failed)

	if summary.Failed > 0 {
		return summary, ErrLintFailed
	}
	return summary, nil
}

func (l *Linter) lintLine(lineNo int, line string) Result {
	result := Result{Line: lineNo, Commandline: line}

	inv, err := cmdline.Parse(line)
	if err != nil {
		result.Error = err.Error()
		var ce *cmdline.ClassificationError
		if errors.As(err, &ce) {
			result.Reason = ce.Reason
		}
		if l.Metrics != nil {
			l.Metrics.ObserveError(err)
		}
		l.Logger.Debug("commandline rejected", "line", lineNo, "error", err)
		return result
	}

	result.Passed = true
	result.Invocation = inv
	if l.Metrics != nil {
		l.Metrics.ObserveInvocation(inv)
	}
	return result
}

// PrintSummary writes one PASS or FAIL line per result followed by totals.
func PrintSummary(w io.Writer, summary Summary) {
	fmt.Fprintf(w, "▶ LINTING commandlines in %s\n\n", summary.Source)
	for _, r := range summary.Results {
		if r.Passed {
			fmt.Fprintf(w, "✓ PASS: line %d: %s\n", r.Line, r.Commandline)
		} else {
			fmt.Fprintf(w, "✖ FAIL: line %d: %s\n  Error: %s\n", r.Line, r.Commandline, r.Error)
		}
	}

	if summary.Failed > 0 {
		fmt.Fprintf(w, "\n%d of %d commandlines failed.\n", summary.Failed, summary.Total)
		return
	}
	fmt.Fprintf(w, "\nLinting complete. All %d commandlines are valid.\n", summary.Total)
}
