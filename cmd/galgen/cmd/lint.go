// file: cmd/galgen/cmd/lint.go
package cmd

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"galgen/internal/linter"
	"galgen/internal/metrics"
)

func newLintCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "lint --file <examples.txt>",
		Short: "Classify a file of example commandlines, one per line",
		Long: `The lint command reads example commandlines, one per line, and checks that each
one classifies cleanly. Blank lines and lines starting with # are skipped. Use
"-" to read standard input. The command fails when any line fails, which makes
it suitable for CI pipelines.`,
		RunE: runLint,
	}

	c.Flags().StringP("file", "f", "", "File of example commandlines, or - for stdin (required)")
	c.Flags().String("output", "pretty", "Output format: pretty or json")
	c.Flags().String("metrics-file", "", "Write classification metrics to this file in Prometheus text format")
	c.MarkFlagRequired("file")
	return c
}

func runLint(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	outputFormat, _ := cmd.Flags().GetString("output")
	metricsFile, _ := cmd.Flags().GetString("metrics-file")

	if outputFormat != "pretty" && outputFormat != "json" {
		return fmt.Errorf("invalid output format: %s (use pretty or json)", outputFormat)
	}

	m, err := metrics.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	l := linter.New(appLogger, m)
	l.SetInput(cmd.InOrStdin())

	summary, lintErr := l.LintFile(path)
	if lintErr != nil && !errors.Is(lintErr, linter.ErrLintFailed) {
		return lintErr
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		linter.PrintSummary(out, summary)
	}

	if metricsFile != "" {
		if err := m.WriteTextfile(metricsFile); err != nil {
			return err
		}
	}

	return lintErr
}
