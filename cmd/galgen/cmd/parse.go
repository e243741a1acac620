// file: cmd/galgen/cmd/parse.go
package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"galgen/internal/cli"
	"galgen/internal/cmdline"
	"galgen/internal/formats"
)

// parseResult is the machine readable output of the parse command.
type parseResult struct {
	Commandline string               `json:"commandline" yaml:"commandline"`
	Invocation  *cmdline.Invocation  `json:"invocation" yaml:"invocation"`
	Tokens      []cmdline.Token      `json:"tokens" yaml:"tokens"`
	Annotations []formats.Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

func newParseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "parse <commandline...>",
		Short: "Classify an example commandline without any prompting",
		Long: `The parse command tokenizes and classifies an example commandline and prints
the executable, options, trailing arguments and captured output. Quote the
commandline as a single argument to keep its own quoting and redirection, e.g.

  galgen parse 'mytool -v "my input.fa" > out.tsv'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}

	c.Flags().String("output", "pretty", "Output format: pretty, json or yaml")
	c.Flags().Bool("annotate", false, "Add input/output and format hints for each argument")
	return c
}

func runParse(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	annotate, _ := cmd.Flags().GetBool("annotate")

	raw := strings.Join(args, " ")
	inv, err := cmdline.Parse(raw)
	if err != nil {
		appLogger.Debug("commandline rejected", "raw", raw, "error", err)
		return err
	}

	result := parseResult{
		Commandline: raw,
		Invocation:  inv,
		Tokens:      inv.Tokens(),
	}
	if annotate {
		result.Annotations = formats.Annotate(inv, formats.NewResolver(appConfig.Formats))
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case "pretty":
		return printParseResult(out, result, annotate)
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("invalid output format: %s (use pretty, json or yaml)", outputFormat)
	}
}

func printParseResult(w io.Writer, result parseResult, annotate bool) error {
	if annotate {
		summary, err := cli.NewRenderer().RenderSummary(cli.SummaryData{
			Raw:         result.Commandline,
			Invocation:  result.Invocation,
			Annotations: result.Annotations,
		})
		if err != nil {
			return err
		}
		fmt.Fprint(w, summary)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tTOKEN")
	for _, tok := range result.Tokens {
		text := tok.Text
		if tok.Meta != "" && tok.Kind == cmdline.KindExecutable {
			text += " (" + tok.Meta + ")"
		}
		fmt.Fprintf(tw, "%s\t%s\n", tok.Kind, text)
	}
	return tw.Flush()
}
