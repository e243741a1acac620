// file: cmd/galgen/cmd/new.go
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"galgen/internal/cli"
	"galgen/internal/formats"
)

var errCancelled = errors.New("cancelled")

func newNewCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "new",
		Short: "Describe a new Galaxy tool interactively",
		Long: `The new command asks for the tool's name, version and id, then for an example
commandline. The commandline is classified into executable, options, trailing
arguments and captured output, and each argument is reviewed as an input file,
output file or parameter. The answers are written as a tool record.`,
		RunE: runNew,
	}

	c.Flags().StringP("output", "o", "", "Path to write the tool record")
	c.Flags().String("output-format", "", "Record format: yaml or json (default from config)")
	c.Flags().String("tool-version", "", "Tool version offered as the default answer")
	c.Flags().Bool("dry-run", false, "Print the tool record instead of writing it")
	c.Flags().Bool("list-forms", false, "List the commandline forms")
	c.Flags().String("show-form", "", "Show the content of a commandline form")
	return c
}

func runNew(cmd *cobra.Command, args []string) error {
	renderer := cli.NewRenderer()
	out := cmd.OutOrStdout()

	// Handle --list-forms flag
	if list, _ := cmd.Flags().GetBool("list-forms"); list {
		return listForms(out, renderer)
	}

	// Handle --show-form flag
	if name, _ := cmd.Flags().GetString("show-form"); name != "" {
		return showFormContent(out, renderer, name)
	}

	prompter := cli.NewPrompterWithIO(cmd.InOrStdin(), out)
	builder := cli.NewToolBuilder(prompter, cli.BuilderConfig{
		Renderer:    renderer,
		Resolver:    formats.NewResolver(appConfig.Formats),
		Logger:      appLogger,
		ToolVersion: appConfig.Defaults.ToolVersion,
	})

	record, err := builder.Build()
	if err != nil {
		return fmt.Errorf("interactive build failed: %w", err)
	}

	format := appConfig.Defaults.OutputFormat

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		data, err := record.Encode(format)
		if err != nil {
			return err
		}
		prompter.Say("\n%s", data)
		return nil
	}

	// Determine output path
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output, err = prompter.AskWithDefault("Enter filename for the tool record:", record.Tool.ID+"."+format)
		if err != nil {
			return err
		}
	}
	format = formatForPath(output, format)
	output = normalizeOutputPath(output, format)

	data, err := record.Encode(format)
	if err != nil {
		return err
	}

	// Write the file
	if err := writeFileWithConfirm(prompter, output, data); err != nil {
		if errors.Is(err, errCancelled) {
			prompter.Say("Cancelled.\n")
			return nil
		}
		return err
	}

	appLogger.Info("tool record written", "path", output, "format", format)
	prompter.Say("✓ Success! Tool record '%s' created.\n", output)
	return nil
}

func listForms(w io.Writer, r *cli.Renderer) error {
	forms, err := r.ListForms()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Available commandline forms:")
	for _, f := range forms {
		fmt.Fprintf(w, "  - %-16s %s\n", f.Name, f.Pattern)
	}
	return nil
}

func showFormContent(w io.Writer, r *cli.Renderer, name string) error {
	content, err := r.GetFormContent(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "--- Form: %s ---\n", name)
	fmt.Fprintln(w, content)
	return nil
}

// formatForPath returns the record format named by the extension of path,
// or fallback when the extension names none.
func formatForPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	return fallback
}

// normalizeOutputPath adds the extension for format when the path has
// none, and places bare file names in ./tools when that directory exists.
func normalizeOutputPath(path, format string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		path += "." + format
	}
	if filepath.Dir(path) == "." {
		if info, err := os.Stat("tools"); err == nil && info.IsDir() {
			path = filepath.Join("tools", path)
		}
	}
	return path
}

func writeFileWithConfirm(p cli.Prompter, path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		overwrite, err := p.Confirm(fmt.Sprintf("File '%s' already exists. Overwrite", path), false)
		if err != nil {
			return err
		}
		if !overwrite {
			return errCancelled // Return a specific error to signal cancellation
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tool record '%s': %w", path, err)
	}
	return nil
}
