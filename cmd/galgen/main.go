// file: cmd/galgen/main.go
package main

import (
	"os"

	"github.com/spf13/cobra"

	"galgen/cmd/galgen/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "galgen",
	Short: "An interactive helper for describing command-line programs as Galaxy tools.",
	Long: `galgen walks you through describing a command-line program as a Galaxy tool.
It classifies an example commandline into executable, options, trailing
arguments and captured output, then asks about each part and writes the
answers as a YAML or JSON tool record.`,
	SilenceUsage: true,
	// If a subcommand is not provided, default to showing help.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	// Add all subcommands and global flags from the cmd package
	cmd.AddCommands(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, so we just need to exit
		os.Exit(1)
	}
}
