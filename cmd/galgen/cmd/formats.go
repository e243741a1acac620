// file: cmd/galgen/cmd/formats.go
package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"galgen/internal/formats"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the known file formats and their extensions",
		Long: `The formats command lists the file formats galgen can suggest for arguments,
including any extra formats from the "formats" section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := formats.NewResolver(appConfig.Formats)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FORMAT\tEXTENSIONS")
			for _, name := range resolver.Formats() {
				fmt.Fprintf(tw, "%s\t%s\n", name, strings.Join(resolver.Extensions(name), ", "))
			}
			return tw.Flush()
		},
	}
}
