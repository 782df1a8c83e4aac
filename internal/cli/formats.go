package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/rdf-hext/rdf"
)

// newFormatsCmd lists the input formats convert accepts.
func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported input formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, f := range rdf.InputFormats {
				if _, err := fmt.Fprintf(out, "%-10s %s\n", f, f.ContentType()); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(out, "output: %s %s\n", rdf.FormatHextuples, rdf.FormatHextuples.ContentType())
			return err
		},
	}
}
