package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/filters"
	"github.com/rolfvandort/Rolfiessuperzoekert/pkg/log"
)

func newFiltersCmd(g *globalOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List the identifiers usable as --instance, --law-area and --procedure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := log.Into(cmd.Context(), g.logger(cmd))

			var src filters.Source = filters.NewRemoteSource(g.client())
			if dir != "" {
				src = filters.NewDirSource(os.DirFS(dir))
			}

			lists, err := filters.NewLoader(src).Load(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(tw, "# Instanties")
			for _, i := range lists.Instanties {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", i.Afkorting, i.Naam, i.Identifier)
			}

			fmt.Fprintln(tw, "\n# Rechtsgebieden")
			for _, r := range lists.Flatten() {
				fmt.Fprintf(tw, "%s%s\t%s\n", strings.Repeat("  ", r.Depth), r.Naam, r.Identifier)
			}

			fmt.Fprintln(tw, "\n# Proceduresoorten")
			for _, p := range lists.Proceduresoorten {
				fmt.Fprintf(tw, "%s\t%s\n", p.Naam, p.Identifier)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "read the lists from a directory instead of the API")

	return cmd
}
