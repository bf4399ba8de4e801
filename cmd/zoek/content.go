package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/models"
	"github.com/rolfvandort/Rolfiessuperzoekert/pkg/log"
)

func newContentCmd(g *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "content <ECLI>",
		Short: "Print the full text of a judgment",
		Long: `Content fetches one document and prints it.

Formats: markdown (default), html (inner markup of the judgment), xml (raw).

Examples:
  zoek content ECLI:NL:HR:2023:1
  zoek content ECLI:NL:HR:2023:1 --format xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := g.logger(cmd)
			ctx := log.Into(cmd.Context(), lg)

			c, err := g.service(0).Content(ctx, args[0], models.ContentFormat(format))
			if err != nil {
				return userError(lg, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(c.Body))
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(models.FormatMarkdown), "markdown, html or xml")

	return cmd
}
