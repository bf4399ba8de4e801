package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/pagination"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/service"
	"github.com/rolfvandort/Rolfiessuperzoekert/pkg/log"
)

type searchOptions struct {
	docType       string
	dateStart     string
	dateEnd       string
	modifiedStart string
	modifiedEnd   string
	instances     []string
	lawAreas      []string
	procedures    []string
	page          int
	max           int
	desc          bool
	all           bool
	asJSON        bool
}

func newSearchCmd(g *globalOptions) *cobra.Command {
	o := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search [terms...]",
		Short: "Search judgments and opinions",
		Long: `Search runs one query against the search endpoint and prints one page of results.

Free-text terms are ignored by upstream once any filter is set.

Examples:
  zoek search huurrecht
  zoek search --type Uitspraak --from 2023-01-01 --to 2023-06-01 --desc
  zoek search --instance http://standaarden.overheid.nl/owms/terms/Hoge_Raad_der_Nederlanden --page 2
  zoek search --type Conclusie --from 2024-01-01 --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, g, o, strings.Join(args, " "))
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.docType, "type", "", "Uitspraak or Conclusie")
	f.StringVar(&o.dateStart, "from", "", "decision date from (YYYY-MM-DD)")
	f.StringVar(&o.dateEnd, "to", "", "decision date to (YYYY-MM-DD)")
	f.StringVar(&o.modifiedStart, "modified-from", "", "modified since (YYYY-MM-DDTHH:MM[:SS])")
	f.StringVar(&o.modifiedEnd, "modified-to", "", "modified until (YYYY-MM-DDTHH:MM[:SS])")
	f.StringArrayVar(&o.instances, "instance", nil, "court identifier, repeatable")
	f.StringArrayVar(&o.lawAreas, "law-area", nil, "law area identifier, repeatable")
	f.StringArrayVar(&o.procedures, "procedure", nil, "procedure type identifier, repeatable")
	f.IntVar(&o.page, "page", 1, "1-based page")
	f.IntVar(&o.max, "max", pagination.DefaultMax, "results per page")
	f.BoolVar(&o.desc, "desc", false, "newest first")
	f.BoolVar(&o.all, "all", false, "walk every page from the first one (ignores --page)")
	f.BoolVar(&o.asJSON, "json", false, "print JSON instead of text")

	return cmd
}

func runSearch(cmd *cobra.Command, g *globalOptions, o *searchOptions, query string) error {
	lg := g.logger(cmd)
	ctx := log.Into(cmd.Context(), lg)

	req := service.SearchRequest{
		Query:         query,
		Type:          o.docType,
		DateStart:     o.dateStart,
		DateEnd:       o.dateEnd,
		ModifiedStart: o.modifiedStart,
		ModifiedEnd:   o.modifiedEnd,
		Instances:     o.instances,
		LawAreas:      o.lawAreas,
		Procedures:    o.procedures,
		Max:           o.max,
	}
	if o.desc {
		req.Sort = "DESC"
	}

	svc := g.service(o.max)
	out := cmd.OutOrStdout()

	state := pagination.AtPage(o.page, o.max)
	if o.all {
		state.Reset()
	}

	for {
		req.Page = state.Page()

		res, err := svc.Search(ctx, req)
		if err != nil {
			return userError(lg, err)
		}
		state.SetTotal(res.Total)

		if err := printPage(out, res, o.asJSON); err != nil {
			return err
		}

		if !o.all || !state.Next() {
			return nil
		}
	}
}

func printPage(w io.Writer, res *service.SearchResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	return printResults(w, res)
}

func printResults(w io.Writer, res *service.SearchResult) error {
	p := res.Pagination

	if _, err := fmt.Fprintln(w, p.Summary); err != nil {
		return err
	}

	for i, r := range res.Results {
		fmt.Fprintf(w, "\n%d. %s\n   %s\n   %s\n   %s\n",
			p.Offset+i+1, r.ID, r.Title, r.Updated, r.Link)
		if r.Summary != "" {
			fmt.Fprintf(w, "   %s\n", r.Summary)
		}
	}

	if p.Visible {
		fmt.Fprintf(w, "\n%s", p.Label)
		if hints := pageHints(p, res.Total); hints != "" {
			fmt.Fprintf(w, " (%s)", hints)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// pageHints names the --page values of the neighbouring pages.
func pageHints(p service.Pagination, total int) string {
	var hints []string

	prev := pagination.State{Offset: p.Offset, Max: p.Max, Total: total}
	if prev.Prev() {
		hints = append(hints, fmt.Sprintf("vorige: --page %d", prev.Page()))
	}

	next := pagination.State{Offset: p.Offset, Max: p.Max, Total: total}
	if next.Next() {
		hints = append(hints, fmt.Sprintf("volgende: --page %d", next.Page()))
	}

	return strings.Join(hints, ", ")
}
