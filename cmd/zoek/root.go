package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/config"
	apierrors "github.com/rolfvandort/Rolfiessuperzoekert/internal/errors"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/rechtspraak"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/service"
)

// globalOptions - flags shared by all subcommands.
type globalOptions struct {
	baseURL string
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "zoek",
		Short: "zoek - search Dutch case law on Rechtspraak.nl",
		Long: `zoek queries the Rechtspraak.nl open-data API directly.

Usage:
  zoek search <terms> [flags]
  zoek content <ECLI> [flags]
  zoek filters [flags]`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", rechtspraak.DefaultBaseURL, "API host")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout per request")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newSearchCmd(opts),
		newContentCmd(opts),
		newFiltersCmd(opts),
	)

	return root
}

func (o *globalOptions) client() *rechtspraak.Client {
	return rechtspraak.New(rechtspraak.Options{
		BaseURL:    o.baseURL,
		HTTPClient: &http.Client{Timeout: o.timeout},
		UserAgent:  "zoek/1.0",
	})
}

func (o *globalOptions) service(defaultMax int) *service.Service {
	cfg := config.Config{Search: config.SearchConfig{DefaultMax: defaultMax}}
	return service.New(o.client(), cfg)
}

// logger writes debug records to stderr with -v, nothing otherwise.
func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	if !o.verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// userError replaces err with the Dutch message the web API would show.
// The wrapped chain is still logged with -v.
func userError(lg *slog.Logger, err error) error {
	if err == nil {
		return nil
	}

	lg.Debug("command_failed", slog.String("err", err.Error()))
	_, resp := apierrors.ToHTTP(err)

	return errors.New(resp.Error)
}
