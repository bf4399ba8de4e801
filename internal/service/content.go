package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/models"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/rechtspraak"
	"github.com/rolfvandort/Rolfiessuperzoekert/pkg/log"
)

const (
	contentTypeXML      = "application/xml; charset=utf-8"
	contentTypeHTML     = "text/html; charset=utf-8"
	contentTypeMarkdown = "text/markdown; charset=utf-8"
)

// Content fetches the full text of a document.
//
// Formats:
//   - xml (default) - upstream body untouched;
//   - html - inner markup of the uitspraak/conclusie element, or a placeholder;
//   - markdown - the same fragment rendered as Markdown.
//
// Errors:
//   - ErrMissingID - blank ecli;
//   - ErrInvalidArgument - unknown format;
//   - upstream errors are wrapped and passed on.
func (s *Service) Content(ctx context.Context, ecli string, format models.ContentFormat) (*models.Content, error) {
	const op = "service.Content"

	ecli = strings.TrimSpace(ecli)
	if ecli == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingID)
	}

	if format == "" {
		format = models.FormatXML
	}

	switch format {
	case models.FormatXML, models.FormatHTML, models.FormatMarkdown:
	default:
		return nil, fmt.Errorf("%s: %w: format %q", op, ErrInvalidArgument, format)
	}

	// upstream client logs carry the ecli too.
	ctx = log.With(ctx, slog.String("ecli", ecli))
	lg := log.From(ctx)

	lg.Info("content_request",
		slog.String("op", op),
		slog.String("format", string(format)),
	)

	raw, err := s.upstream.Content(ctx, ecli)
	if err != nil {
		lg.Error("content_upstream_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c := &models.Content{ECLI: ecli, Format: format}

	switch format {
	case models.FormatXML:
		c.ContentType = contentTypeXML
		c.Body = raw

	case models.FormatHTML:
		fragment, found := rechtspraak.ExtractBody(raw)
		if !found {
			lg.Warn("content_body_missing", slog.String("op", op))
		}
		c.ContentType = contentTypeHTML
		c.Body = []byte(fragment)

	case models.FormatMarkdown:
		fragment, found := rechtspraak.ExtractBody(raw)
		if !found {
			lg.Warn("content_body_missing", slog.String("op", op))
		}

		md, err := rechtspraak.ToMarkdown(fragment)
		if err != nil {
			lg.Error("content_markdown_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		c.ContentType = contentTypeMarkdown
		c.Body = []byte(md)
	}

	lg.Info("content_ok",
		slog.String("op", op),
		slog.Int("bytes", len(c.Body)),
	)

	return c, nil
}
