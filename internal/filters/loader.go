package filters

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"

	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"

	"github.com/rolfvandort/Rolfiessuperzoekert/pkg/log"
)

// Loader reads the three value lists.
type Loader struct {
	src Source
}

// NewLoader creates a Loader over src.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Load reads the three lists in parallel and returns them together.
//
// All three must succeed: the first failure cancels the other reads
// and the whole load fails with that single error.
func (l *Loader) Load(ctx context.Context) (*Lists, error) {
	const op = "filters.Load"

	lg := log.From(ctx)

	var (
		inst instantieList
		area rechtsgebiedList
		proc proceduresoortList
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.decode(gctx, FileInstanties, &inst) })
	g.Go(func() error { return l.decode(gctx, FileRechtsgebieden, &area) })
	g.Go(func() error { return l.decode(gctx, FileProceduresoorten, &proc) })

	if err := g.Wait(); err != nil {
		lg.Error("filters_load_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lists := &Lists{
		Instanties:       inst.Items,
		Rechtsgebieden:   area.Items,
		Proceduresoorten: proc.Items,
	}

	lg.Info("filters_loaded",
		slog.String("op", op),
		slog.Int("instances", len(lists.Instanties)),
		slog.Int("law_areas", len(lists.Flatten())),
		slog.Int("procedures", len(lists.Proceduresoorten)),
	)

	return lists, nil
}

func (l *Loader) decode(ctx context.Context, name string, into any) error {
	raw, err := l.src.Read(ctx, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charset.NewReaderLabel

	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}

	return nil
}
