package filters

import (
	"context"
	"fmt"
	"io/fs"
)

// File names of the value lists.
const (
	FileInstanties       = "Instanties.xml"
	FileRechtsgebieden   = "Rechtsgebieden.xml"
	FileProceduresoorten = "Proceduresoorten.xml"
)

// remotePaths - Waardelijst endpoints of the open-data API per list.
var remotePaths = map[string]string{
	FileInstanties:       "Waardelijst/Instanties",
	FileRechtsgebieden:   "Waardelijst/Rechtsgebieden",
	FileProceduresoorten: "Waardelijst/Proceduresoorten",
}

// Source returns the raw XML of a value list by file name.
type Source interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// DirSource reads the lists from a directory.
type DirSource struct {
	fsys fs.FS
}

// NewDirSource wraps a file system, e.g. os.DirFS(dir).
func NewDirSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

func (s *DirSource) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return fs.ReadFile(s.fsys, name)
}

// Fetcher performs a GET on a path of the API host.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// RemoteSource reads the lists from the Waardelijst endpoints.
type RemoteSource struct {
	fetcher Fetcher
}

// NewRemoteSource creates a RemoteSource.
func NewRemoteSource(f Fetcher) *RemoteSource {
	return &RemoteSource{fetcher: f}
}

func (s *RemoteSource) Read(ctx context.Context, name string) ([]byte, error) {
	path, ok := remotePaths[name]
	if !ok {
		return nil, fmt.Errorf("unknown value list %q", name)
	}

	return s.fetcher.Fetch(ctx, path)
}
