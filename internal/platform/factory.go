package platform

import (
	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// New creates a notes Service backed by the store file at path.
// Nothing is touched on disk until the first append.
//
//	svc, err := notes.New("notes.txt", notes.WithLogger(logger))
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		if path == "" {
			return nil, core.ErrInvalidPath
		}
		repo = fs.NewRepository(fs.Config{
			Path:   path,
			Logger: o.logger,
		})
	}

	return core.NewService(repo, o.logger), nil
}
