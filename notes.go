package notes

import (
	"log/slog"

	"github.com/aretw0/notes/internal/platform"
	"github.com/aretw0/notes/pkg/core"
)

// DefaultFile is the store used by the CLI, relative to the working directory.
const DefaultFile = "notes.txt"

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// --- Factory ---

// New creates a notes Service backed by the file at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}
