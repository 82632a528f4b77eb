package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/notes/pkg/core"
)

// FilePerm is the permission used when the store file is created.
const FilePerm os.FileMode = 0644

// Repository implements core.Repository on a single flat text file.
// Each note is one line. There is no locking: concurrent appends from
// separate processes rely on O_APPEND atomicity only.
type Repository struct {
	Path   string
	logger *slog.Logger
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path   string // store file, relative paths resolve against the working directory
	Logger *slog.Logger
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) *Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{
		Path:   config.Path,
		logger: logger,
	}
}

// Append writes the note text plus a line terminator at the end of the file,
// creating the file if it does not exist.
func (r *Repository) Append(ctx context.Context, n core.Note) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, FilePerm)
	if err != nil {
		return fmt.Errorf("failed to open note file %s: %w", r.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close note file %s: %w", r.Path, cerr)
		}
	}()

	if _, err := io.WriteString(f, n.Text+"\n"); err != nil {
		return fmt.Errorf("failed to write note file %s: %w", r.Path, err)
	}

	r.logger.Debug("appended note", "path", r.Path)
	return nil
}

// Read returns the whole file content.
// Every failure, including a missing file, wraps core.ErrStoreNotFound.
func (r *Repository) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(r.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrStoreNotFound, err)
	}
	return string(data), nil
}
