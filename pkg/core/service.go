package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Service handles the business logic for notes.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new Service.
// A nil logger discards all output.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

// AddNote appends text as a new note.
// The error is returned to the caller; the service never aborts the process.
func (s *Service) AddNote(ctx context.Context, text string) error {
	if err := s.repo.Append(ctx, Note{Text: text}); err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}
	s.logger.Debug("note added", "length", len(text))
	return nil
}

// ListNotes reads the whole store.
// Read failures are not errors: they yield a Listing whose Exists is false.
func (s *Service) ListNotes(ctx context.Context) (Listing, error) {
	if err := ctx.Err(); err != nil {
		return Listing{}, err
	}

	content, err := s.repo.Read(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Listing{}, ctxErr
		}
		s.logger.Debug("note store unreadable", "error", err)
		return Listing{Exists: false}, nil
	}

	return Listing{Content: content, Exists: true}, nil
}
