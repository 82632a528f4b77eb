// Package notes is the Composition Root for the notes tool.
//
// It connects the core note logic (pkg/core) with the file adapter
// (pkg/adapters/fs). The store is a flat text file holding one note per
// line; notes are only ever appended.
//
// Usage:
//
//	svc, err := notes.New(notes.DefaultFile, notes.WithLogger(logger))
//
//	// Append a note
//	err = svc.AddNote(ctx, "buy milk")
//
//	// Read everything back
//	listing, err := svc.ListNotes(ctx)
package notes
