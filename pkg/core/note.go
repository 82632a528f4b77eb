package core

import "strings"

// Note is a single line of user-supplied text.
// It carries no ID or metadata; its position in the store is its only identity.
type Note struct {
	Text string
}

// Listing is the result of reading the note store.
type Listing struct {
	// Content is the raw store content, exactly as read.
	Content string
	// Exists is false when the store could not be read (missing or otherwise).
	Exists bool
}

// IsEmpty reports whether the store holds nothing but whitespace.
func (l Listing) IsEmpty() bool {
	return strings.TrimSpace(l.Content) == ""
}

// Notes splits the content into notes, in the order they were appended.
func (l Listing) Notes() []Note {
	content := strings.TrimSuffix(l.Content, "\n")
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	notes := make([]Note, 0, len(lines))
	for _, line := range lines {
		notes = append(notes, Note{Text: strings.TrimSuffix(line, "\r")})
	}
	return notes
}
