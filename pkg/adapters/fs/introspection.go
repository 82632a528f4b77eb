package fs

import (
	"os"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
	Size   int64  `json:"size"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	state := RepositoryState{Path: r.Path}
	if info, err := os.Stat(r.Path); err == nil {
		state.Exists = true
		state.Size = info.Size()
	}
	return state
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
