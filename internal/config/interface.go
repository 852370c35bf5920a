package config

import "context"

// Loader is the interface for a format-specific recipe loader. Load accepts
// a file or a directory; a directory is treated as one recipe split across
// files.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
