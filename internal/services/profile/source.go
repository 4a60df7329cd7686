package profile

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"milsabores/internal/domain"
)

// FileSource picks an existing image from disk, like a gallery pick.
// An empty Path means the user closed the picker.
type FileSource struct {
	Path string
}

// Open opens the image at Path.
func (s FileSource) Open(ctx context.Context) (io.ReadCloser, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if s.Path == "" {
		return nil, "", domain.ErrPhotoCancelled
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, "", err
	}
	return f, filepath.Ext(s.Path), nil
}

// Compile-time assertion that FileSource implements domain.PhotoSource.
var _ domain.PhotoSource = FileSource{}
