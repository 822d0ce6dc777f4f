package invoice

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
)

// LogoLoader fetches a shop's logo image. A failed load is not fatal to
// rendering; callers pass a nil image to BuildDocument and the header falls
// back to the drawn wordmark.
type LogoLoader interface {
	Load(ctx context.Context, path string) (image.Image, error)
}

// FileLogoLoader reads logos from a directory on local disk.
type FileLogoLoader struct {
	Root string
}

func NewFileLogoLoader(root string) *FileLogoLoader {
	return &FileLogoLoader{Root: root}
}

func (l *FileLogoLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("empty logo path")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(l.Root, filepath.Clean("/"+path)))
	if err != nil {
		return nil, fmt.Errorf("open logo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}
	return img, nil
}
