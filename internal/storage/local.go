package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/xid"
)

const localRefPrefix = "uploads/"

// Local writes images to disk under dir. References have the form
// "uploads/<unix-ms>-<xid><ext>" and are served by the static file route.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

func (s *Local) Store(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), xid.New().String(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return localRefPrefix + name, nil
}

func (s *Local) Delete(ctx context.Context, ref string) error {
	if !s.Owns(ref) {
		return fmt.Errorf("ref %q is not a local upload", ref)
	}
	name := filepath.Base(strings.TrimPrefix(ref, localRefPrefix))
	return os.Remove(filepath.Join(s.dir, name))
}

func (s *Local) Owns(ref string) bool {
	return !strings.Contains(ref, "://") && strings.HasPrefix(ref, localRefPrefix)
}
