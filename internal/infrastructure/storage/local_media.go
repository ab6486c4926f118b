package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"corpsite.backend/pkg/utils"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// LocalMediaStore keeps uploads under root and addresses them below publicURL.
// Stored names are slash-separated paths relative to root.
type LocalMediaStore struct {
	root      string
	publicURL string
}

func NewLocalMediaStore(root, publicURL string) *LocalMediaStore {
	if publicURL != "" && !strings.HasSuffix(publicURL, "/") {
		publicURL += "/"
	}
	return &LocalMediaStore{root: root, publicURL: publicURL}
}

// Save copies an uploaded file into dir and returns its stored name.
func (s *LocalMediaStore) Save(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := path.Join(dir, utils.GenerateUUIDv7().String()+"_"+sanitizeFilename(fh.Filename))
	dst := filepath.Join(s.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write media file: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close media file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file; a missing file is not an error.
func (s *LocalMediaStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+name))))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL resolves a stored name to an absolute URL. Names that already are
// absolute URLs pass through unchanged.
func (s *LocalMediaStore) URL(name string) string {
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	return s.publicURL + strings.TrimPrefix(name, "/")
}

func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "upload"
	}
	if len(base) > 100 {
		base = base[len(base)-100:]
	}
	return base
}
