package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"pehlione.com/catalogadmin/internal/shared/slug"
)

// Local writes uploads below BaseDir and serves them under URLPrefix. Used for
// offline runs against the mock backend.
type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) *Local {
	return &Local{BaseDir: baseDir, URLPrefix: urlPrefix}
}

func (l *Local) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	_ = ctx

	dir := filepath.Join(l.BaseDir, filepath.FromSlash(cleanPrefix(in.PathPrefix)))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return PutResult{}, err
	}

	name := uuid.NewString() + "-" + slug.FileStem(in.Filename) + safeExt(in.Filename)
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return PutResult{}, err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return PutResult{}, err
	}

	key := joinKey(cleanPrefix(in.PathPrefix), name)
	url := strings.TrimRight(l.URLPrefix, "/") + "/" + key
	return PutResult{Key: key, URL: url}, nil
}

// ResolveURL returns the URL unchanged: local files are served directly.
func (l *Local) ResolveURL(ctx context.Context, objectURL string) (string, error) {
	_ = ctx
	return objectURL, nil
}

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif", ".mp4":
		return ext
	default:
		return ""
	}
}

// cleanPrefix keeps a relative slash path without dot segments.
func cleanPrefix(p string) string {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	out := parts[:0]
	for _, s := range parts {
		if s == "" || s == "." || s == ".." {
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, "/")
}

func joinKey(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.Trim(p, "/"); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "/")
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
