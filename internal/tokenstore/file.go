package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File stores tokens as a small JSON object keyed like the browser's local
// storage entries.
type File struct {
	Path string
	mu   sync.Mutex
}

func NewFile(path string) *File { return &File{Path: path} }

func (f *File) Load(ctx context.Context) (Tokens, error) {
	_ = ctx
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return Tokens{}, nil
	}
	if err != nil {
		return Tokens{}, err
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return Tokens{}, fmt.Errorf("token file %s: %w", f.Path, err)
	}
	return Tokens{AccessToken: m[KeyAccessToken], RefreshToken: m[KeyRefreshToken]}, nil
}

func (f *File) Save(ctx context.Context, t Tokens) error {
	_ = ctx
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(map[string]string{
		KeyAccessToken:  t.AccessToken,
		KeyRefreshToken: t.RefreshToken,
	})
	if err != nil {
		return err
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}

func (f *File) Clear(ctx context.Context) error {
	_ = ctx
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (f *File) String() string { return fmt.Sprintf("file(%s)", f.Path) }
