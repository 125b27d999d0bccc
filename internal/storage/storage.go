package storage

import (
	"context"
	"io"
)

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
	// PathPrefix groups objects by screen, e.g. "product/category".
	PathPrefix string
}

type PutResult struct {
	Key string
	// URL is the durable object URL saved into entity fields (picUrl etc).
	URL string
}

// Storage accepts uploads and turns stored object URLs into URLs a browser
// can display.
type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	ResolveURL(ctx context.Context, objectURL string) (string, error)
}

func contentTypeOr(ct string) string {
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}
