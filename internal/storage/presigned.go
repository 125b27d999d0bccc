package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Signed is a one-shot upload target plus the durable URL of the object.
type Signed struct {
	Key       string
	UploadURL string
	ObjectURL string
}

// Signer issues presigned URLs. BackendSigner asks the admin backend,
// S3Signer signs locally with AWS credentials.
type Signer interface {
	SignUpload(ctx context.Context, in PutInput) (Signed, error)
	SignDownload(ctx context.Context, objectURL string) (string, error)
}

// Presigned uploads by PUTting the body to a signed URL with the file's
// content type.
type Presigned struct {
	Signer Signer
	HTTP   *http.Client
}

func NewPresigned(s Signer) *Presigned {
	return &Presigned{Signer: s, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

func (p *Presigned) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	in.ContentType = contentTypeOr(in.ContentType)

	sign, err := p.Signer.SignUpload(ctx, in)
	if err != nil {
		return PutResult{}, fmt.Errorf("sign upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, sign.UploadURL, r)
	if err != nil {
		return PutResult{}, err
	}
	req.Header.Set("Content-Type", in.ContentType)
	if in.Size > 0 {
		req.ContentLength = in.Size
	}

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return PutResult{}, fmt.Errorf("upload %s: %w", sign.Key, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return PutResult{}, fmt.Errorf("upload %s: status %d", sign.Key, resp.StatusCode)
	}
	return PutResult{Key: sign.Key, URL: sign.ObjectURL}, nil
}

func (p *Presigned) ResolveURL(ctx context.Context, objectURL string) (string, error) {
	if objectURL == "" {
		return "", nil
	}
	return p.Signer.SignDownload(ctx, objectURL)
}
