package storage

import (
	"context"

	"pehlione.com/catalogadmin/internal/backend"
)

// PresignAPI is the part of the backend client that signs file URLs.
type PresignAPI interface {
	PresignUpload(ctx context.Context, in backend.PresignUploadReq) (backend.PresignUploadResp, error)
	PresignDownload(ctx context.Context, objectURL string) (backend.PresignDownloadResp, error)
}

type BackendSigner struct {
	API PresignAPI
}

func (s BackendSigner) SignUpload(ctx context.Context, in PutInput) (Signed, error) {
	resp, err := s.API.PresignUpload(ctx, backend.PresignUploadReq{
		FileName:    in.Filename,
		ContentType: contentTypeOr(in.ContentType),
		PathPrefix:  in.PathPrefix,
	})
	if err != nil {
		return Signed{}, err
	}
	return Signed{Key: resp.ObjectKey, UploadURL: resp.UploadURL, ObjectURL: resp.ObjectURL}, nil
}

func (s BackendSigner) SignDownload(ctx context.Context, objectURL string) (string, error) {
	resp, err := s.API.PresignDownload(ctx, objectURL)
	if err != nil {
		return "", err
	}
	return resp.DownloadURL, nil
}
