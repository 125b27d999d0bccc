package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"pehlione.com/catalogadmin/internal/shared/slug"
)

// S3Signer presigns PUT/GET requests against a bucket. Objects are addressed
// as PublicBaseURL/<key>.
type S3Signer struct {
	Presign       *s3.PresignClient
	Bucket        string
	Prefix        string
	PublicBaseURL string
	TTL           time.Duration
}

type S3Config struct {
	Region        string
	Bucket        string
	Prefix        string
	PublicBaseURL string
	// Endpoint targets S3-compatible stores (MinIO); forces path-style.
	Endpoint string
	TTL      time.Duration
}

func NewS3Signer(ctx context.Context, cfg S3Config) (*S3Signer, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &S3Signer{
		Presign:       s3.NewPresignClient(client),
		Bucket:        cfg.Bucket,
		Prefix:        cfg.Prefix,
		PublicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		TTL:           ttl,
	}, nil
}

func (s *S3Signer) SignUpload(ctx context.Context, in PutInput) (Signed, error) {
	key := s.objectKey(in)
	req, err := s.Presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentTypeOr(in.ContentType)),
	}, s3.WithPresignExpires(s.TTL))
	if err != nil {
		return Signed{}, err
	}
	return Signed{Key: key, UploadURL: req.URL, ObjectURL: s.PublicBaseURL + "/" + key}, nil
}

func (s *S3Signer) SignDownload(ctx context.Context, objectURL string) (string, error) {
	key, err := s.keyOf(objectURL)
	if err != nil {
		return "", err
	}
	req, err := s.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.TTL))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *S3Signer) objectKey(in PutInput) string {
	name := uuid.NewString() + "-" + slug.FileStem(in.Filename) + strings.ToLower(filepath.Ext(in.Filename))
	return joinKey(s.Prefix, cleanPrefix(in.PathPrefix), name)
}

func (s *S3Signer) keyOf(objectURL string) (string, error) {
	base := s.PublicBaseURL + "/"
	if !strings.HasPrefix(objectURL, base) {
		return "", fmt.Errorf("object url %q is outside %s", objectURL, s.PublicBaseURL)
	}
	key := strings.TrimPrefix(objectURL, base)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if key == "" {
		return "", fmt.Errorf("object url %q has no key", objectURL)
	}
	return key, nil
}

func (s *S3Signer) String() string { return fmt.Sprintf("s3(%s/%s)", s.Bucket, s.Prefix) }
