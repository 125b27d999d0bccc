package storage

import (
	"context"
	"fmt"
	"time"
)

// Config selects and configures the upload driver.
type Config struct {
	Driver         string        `env:"DRIVER" envDefault:"backend"`
	LocalDir       string        `env:"LOCAL_DIR" envDefault:"./storage/uploads"`
	LocalURLPrefix string        `env:"LOCAL_URL_PREFIX" envDefault:"/uploads"`
	S3Region       string        `env:"S3_REGION"`
	S3Bucket       string        `env:"S3_BUCKET"`
	S3Prefix       string        `env:"S3_PREFIX" envDefault:"uploads"`
	S3PublicBase   string        `env:"S3_PUBLIC_BASE_URL"`
	S3Endpoint     string        `env:"S3_ENDPOINT"`
	PresignTTL     time.Duration `env:"PRESIGN_TTL" envDefault:"15m"`
}

type FactoryResult struct {
	Driver  string
	Storage Storage
}

// New builds the configured driver. api is only used by the "backend" driver.
func New(ctx context.Context, cfg Config, api PresignAPI) (FactoryResult, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "backend"
	}

	switch driver {
	case "backend":
		if api == nil {
			return FactoryResult{}, fmt.Errorf("backend storage needs a presign api")
		}
		return FactoryResult{Driver: driver, Storage: NewPresigned(BackendSigner{API: api})}, nil

	case "local":
		return FactoryResult{Driver: driver, Storage: NewLocal(cfg.LocalDir, cfg.LocalURLPrefix)}, nil

	case "s3":
		if cfg.S3Region == "" || cfg.S3Bucket == "" || cfg.S3PublicBase == "" {
			return FactoryResult{}, fmt.Errorf("S3 config missing: STORAGE_S3_REGION, STORAGE_S3_BUCKET, STORAGE_S3_PUBLIC_BASE_URL required")
		}
		s, err := NewS3Signer(ctx, S3Config{
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			Prefix:        cfg.S3Prefix,
			PublicBaseURL: cfg.S3PublicBase,
			Endpoint:      cfg.S3Endpoint,
			TTL:           cfg.PresignTTL,
		})
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: driver, Storage: NewPresigned(s)}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown STORAGE_DRIVER: %s", driver)
	}
}
