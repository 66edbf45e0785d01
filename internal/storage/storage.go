package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

var ErrObjectNotFound = errors.New("storage: object not found")

type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedName string, err error)
}

// Reader opens a stored object by the name Upload returned.
type Reader interface {
	Open(ctx context.Context, objectName string) (io.ReadCloser, error)
}

type Store interface {
	Uploader
	Reader
	Close() error
}

type Backend string

const (
	BackendLocal Backend = "local"
	BackendGCS   Backend = "gcs"
	BackendMinio Backend = "minio"
)

type Options struct {
	Backend Backend

	LocalRoot string

	GCSBucket string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

func New(ctx context.Context, opt Options) (Store, error) {
	switch opt.Backend {
	case BackendLocal, "":
		return NewLocalStore(opt.LocalRoot)
	case BackendGCS:
		if opt.GCSBucket == "" {
			return nil, errors.New("storage: GCS bucket is not set")
		}
		return NewGCSStore(ctx, opt.GCSBucket)
	case BackendMinio:
		return NewMinioStore(ctx, MinioConfig{
			Endpoint:  opt.MinioEndpoint,
			AccessKey: opt.MinioAccessKey,
			SecretKey: opt.MinioSecretKey,
			Bucket:    opt.MinioBucket,
			UseSSL:    opt.MinioUseSSL,
		})
	}
	return nil, fmt.Errorf("storage: unknown backend %q", opt.Backend)
}

// CleanName normalizes an object name and rejects names escaping the root.
func CleanName(name string) (string, error) {
	n := strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(name, "\\", "/")), "/")
	if n == "" || n == "." {
		return "", fmt.Errorf("storage: invalid object name %q", name)
	}
	return n, nil
}
