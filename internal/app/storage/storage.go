package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"video-transcriber/internal/config"
	apperrors "video-transcriber/internal/app/errors"
)

// DefaultPresignExpiry bounds how long a presigned download stays valid
const DefaultPresignExpiry = time.Hour

// ErrNoFileKey marks a record that cannot be fetched because it has no object key
var ErrNoFileKey = apperrors.New(apperrors.KindFetch, "video has no file key")

// URLResolver turns a stored object key into a URL the fetcher can GET
type URLResolver interface {
	ResolveURL(ctx context.Context, key string) (string, error)
}

// PublicResolver builds unauthenticated object URLs
type PublicResolver struct {
	endpoint string
	bucket   string
	useSSL   bool
}

func NewPublicResolver(cfg config.StorageConfig) *PublicResolver {
	return &PublicResolver{endpoint: cfg.Endpoint, bucket: cfg.Bucket, useSSL: cfg.UseSSL}
}

// ResolveURL returns <scheme>://<endpoint>/<bucket>/<key>
func (r *PublicResolver) ResolveURL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrNoFileKey
	}
	scheme := "http"
	if r.useSSL {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: r.endpoint, Path: "/" + r.bucket + "/" + key}
	return u.String(), nil
}

// MinioResolver issues presigned GET URLs
type MinioResolver struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

// NewMinioResolver creates the MinIO client. The region is pinned so that
// presigning never needs a bucket location lookup.
func NewMinioResolver(cfg config.StorageConfig, expiry time.Duration) (*MinioResolver, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: "us-east-1",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}
	return &MinioResolver{client: client, bucket: cfg.Bucket, expiry: expiry}, nil
}

func (r *MinioResolver) ResolveURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrNoFileKey
	}
	u, err := r.client.PresignedGetObject(ctx, r.bucket, key, r.expiry, url.Values{})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.KindFetch, "failed to generate presigned URL")
	}
	return u.String(), nil
}

// NewResolver picks the presigning resolver when credentials are configured
func NewResolver(cfg config.StorageConfig) (URLResolver, error) {
	if cfg.Presign() {
		return NewMinioResolver(cfg, DefaultPresignExpiry)
	}
	return NewPublicResolver(cfg), nil
}
