// Package media issues download URLs for project files kept in blob storage.
package media

import (
	"context"
	"log/slog"
	"time"

	"captions/config"
	"captions/internal/domain/lifecycle"
	"captions/internal/domain/service"
	"captions/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
)

type blobSigner struct {
	bucket *blob.Bucket
	ttl    time.Duration
}

// passthroughSigner returns keys unchanged; used when no bucket is configured
// and project records already hold absolute URLs.
type passthroughSigner struct{}

func (passthroughSigner) SignedURL(_ context.Context, key string) (string, error) {
	return key, nil
}

// SignerParams holds dependencies for NewSigner
type SignerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSigner opens the configured bucket and returns a signer for it.
func NewSigner(params SignerParams) (service.MediaURLSigner, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		params.Logger.Info("Media bucket not configured, serving stored file keys as-is")

		return passthroughSigner{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open media bucket %s", params.Config.Media.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Media bucket opened", slog.String("bucket", params.Config.Media.BucketURL))

	return NewBlobSigner(bucket, params.Config.Media.SignedURLTTL), nil
}

// NewBlobSigner wraps an open bucket.
func NewBlobSigner(bucket *blob.Bucket, ttl time.Duration) service.MediaURLSigner {
	return &blobSigner{bucket: bucket, ttl: ttl}
}

// SignedURL returns a GET URL for key that expires after the configured TTL.
func (s *blobSigner) SignedURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry: s.ttl,
		Method: "GET",
	})
	if err != nil {
		return "", errors.Wrapf(err, "sign media key %s", key)
	}

	return url, nil
}
