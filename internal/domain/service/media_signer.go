package service

import "context"

// MediaURLSigner issues short-lived download URLs for stored project files.
type MediaURLSigner interface {
	// SignedURL returns a URL for key. An empty key yields an empty URL.
	SignedURL(ctx context.Context, key string) (string, error)
}
