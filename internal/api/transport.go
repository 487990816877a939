package api

import (
	"net/http"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
)

// NewCachingTransport returns a round tripper that honors the
// backend's cache headers on GET responses (e.g. the room listing,
// which changes rarely). With an empty cacheDir the cache lives in
// memory only; otherwise it persists across runs.
func NewCachingTransport(cacheDir string) http.RoundTripper {
	if cacheDir == "" {
		return httpcache.NewTransport(httpcache.NewMemoryCache())
	}
	return httpcache.NewTransport(diskcache.New(cacheDir))
}
