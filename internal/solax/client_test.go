package solax

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCreds struct{ tokenID, secret string }

func (c staticCreds) SiteCredentials(context.Context, string) (string, string, error) {
	return c.tokenID, c.secret, nil
}

func newVendorStub(t *testing.T, logins *atomic.Int64, expiresIn int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		logins.Add(1)
		fmt.Fprintf(w, `{"success":true,"result":{"accessToken":"tok-%d","expiresIn":%d}}`, logins.Load(), expiresIn)
	})
	mux.HandleFunc("/getSiteEnergy", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"success":true,"result":{"yieldTotal":1234.5,"consumeTotal":1000}}`)
	})
	return httptest.NewServer(mux)
}

func TestSiteGenerationReusesToken(t *testing.T) {
	var logins atomic.Int64
	srv := newVendorStub(t, &logins, 3600)
	defer srv.Close()

	client := NewClient(srv.URL, staticCreds{"token-1", "secret-1"})
	ctx := context.Background()
	start, end := time.Now().AddDate(-1, 0, 0), time.Now()

	totals, err := client.SiteGeneration(ctx, "site-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, 1234.5, totals.TotalGeneration)
	assert.Equal(t, 1000.0, totals.TotalConsumption)

	_, err = client.SiteGeneration(ctx, "site-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(1), logins.Load(), "second call must reuse the cached token")
}

func TestSiteGenerationRefreshesExpiredToken(t *testing.T) {
	var logins atomic.Int64
	// Shorter than the cache's safety margin, so every call re-authenticates.
	srv := newVendorStub(t, &logins, 5)
	defer srv.Close()

	client := NewClient(srv.URL, staticCreds{"token-1", "secret-1"})
	ctx := context.Background()
	start, end := time.Now().AddDate(-1, 0, 0), time.Now()

	_, err := client.SiteGeneration(ctx, "site-1", start, end)
	require.NoError(t, err)
	_, err = client.SiteGeneration(ctx, "site-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(2), logins.Load())
}

func TestTokenCacheKeyedByCredentialPair(t *testing.T) {
	cache := newTokenCache()
	expiry := time.Now().Add(time.Hour)

	cache.put("token-1", "secret-1", "a", expiry)
	cache.put("token-1", "secret-2", "b", expiry)

	got, ok := cache.get("token-1", "secret-1")
	require.True(t, ok)
	assert.Equal(t, "a", got)

	got, ok = cache.get("token-1", "secret-2")
	require.True(t, ok)
	assert.Equal(t, "b", got)

	_, ok = cache.get("token-2", "secret-1")
	assert.False(t, ok)
}

func TestSiteGenerationVendorFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":false,"exception":"site not bound"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticCreds{"token-1", "secret-1"})
	_, err := client.SiteGeneration(context.Background(), "site-1", time.Now().AddDate(0, -1, 0), time.Now())
	assert.Error(t, err)
}
