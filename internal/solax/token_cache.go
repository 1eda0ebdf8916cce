package solax

import (
	"sync"
	"time"
)

type credentialKey struct {
	tokenID string
	secret  string
}

type cachedToken struct {
	value     string
	expiresAt time.Time
}

// tokenCache holds access tokens keyed by credential pair. Expired entries
// are treated as absent; a small margin avoids using a token right at its
// expiry.
type tokenCache struct {
	mu     sync.Mutex
	tokens map[credentialKey]cachedToken
	margin time.Duration
}

func newTokenCache() *tokenCache {
	return &tokenCache{
		tokens: make(map[credentialKey]cachedToken),
		margin: 30 * time.Second,
	}
}

func (c *tokenCache) get(tokenID, secret string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tok, ok := c.tokens[credentialKey{tokenID, secret}]
	if !ok || time.Now().After(tok.expiresAt.Add(-c.margin)) {
		return "", false
	}
	return tok.value, true
}

func (c *tokenCache) put(tokenID, secret, value string, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[credentialKey{tokenID, secret}] = cachedToken{value: value, expiresAt: expiresAt}
}
