package solax

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

// CredentialStore resolves the API credential pair configured for a site.
type CredentialStore interface {
	SiteCredentials(ctx context.Context, siteID string) (tokenID, secret string, err error)
}

// Client talks to the SolaX cloud API. Access tokens are cached per
// credential pair on the client instance, never process-wide.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialStore
	cache   *tokenCache
}

func NewClient(baseURL string, creds CredentialStore) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		creds:   creds,
		cache:   newTokenCache(),
	}
}

// SiteGeneration fetches a site's energy totals for the window. Errors are
// recoverable: callers may treat a failed site as contributing zero.
func (c *Client) SiteGeneration(ctx context.Context, siteID string, start, end time.Time) (domain.EnergyTotals, error) {
	tokenID, secret, err := c.creds.SiteCredentials(ctx, siteID)
	if err != nil {
		return domain.EnergyTotals{}, fmt.Errorf("credentials for site %s: %w", siteID, err)
	}
	token, err := c.token(ctx, tokenID, secret)
	if err != nil {
		return domain.EnergyTotals{}, fmt.Errorf("solax auth for site %s: %w", siteID, err)
	}

	q := url.Values{}
	q.Set("tokenId", tokenID)
	q.Set("startDate", start.Format("2006-01-02"))
	q.Set("endDate", end.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/getSiteEnergy?"+q.Encode(), nil)
	if err != nil {
		return domain.EnergyTotals{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.EnergyTotals{}, fmt.Errorf("solax request for site %s: %w", siteID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.EnergyTotals{}, fmt.Errorf("solax request for site %s: status %d", siteID, resp.StatusCode)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"exception"`
		Result  struct {
			TotalGeneration  float64                `json:"yieldTotal"`
			TotalConsumption float64                `json:"consumeTotal"`
			Hourly           []domain.HourlyReading `json:"hourlyData"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.EnergyTotals{}, fmt.Errorf("solax response for site %s: %w", siteID, err)
	}
	if !body.Success {
		return domain.EnergyTotals{}, fmt.Errorf("solax rejected request for site %s: %s", siteID, body.Message)
	}

	return domain.EnergyTotals{
		TotalGeneration:  body.Result.TotalGeneration,
		TotalConsumption: body.Result.TotalConsumption,
		Hourly:           body.Result.Hourly,
	}, nil
}

// token returns a cached access token for the credential pair, refreshing
// it from the login endpoint when missing or expired.
func (c *Client) token(ctx context.Context, tokenID, secret string) (string, error) {
	if tok, ok := c.cache.get(tokenID, secret); ok {
		return tok, nil
	}

	q := url.Values{}
	q.Set("tokenId", tokenID)
	q.Set("secret", secret)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login status %d", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Result  struct {
			Token     string `json:"accessToken"`
			ExpiresIn int64  `json:"expiresIn"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if !body.Success || body.Result.Token == "" {
		return "", fmt.Errorf("login rejected for token id %s", tokenID)
	}

	expiry := time.Now().Add(time.Duration(body.Result.ExpiresIn) * time.Second)
	c.cache.put(tokenID, secret, body.Result.Token, expiry)
	return body.Result.Token, nil
}
