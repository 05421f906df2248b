package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/riftrewind/rift-front/internal/log"
)

// defaultAPIBaseURL is the regional routing host for account APIs
const defaultAPIBaseURL = "https://americas.api.riotgames.com"

// Client calls the Riot account API with a static API key.
// No timeout is configured on outbound calls; a hung upstream connection
// hangs the request that made it.
type Client struct {
	apiKey     string
	apiBaseURL string // defaults to the americas routing host, overridden in tests
	httpClient *http.Client
}

// NewClient creates a Riot API client authenticated with the given key
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiBaseURL: defaultAPIBaseURL,
		httpClient: &http.Client{},
	}
}

// AccountByRiotID looks up an account by its name and tag components.
// Both components are percent-encoded into the request path. The API key is
// sent in the X-Riot-Token header, not as a bearer token.
func (c *Client) AccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	lookupURL := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.apiBaseURL, url.PathEscape(gameName), url.PathEscape(tagLine))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build account lookup request: %w", err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrAccountNotFound
	}
	if resp.StatusCode != http.StatusOK {
		// Provider error bodies stay server-side
		body, _ := io.ReadAll(resp.Body)
		log.LogErrorWithFields("riot", "Account lookup failed", map[string]any{
			"status": resp.StatusCode,
			"body":   string(body),
		})
		return nil, fmt.Errorf("account lookup failed: status %d", resp.StatusCode)
	}

	var account Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}

	return &account, nil
}
