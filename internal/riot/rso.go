package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/riftrewind/rift-front/internal/log"
	"golang.org/x/oauth2"
)

// Endpoint is Riot Sign-On's OAuth 2.0 endpoint. The token endpoint takes
// the client credentials in the form body.
var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://auth.riotgames.com/authorize",
	TokenURL:  "https://auth.riotgames.com/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

// Provider implements the RSO authorization-code flow
type Provider struct {
	config     oauth2.Config
	apiBaseURL string // defaults to the americas routing host, overridden in tests
}

// NewProvider creates an RSO provider for the given client credentials
func NewProvider(clientID, clientSecret, redirectURI string) *Provider {
	return &Provider{
		config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"openid"},
			Endpoint:     Endpoint,
		},
		apiBaseURL: defaultAPIBaseURL,
	}
}

// AuthURL generates the RSO authorization URL carrying the state token
func (p *Provider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// ExchangeCode exchanges an authorization code for an access token.
// The exchange is a form-encoded POST to the token endpoint carrying the
// grant type, code, redirect URI, and client credentials.
func (p *Provider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.config.Exchange(ctx, code)
}

// Me fetches the authenticated account using the token as a bearer credential
func (p *Provider) Me(ctx context.Context, token *oauth2.Token) (*Account, error) {
	client := p.config.Client(ctx, token)

	resp, err := client.Get(p.apiBaseURL + "/riot/account/v1/accounts/me")
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.LogErrorWithFields("riot", "Account fetch failed", map[string]any{
			"status": resp.StatusCode,
			"body":   string(body),
		})
		return nil, fmt.Errorf("failed to get account: status %d", resp.StatusCode)
	}

	var account Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}

	return &account, nil
}
