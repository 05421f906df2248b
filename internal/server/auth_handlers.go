package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/riftrewind/rift-front/internal/config"
	"github.com/riftrewind/rift-front/internal/cookie"
	"github.com/riftrewind/rift-front/internal/crypto"
	jsonwriter "github.com/riftrewind/rift-front/internal/json"
	"github.com/riftrewind/rift-front/internal/log"
	"github.com/riftrewind/rift-front/internal/riot"
	"github.com/riftrewind/rift-front/internal/session"
	"golang.org/x/oauth2"
)

// RSOProvider is the slice of the Riot client used by the OAuth flow
type RSOProvider interface {
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	Me(ctx context.Context, token *oauth2.Token) (*riot.Account, error)
}

// AccountClient is the slice of the Riot client used by the direct lookup
type AccountClient interface {
	AccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.Account, error)
}

// AuthHandlers provides the login, callback, and lookup HTTP handlers
type AuthHandlers struct {
	cfg      config.Config
	provider RSOProvider
	client   AccountClient
}

// NewAuthHandlers creates new auth handlers with dependency injection
func NewAuthHandlers(cfg config.Config, provider RSOProvider, client AccountClient) *AuthHandlers {
	return &AuthHandlers{
		cfg:      cfg,
		provider: provider,
		client:   client,
	}
}

// RiotLoginHandler starts the sign-on flow: it stores a fresh state token in
// a short-lived cookie and redirects to RSO. When RSO credentials are missing
// or still set to the placeholder values, it redirects to the mock callback
// with a synthetic authorization code instead, so the rest of the flow can be
// exercised without provisioned credentials.
func (h *AuthHandlers) RiotLoginHandler(w http.ResponseWriter, r *http.Request) {
	state, err := crypto.GenerateStateToken()
	if err != nil {
		log.LogError("Failed to generate state token: %v", err)
		redirectToLogin(w, r, "Failed to start login")
		return
	}

	cookie.SetState(w, state, h.cfg.CookieSecure())

	if !h.cfg.HasRSOCredentials() {
		log.LogWarnWithFields("auth", "RSO credentials not configured, using mock callback", nil)
		q := url.Values{}
		q.Set("code", "mock-"+uuid.NewString())
		q.Set("state", state)
		http.Redirect(w, r, "/auth/mock-callback?"+q.Encode(), http.StatusTemporaryRedirect)
		return
	}

	http.Redirect(w, r, h.provider.AuthURL(state), http.StatusTemporaryRedirect)
}

// CallbackHandler handles the redirect back from RSO: it validates the state
// token, exchanges the authorization code for an access token, fetches the
// account record, and issues the session cookie pair.
//
// No timeout wraps the provider calls; a hung provider connection hangs this
// request until the client gives up.
func (h *AuthHandlers) CallbackHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if errCode := query.Get("error"); errCode != "" {
		errDesc := query.Get("error_description")
		log.LogErrorWithFields("auth", "RSO returned an error", map[string]any{
			"error":       errCode,
			"description": errDesc,
		})
		if errDesc == "" {
			errDesc = errCode
		}
		redirectToLogin(w, r, errDesc)
		return
	}

	if !h.validState(r, query.Get("state")) {
		redirectToLogin(w, r, "Invalid state parameter")
		return
	}

	code := query.Get("code")
	if code == "" {
		redirectToLogin(w, r, "No authorization code received")
		return
	}

	token, err := h.provider.ExchangeCode(r.Context(), code)
	if err != nil {
		log.LogError("Failed to exchange code: %v", err)
		redirectToLogin(w, r, "Token exchange failed")
		return
	}

	account, err := h.provider.Me(r.Context(), token)
	if err != nil {
		log.LogError("Failed to fetch account: %v", err)
		redirectToLogin(w, r, "Failed to fetch account information")
		return
	}

	h.completeLogin(w, r, identityFor(account), token.AccessToken)
}

// MockCallbackHandler stands in for CallbackHandler when no RSO credentials
// are provisioned. It performs the same state validation, then fabricates the
// identity and bearer credential instead of calling the provider. The cookies
// it issues are structurally identical to the real path's, so downstream
// consumers cannot tell a mock session from a real one.
func (h *AuthHandlers) MockCallbackHandler(w http.ResponseWriter, r *http.Request) {
	if !h.validState(r, r.URL.Query().Get("state")) {
		redirectToLogin(w, r, "Invalid state parameter")
		return
	}

	suffix := uuid.NewString()[:8]
	identity := session.Identity{
		PUUID:    "mock-puuid-" + uuid.NewString(),
		GameName: "MockPlayer-" + suffix,
		TagLine:  "DEV",
	}
	bearer := "mock-token-" + uuid.NewString()

	log.LogWarnWithFields("auth", "Issuing mock session", map[string]any{
		"gameName": identity.GameName,
	})

	h.completeLogin(w, r, identity, bearer)
}

type accountLookupRequest struct {
	RiotID string `json:"riotId"`
}

type accountLookupResponse struct {
	Success bool `json:"success"`
}

// AccountLookupHandler is the direct login path: it takes a "Name#Tag" Riot
// ID, looks the account up with the configured API key, and issues the
// session cookie pair. There is no state/CSRF step here; this is a direct
// form submission, not a redirect flow, and the asymmetry with the callback
// paths is intentional. The caller handles navigation; no redirect is sent.
func (h *AuthHandlers) AccountLookupHandler(w http.ResponseWriter, r *http.Request) {
	var req accountLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonwriter.WriteBadRequest(w, "Invalid request body")
		return
	}

	gameName, tagLine, ok := splitRiotID(req.RiotID)
	if !ok {
		jsonwriter.WriteBadRequest(w, "Invalid Riot ID format. Use: PlayerName#TAG")
		return
	}

	if h.cfg.RiotAPIKey == "" {
		log.LogError("Account lookup requested but RIOT_API_KEY is not configured")
		jsonwriter.WriteInternalServerError(w, "Riot API key is not configured")
		return
	}

	account, err := h.client.AccountByRiotID(r.Context(), gameName, tagLine)
	if err != nil {
		if errors.Is(err, riot.ErrAccountNotFound) {
			jsonwriter.WriteNotFound(w, "Account not found")
			return
		}
		log.LogError("Account lookup failed: %v", err)
		jsonwriter.WriteInternalServerError(w, "Failed to look up account")
		return
	}

	// The raw API key doubles as the session's bearer credential on this
	// path. It is not a scoped access token like the OAuth paths issue.
	if err := session.Issue(w, identityFor(account), string(h.cfg.RiotAPIKey), h.cfg.CookieSecure()); err != nil {
		log.LogError("Failed to issue session: %v", err)
		jsonwriter.WriteInternalServerError(w, "Failed to create session")
		return
	}

	log.LogInfoWithFields("auth", "Session issued via account lookup", map[string]any{
		"gameName": account.GameName,
		"tagLine":  account.TagLine,
	})

	_ = jsonwriter.Write(w, accountLookupResponse{Success: true})
}

// LogoutHandler clears both session cookies and returns to the login page
func (h *AuthHandlers) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	session.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// validState compares the state query parameter against the state cookie.
// The cookie is read, not consumed: it stays valid until its 10-minute
// expiry, so a state value is replayable within that window.
func (h *AuthHandlers) validState(r *http.Request, state string) bool {
	stored, err := cookie.Get(r, cookie.StateCookie)
	if err != nil || state == "" || stored == "" {
		return false
	}
	return state == stored
}

// completeLogin issues the session cookie pair and lands on the dashboard
func (h *AuthHandlers) completeLogin(w http.ResponseWriter, r *http.Request, identity session.Identity, bearer string) {
	if err := session.Issue(w, identity, bearer, h.cfg.CookieSecure()); err != nil {
		log.LogError("Failed to issue session: %v", err)
		redirectToLogin(w, r, "Failed to create session")
		return
	}

	log.LogInfoWithFields("auth", "Session issued", map[string]any{
		"gameName": identity.GameName,
		"tagLine":  identity.TagLine,
	})

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func identityFor(account *riot.Account) session.Identity {
	return session.Identity{
		PUUID:    account.PUUID,
		GameName: account.GameName,
		TagLine:  account.TagLine,
	}
}

// splitRiotID splits a "Name#Tag" identifier. The delimiter must appear
// exactly once with a non-empty value on each side.
func splitRiotID(riotID string) (gameName, tagLine string, ok bool) {
	parts := strings.Split(riotID, "#")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// redirectToLogin sends the browser back to the login page with a
// human-readable error message in the query string
func redirectToLogin(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/login?error="+queryEscape(message), http.StatusFound)
}

// queryEscape percent-encodes a query value, using %20 rather than + for
// spaces so the value reads cleanly in the location bar
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
