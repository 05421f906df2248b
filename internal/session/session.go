// Package session owns the client-held session record: a bearer credential
// and an account identity, stored as a cookie pair. There is no server-side
// session store; the cookies are the entire session.
package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/riftrewind/rift-front/internal/cookie"
)

// Identity is the account record fetched from the identity provider.
// Immutable once fetched; never merged with prior state.
type Identity struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Issue sets the session cookie pair in a single response: the bearer
// credential and the identity record. The two cookies are never set
// individually; every success path goes through here so one cannot exist
// without the other.
//
// The bearer credential is an opaque string: an access token on the OAuth
// paths, the raw provider API key on the direct-lookup path. The two are not
// equivalent credentials, but downstream consumers treat them uniformly.
func Issue(w http.ResponseWriter, identity Identity, bearer string, secure bool) error {
	encoded, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}

	cookie.SetToken(w, bearer, secure)
	// Percent-encoded so the JSON survives cookie value sanitization
	cookie.SetIdentity(w, url.QueryEscape(string(encoded)), secure)
	return nil
}

// Clear removes both session cookies together
func Clear(w http.ResponseWriter) {
	cookie.Clear(w, cookie.TokenCookie)
	cookie.Clear(w, cookie.IdentityCookie)
}

// Present reports whether both session cookies are on the request.
// Presence is the entire policy: no signature or provider-side check is made.
func Present(r *http.Request) bool {
	if _, err := cookie.Get(r, cookie.TokenCookie); err != nil {
		return false
	}
	if _, err := cookie.Get(r, cookie.IdentityCookie); err != nil {
		return false
	}
	return true
}

// IdentityFromRequest decodes the identity record from the request cookies
func IdentityFromRequest(r *http.Request) (Identity, error) {
	var identity Identity

	raw, err := cookie.Get(r, cookie.IdentityCookie)
	if err != nil {
		return identity, err
	}

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return identity, fmt.Errorf("failed to decode identity cookie: %w", err)
	}

	if err := json.Unmarshal([]byte(decoded), &identity); err != nil {
		return identity, fmt.Errorf("failed to parse identity cookie: %w", err)
	}
	return identity, nil
}

// BearerFromRequest returns the bearer credential from the request cookies
func BearerFromRequest(r *http.Request) (string, error) {
	return cookie.Get(r, cookie.TokenCookie)
}
