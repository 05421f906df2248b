package cookie

import (
	"net/http"
	"time"

	"github.com/riftrewind/rift-front/internal/log"
)

// Cookie names shared across the login flows
const (
	// StateCookie holds the one-time OAuth state token
	StateCookie = "oauth_state"
	// TokenCookie holds the bearer credential for the session
	TokenCookie = "auth_token"
	// IdentityCookie holds the JSON-encoded account identity record.
	// It is readable by client-side scripts so pages can render the account.
	IdentityCookie = "user_info"
)

// Cookie lifetimes
const (
	StateTTL   = 10 * time.Minute
	SessionTTL = 7 * 24 * time.Hour
)

// SetState sets the short-lived OAuth state cookie
func SetState(w http.ResponseWriter, value string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     StateCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(StateTTL.Seconds()),
	})

	log.LogTraceWithFields("cookie", "State cookie set", map[string]any{
		"maxAge": StateTTL.String(),
		"secure": secure,
	})
}

// SetToken sets the bearer-credential cookie
func SetToken(w http.ResponseWriter, value string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionTTL.Seconds()),
	})
}

// SetIdentity sets the identity-record cookie. HttpOnly is deliberately off.
func SetIdentity(w http.ResponseWriter, value string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     IdentityCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionTTL.Seconds()),
	})
}

// Clear removes a cookie by setting MaxAge to -1
func Clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:   name,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// Get retrieves a cookie value from the request
func Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}
