package session

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/riftrewind/rift-front/internal/cookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestIssue_SetsBothCookiesTogether(t *testing.T) {
	rec := httptest.NewRecorder()
	identity := Identity{PUUID: "abc", GameName: "Faker", TagLine: "KR1"}

	err := Issue(rec, identity, "access-token", true)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	tokenCookie := cookieByName(cookies, cookie.TokenCookie)
	identityCookie := cookieByName(cookies, cookie.IdentityCookie)
	require.NotNil(t, tokenCookie)
	require.NotNil(t, identityCookie)

	assert.Equal(t, "access-token", tokenCookie.Value)
	assert.True(t, tokenCookie.HttpOnly)
	assert.False(t, identityCookie.HttpOnly)

	decoded, err := url.QueryUnescape(identityCookie.Value)
	require.NoError(t, err)
	assert.JSONEq(t, `{"puuid":"abc","gameName":"Faker","tagLine":"KR1"}`, decoded)
}

func TestClear_ClearsBothCookiesTogether(t *testing.T) {
	rec := httptest.NewRecorder()
	Clear(rec)

	cookies := rec.Result().Cookies()
	tokenCookie := cookieByName(cookies, cookie.TokenCookie)
	identityCookie := cookieByName(cookies, cookie.IdentityCookie)
	require.NotNil(t, tokenCookie)
	require.NotNil(t, identityCookie)

	assert.Equal(t, -1, tokenCookie.MaxAge)
	assert.Equal(t, -1, identityCookie.MaxAge)
}

func TestPresent(t *testing.T) {
	tests := []struct {
		name     string
		cookies  []*http.Cookie
		expected bool
	}{
		{
			name:     "no_cookies",
			cookies:  nil,
			expected: false,
		},
		{
			name:     "token_only",
			cookies:  []*http.Cookie{{Name: cookie.TokenCookie, Value: "t"}},
			expected: false,
		},
		{
			name:     "identity_only",
			cookies:  []*http.Cookie{{Name: cookie.IdentityCookie, Value: "i"}},
			expected: false,
		},
		{
			name: "both_present",
			cookies: []*http.Cookie{
				{Name: cookie.TokenCookie, Value: "t"},
				{Name: cookie.IdentityCookie, Value: "i"},
			},
			expected: true,
		},
		{
			name: "both_present_garbage_values",
			cookies: []*http.Cookie{
				{Name: cookie.TokenCookie, Value: "not-a-real-token"},
				{Name: cookie.IdentityCookie, Value: "not-json"},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			for _, c := range tt.cookies {
				r.AddCookie(c)
			}
			assert.Equal(t, tt.expected, Present(r))
		})
	}
}

func TestIdentityFromRequest_RoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	identity := Identity{PUUID: "puuid-1", GameName: "Hide on bush", TagLine: "KR1"}
	require.NoError(t, Issue(rec, identity, "token", false))

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}

	got, err := IdentityFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, identity, got)

	bearer, err := BearerFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "token", bearer)
}

func TestIdentityFromRequest_MissingCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	_, err := IdentityFromRequest(r)
	assert.Error(t, err)
}
