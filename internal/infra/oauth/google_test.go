//go:build unit

package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"travel-deals/internal/pkg/config"
	"travel-deals/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestServer(t *testing.T, userInfoStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-123", r.Header.Get("Authorization"))
		if userInfoStatus != http.StatusOK {
			w.WriteHeader(userInfoStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"g-42","email":"Traveler@Example.com","email_verified":true,"name":"Tia"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testProvider(srv *httptest.Server) *GoogleProvider {
	return newGoogleProvider(&oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost/api/auth/google/callback",
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  srv.URL + "/auth",
			TokenURL: srv.URL + "/token",
		},
	}, srv.URL+"/userinfo")
}

func TestGoogleProvider_AuthCodeURL(t *testing.T) {
	srv := newTestServer(t, http.StatusOK)
	p := testProvider(srv)

	raw := p.AuthCodeURL("state-xyz")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "state-xyz", u.Query().Get("state"))
	assert.Equal(t, "client", u.Query().Get("client_id"))
	assert.Contains(t, u.Query().Get("scope"), "email")
}

func TestGoogleProvider_Exchange(t *testing.T) {
	t.Run("returns the profile", func(t *testing.T) {
		srv := newTestServer(t, http.StatusOK)
		p := testProvider(srv)

		profile, err := p.Exchange(context.Background(), "the-code")

		require.NoError(t, err)
		assert.Equal(t, "g-42", profile.Subject)
		assert.Equal(t, "Traveler@Example.com", profile.Email)
		assert.True(t, profile.EmailVerified)
		assert.Equal(t, "Tia", profile.Name)
	})

	t.Run("userinfo failure is reported", func(t *testing.T) {
		srv := newTestServer(t, http.StatusUnauthorized)
		p := testProvider(srv)

		_, err := p.Exchange(context.Background(), "the-code")

		assert.True(t, errs.Is(err, ErrUserInfo))
	})
}

func TestNewGoogleProvider_DisabledWithoutCredentials(t *testing.T) {
	assert.Nil(t, NewGoogleProvider(config.GoogleConfig{}))
}
