package api

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"travel-deals/internal/pkg/config"
)

var (
	errMissingUser  = errors.New("authenticated user missing from context")
	errInvalidID    = errors.New("invalid id")
	errStateInvalid = errors.New("oauth state mismatch")
)

// SessionSettings drives cookie lifetimes and the post-login redirects.
type SessionSettings struct {
	Cookie        config.CookieConfig
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	AdminTTL      time.Duration
	PublicBaseURL string
}

func newOAuthState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
