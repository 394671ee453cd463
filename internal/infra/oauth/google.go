// Package oauth implements Google sign-in on top of golang.org/x/oauth2.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"travel-deals/internal/domain/user"
	"travel-deals/internal/pkg/config"
	"travel-deals/internal/pkg/errs"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

var ErrUserInfo = errs.New("failed to read google profile")

type GoogleProvider struct {
	cfg         *oauth2.Config
	userInfoURL string
}

// NewGoogleProvider returns nil when no client id is configured.
func NewGoogleProvider(cfg config.GoogleConfig) *GoogleProvider {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil
	}
	return newGoogleProvider(&oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}, googleUserInfoURL)
}

func newGoogleProvider(cfg *oauth2.Config, userInfoURL string) *GoogleProvider {
	return &GoogleProvider{cfg: cfg, userInfoURL: userInfoURL}
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

type userInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

func (p *GoogleProvider) Exchange(ctx context.Context, code string) (user.FederatedProfile, error) {
	token, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return user.FederatedProfile{}, errs.Wrap(err, "google: exchange code")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return user.FederatedProfile{}, errs.Wrap(err, "google: build userinfo request")
	}

	resp, err := p.cfg.Client(ctx, token).Do(req)
	if err != nil {
		return user.FederatedProfile{}, errs.Mark(errs.Wrap(err, "google: userinfo"), ErrUserInfo)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return user.FederatedProfile{}, errs.Mark(fmt.Errorf("google: userinfo status %d", resp.StatusCode), ErrUserInfo)
	}

	var info userInfo
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&info); err != nil {
		return user.FederatedProfile{}, errs.Mark(errs.Wrap(err, "google: decode userinfo"), ErrUserInfo)
	}

	return user.FederatedProfile{
		Subject:       info.Sub,
		Email:         info.Email,
		EmailVerified: info.EmailVerified,
		Name:          info.Name,
	}, nil
}
