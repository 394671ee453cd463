package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrMissingIdentity = errors.New("federated identity requires a subject")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is always stored lower-cased so lookups are case-insensitive.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }

// FederatedProfile is what an external identity provider tells us about a user.
type FederatedProfile struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

func (p FederatedProfile) Validate() error {
	if strings.TrimSpace(p.Subject) == "" {
		return ErrMissingIdentity
	}
	return nil
}

// VerifiedEmail returns the normalized email only when the provider vouches for it.
func (p FederatedProfile) VerifiedEmail() (Email, bool) {
	if !p.EmailVerified {
		return Email{}, false
	}
	email, err := NewEmail(p.Email)
	if err != nil {
		return Email{}, false
	}
	return email, true
}
