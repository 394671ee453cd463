package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	googleID     *string
	name         string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewLocalUser is a password-backed account created through signup.
func NewLocalUser(email Email, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		name:         email.LocalPart(),
		role:         RoleUser,
		isActive:     true,
	}
}

// NewFederatedUser is a Google-only account; it has no password.
func NewFederatedUser(profile FederatedProfile) (*User, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	email, ok := profile.VerifiedEmail()
	if !ok {
		email = Email{value: "g_" + profile.Subject + "@example.invalid"}
	}

	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = email.LocalPart()
	}

	subject := profile.Subject
	return &User{
		id:       uuid.New(),
		email:    email,
		googleID: &subject,
		name:     name,
		role:     RoleUser,
		isActive: true,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	email Email,
	passwordHash string,
	googleID *string,
	name string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		googleID:     googleID,
		name:         name,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) HasPassword() bool { return u.passwordHash != "" }

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) GoogleID() *string     { return u.googleID }
func (u *User) Name() string          { return u.name }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
