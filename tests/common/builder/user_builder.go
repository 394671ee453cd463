//go:build unit || e2e

package builder

import (
	"time"

	"travel-deals/internal/domain/user"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/usecase/queries"
	"travel-deals/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	GoogleID     *string
	Name         string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Name:         "test",
		Role:         "user",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// BuildDomain goes through NewLocalUser, so it yields a fresh id and the user role.
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewLocalUser(email, u.PasswordHash), nil
}

// BuildReconstructed keeps every builder field, including role and activity.
func (u *UserBuilder) BuildReconstructed() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return user.Reconstruct(u.ID, email, u.PasswordHash, u.GoogleID, u.Name, role, nil, u.IsActive, now, now), nil
}

func (u *UserBuilder) BuildInfra() pgquery.Users {
	now := time.Now()
	googleID := pgtype.Text{}
	if u.GoogleID != nil {
		googleID = pgtype.Text{String: *u.GoogleID, Valid: true}
	}
	passwordHash := pgtype.Text{}
	if u.PasswordHash != "" {
		passwordHash = pgtype.Text{String: u.PasswordHash, Valid: true}
	}

	return pgquery.Users{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: passwordHash,
		GoogleID:     googleID,
		Name:         u.Name,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		GoogleID:     u.GoogleID,
		Name:         u.Name,
		Role:         u.Role,
		IsActive:     u.IsActive,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		HasGoogle: u.GoogleID != nil,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithGoogleID(googleID string) *UserBuilder {
	u.GoogleID = &googleID
	return u
}

func (u *UserBuilder) WithoutPassword() *UserBuilder {
	u.PasswordHash = ""
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
