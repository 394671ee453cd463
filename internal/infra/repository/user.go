package repository

import (
	"context"

	"travel-deals/internal/domain/user"
	"travel-deals/internal/infra"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateUserParams) (pgquery.Users, error)
	LinkUserGoogleID(ctx context.Context, db pgquery.DBTX, id uuid.UUID, googleID string) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db pgquery.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx pgquery.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, tx, converter.UserToInfra(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

// LinkGoogleID never overwrites an existing link.
func (r *UserRepository) LinkGoogleID(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID, googleID string) error {
	affected, err := r.queries.LinkUserGoogleID(ctx, tx, userID, googleID)
	if err != nil {
		return infra.WrapRepoErr("failed to link google account", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found or already linked", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
