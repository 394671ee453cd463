package readstore

import (
	"context"

	"travel-deals/internal/infra"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/pkg/pgconv"
	"travel-deals/internal/usecase/queries"
	"travel-deals/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Users, error)
	FindUserByEmail(ctx context.Context, db pgquery.DBTX, email string) (pgquery.Users, error)
	FindUserByGoogleID(ctx context.Context, db pgquery.DBTX, googleID string) (pgquery.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgquery.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgquery.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapUserErr("failed to find user by ID", err)
	}
	return toAuthorizedUserView(row), nil
}

func (r *UserReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapUserErr("failed to find user by ID", err)
	}
	return toUserSnapshot(row), nil
}

func (r *UserReadStore) SnapshotByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, wrapUserErr("failed to find user by email", err)
	}
	return toUserSnapshot(row), nil
}

func (r *UserReadStore) SnapshotByGoogleID(ctx context.Context, googleID string) (*shared.UserSnapshot, error) {
	row, err := r.queries.FindUserByGoogleID(ctx, r.db, googleID)
	if err != nil {
		return nil, wrapUserErr("failed to find user by google id", err)
	}
	return toUserSnapshot(row), nil
}

func wrapUserErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("user not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}

func toAuthorizedUserView(row pgquery.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Role:      row.Role,
		IsActive:  row.IsActive,
		HasGoogle: row.GoogleID.Valid,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}

func toUserSnapshot(row pgquery.Users) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: pgconv.StringFromPgtype(row.PasswordHash),
		GoogleID:     pgconv.StringPtrFromPgtype(row.GoogleID),
		Name:         row.Name,
		Role:         row.Role,
		IsActive:     row.IsActive,
	}
}
