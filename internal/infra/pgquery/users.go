package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, password_hash, google_id, name, role, is_active, last_login, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (Users, error) {
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.GoogleID,
		&i.Name,
		&i.Role,
		&i.IsActive,
		&i.LastLogin,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createUser = `INSERT INTO users (id, email, password_hash, google_id, name, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

type CreateUserParams struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	PasswordHash pgtype.Text `json:"password_hash"`
	GoogleID     pgtype.Text `json:"google_id"`
	Name         string      `json:"name"`
	Role         string      `json:"role"`
	IsActive     bool        `json:"is_active"`
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (Users, error) {
	row := db.QueryRow(ctx, createUser,
		arg.ID,
		arg.Email,
		arg.PasswordHash,
		arg.GoogleID,
		arg.Name,
		arg.Role,
		arg.IsActive,
	)
	return scanUser(row)
}

const findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByEmail, email))
}

const findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByID, id))
}

const findUserByGoogleID = `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`

func (q *Queries) FindUserByGoogleID(ctx context.Context, db DBTX, googleID string) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByGoogleID, googleID))
}

const linkUserGoogleID = `UPDATE users SET google_id = $2, updated_at = NOW()
WHERE id = $1 AND google_id IS NULL`

func (q *Queries) LinkUserGoogleID(ctx context.Context, db DBTX, id uuid.UUID, googleID string) (int64, error) {
	result, err := db.Exec(ctx, linkUserGoogleID, id, googleID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateUserLastLogin = `UPDATE users SET last_login = NOW(), updated_at = NOW() WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id)
	return err
}
