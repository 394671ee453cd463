package converter

import (
	"travel-deals/internal/domain/user"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/pkg/pgconv"
)

func UserToInfra(u *user.User) pgquery.CreateUserParams {
	return pgquery.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: pgconv.NullableStringToPgtype(u.PasswordHash()),
		GoogleID:     pgconv.StringPtrToPgtype(u.GoogleID()),
		Name:         u.Name(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}
}
