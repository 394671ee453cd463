package response

import (
	"time"

	"travel-deals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// SessionResponse echoes the tokens also set as cookies, for non-browser clients.
type SessionResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	Role         string    `json:"role"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	HasGoogle bool       `json:"has_google"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func FromUserView(v *queries.AuthorizedUserView) (*UserResponse, error) {
	var out UserResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

type AdminSessionResponse struct {
	AdminToken string `json:"admin_token"`
}
