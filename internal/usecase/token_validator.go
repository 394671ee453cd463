package usecase

import (
	"errors"

	"travel-deals/internal/domain/user"
	"travel-deals/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrWrongTokenType = errors.New("wrong token type")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
	ValidateAdminToken(tokenString string) error
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken accepts access tokens only; refresh and admin tokens are rejected.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", ErrWrongTokenType
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}

func (t *tokenValidatorImpl) ValidateAdminToken(tokenString string) error {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return err
	}
	if claims.TokenType != jwt.TokenTypeAdmin || claims.Role != user.RoleAdmin.String() {
		return ErrWrongTokenType
	}
	return nil
}
