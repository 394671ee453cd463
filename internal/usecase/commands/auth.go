package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"travel-deals/internal/domain/user"
	"travel-deals/internal/infra"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/pkg/jwt"
	"travel-deals/internal/pkg/password"
	"travel-deals/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound          = errs.New("user not found")
	ErrEmailTaken            = errs.New("email already registered")
	ErrInvalidCredentials    = errs.New("invalid credentials")
	ErrUserInactive          = errs.New("user inactive")
	ErrTokenGeneration       = errs.New("token generation failed")
	ErrTokenValidation       = errs.New("token validation failed")
	ErrFederatedLoginFailed  = errs.New("federated login failed")
	ErrFederatedLoginOff     = errs.New("federated login not configured")
	ErrAdminLoginUnavailable = errs.New("admin login not configured")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
	Created   bool
}

type AuthSettings struct {
	PasswordCost  int
	AdminPassword string
}

type AuthCommands interface {
	Signup(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	FederatedAuthURL(state string) (string, error)
	LoginFederated(ctx context.Context, code string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	AdminLogin(ctx context.Context, adminPassword string) (string, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	identity   IdentityProvider
	settings   AuthSettings
}

// identity may be nil when Google login is not configured.
func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, identity IdentityProvider, settings AuthSettings) AuthCommands {
	if settings.PasswordCost == 0 {
		settings.PasswordCost = password.DefaultCost
	}
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		identity:   identity,
		settings:   settings,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	hash, err := password.HashPasswordWithCost(credentials.Password().Value(), a.settings.PasswordCost)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.NewLocalUser(credentials.Email(), hash)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, findErr := tx.Reads().UserByEmail(ctx, credentials.Email().Value())
		switch {
		case findErr == nil:
			return ErrEmailTaken
		case !infra.IsKind(findErr, infra.KindNotFound):
			return errs.Mark(findErr, ErrDatabaseOperationFailed)
		}

		if createErr := tx.Users().Create(ctx, tx.DB(), newUser); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), newUser.ID())
	})
	if err != nil {
		return nil, err
	}

	result, err := a.issue(newUser.ID(), newUser.Role())
	if err != nil {
		return nil, err
	}
	result.Created = true
	return result, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	normalized, err := user.NewEmail(email)
	if err != nil || plainPassword == "" {
		return nil, ErrInvalidCredentials
	}

	snapshot, err := a.uow.CommandReads().UserByEmail(ctx, normalized.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a wrong password to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if snapshot.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(snapshot.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !snapshot.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	a.touchLastLogin(ctx, snapshot.ID)
	return a.issue(snapshot.ID, role)
}

func (a *authCommandsImpl) FederatedAuthURL(state string) (string, error) {
	if a.identity == nil {
		return "", ErrFederatedLoginOff
	}
	return a.identity.AuthCodeURL(state), nil
}

// LoginFederated links by verified email first, then by provider subject,
// and creates a password-less account on first sight.
func (a *authCommandsImpl) LoginFederated(ctx context.Context, code string) (*LoginResult, error) {
	if a.identity == nil {
		return nil, ErrFederatedLoginOff
	}

	profile, err := a.identity.Exchange(ctx, code)
	if err != nil {
		return nil, errs.Mark(err, ErrFederatedLoginFailed)
	}
	if err := profile.Validate(); err != nil {
		return nil, errs.Mark(err, ErrFederatedLoginFailed)
	}

	var (
		account *shared.UserSnapshot
		created bool
	)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = false
		found, err := a.resolveFederated(ctx, tx, profile)
		if err != nil {
			return err
		}
		if found != nil {
			account = found
			return nil
		}

		newUser, err := user.NewFederatedUser(profile)
		if err != nil {
			return errs.Mark(err, ErrFederatedLoginFailed)
		}
		if err := tx.Users().Create(ctx, tx.DB(), newUser); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		account = &shared.UserSnapshot{
			ID:       newUser.ID(),
			Email:    newUser.Email().Value(),
			GoogleID: newUser.GoogleID(),
			Name:     newUser.Name(),
			Role:     newUser.Role().String(),
			IsActive: newUser.IsActive(),
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !account.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrFederatedLoginFailed)
	}

	a.touchLastLogin(ctx, account.ID)
	result, err := a.issue(account.ID, role)
	if err != nil {
		return nil, err
	}
	result.Created = created
	return result, nil
}

func (a *authCommandsImpl) resolveFederated(ctx context.Context, tx shared.Tx, profile user.FederatedProfile) (*shared.UserSnapshot, error) {
	if email, ok := profile.VerifiedEmail(); ok {
		byEmail, err := tx.Reads().UserByEmail(ctx, email.Value())
		switch {
		case err == nil:
			if byEmail.GoogleID == nil {
				if err := tx.Users().LinkGoogleID(ctx, tx.DB(), byEmail.ID, profile.Subject); err != nil {
					return nil, errs.Mark(err, ErrDatabaseOperationFailed)
				}
				subject := profile.Subject
				byEmail.GoogleID = &subject
			}
			return byEmail, nil
		case !infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	byGoogle, err := tx.Reads().UserByGoogleID(ctx, profile.Subject)
	switch {
	case err == nil:
		return byGoogle, nil
	case infra.IsKind(err, infra.KindNotFound):
		return nil, nil
	default:
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Validate user still exists and is active
	snapshot, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !snapshot.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	result, err := a.issue(snapshot.ID, role)
	if err != nil {
		return nil, err
	}
	return result.TokenPair, nil
}

func (a *authCommandsImpl) AdminLogin(_ context.Context, adminPassword string) (string, error) {
	if a.settings.AdminPassword == "" {
		return "", ErrAdminLoginUnavailable
	}
	if subtle.ConstantTimeCompare([]byte(adminPassword), []byte(a.settings.AdminPassword)) != 1 {
		return "", ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateAdminToken()
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}
	return token, nil
}

// issue always mints a new pair; each token carries a fresh jti.
func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*LoginResult, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID: userID,
		Role:   role,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) touchLastLogin(ctx context.Context, userID uuid.UUID) {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userID)
	})
	if err != nil {
		// login already succeeded; last_login is informational
		slog.Warn("failed to update last login", "user_id", userID, "error", err.Error())
	}
}
