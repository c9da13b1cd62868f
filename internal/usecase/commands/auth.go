package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"groomer-crm/internal/domain/auth"
	"groomer-crm/internal/domain/catalog"
	"groomer-crm/internal/domain/settings"
	"groomer-crm/internal/domain/user"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/pkg/jwt"
	"groomer-crm/internal/pkg/password"
	"groomer-crm/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrEmailTaken           = errs.New("a user with this email already exists")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Signup(ctx context.Context, req SignupRequest) (uuid.UUID, error)
	Login(ctx context.Context, email, pw string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, hasher password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

// Signup creates the account with its default settings and starter service
// catalog in a single transaction.
func (a *authCommandsImpl) Signup(ctx context.Context, req SignupRequest) (uuid.UUID, error) {
	reg, err := auth.NewRegistration(req.Name, req.Email, req.Password)
	if err != nil {
		return uuid.Nil, err
	}
	hash, err := a.hasher.Hash(reg.Credentials().Password().Value())
	if err != nil {
		return uuid.Nil, err
	}

	u := user.NewUser(reg.Name(), reg.Credentials().Email(), hash)
	now := a.clock.Now()
	services, err := catalog.DefaultServices(u.ID(), now)
	if err != nil {
		return uuid.Nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Reads().UserByEmail(ctx, u.Email().Value())
		switch {
		case err == nil:
			return ErrEmailTaken
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailTaken)
			}
			return err
		}
		if err := tx.Settings().Upsert(ctx, tx.DB(), settings.Defaults(u.ID(), now)); err != nil {
			return err
		}
		for _, svc := range services {
			if err := tx.Services().Create(ctx, tx.DB(), svc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pw)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	account, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issueTokens(account.ID)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID, a.clock.Now())
	})
	if err != nil {
		// login already succeeded; only the last_login bookkeeping is lost
		slog.Warn("failed to update last login", "user_id", account.ID, "error", err.Error())
	}

	return &LoginResult{UserID: account.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// the account may have been removed since the token was issued
	if _, err := a.uow.CommandReads().UserByID(ctx, claims.UserID); err != nil {
		return nil, markNotFound(err, ErrUserNotFound)
	}

	return a.issueTokens(claims.UserID)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserSnapshot, error) {
	account, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(account.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}
