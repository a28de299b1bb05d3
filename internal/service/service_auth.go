// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/store"
	"github.com/MKhiriev/miam-miam/internal/utils"
	"github.com/MKhiriev/miam-miam/models"
)

// authService is the concrete implementation of AuthService.
// It registers users with bcrypt password hashes and issues HS256 JWTs
// carrying the user's id, email and name.
type authService struct {
	// users is the user document.
	users store.RecordStore[models.User]

	// ids generates user ids.
	ids *utils.UUIDGenerator

	// bcryptCost is the work factor used when hashing new passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over the user document,
// populated with security parameters from cfg.
func NewAuthService(users store.RecordStore[models.User], cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:         users,
		ids:           utils.NewUUIDGenerator(),
		bcryptCost:    cfg.BcryptCost,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates a new user account.
//
// Returns:
//   - ErrInvalidDataProvided if email, password or name is empty.
//   - ErrPasswordTooLong if the password exceeds bcrypt's input limit.
//   - ErrEmailTaken if another user already registered the email.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" || req.Name == "" {
		log.Error().Str("email", req.Email).Msg("invalid user data provided")
		return ErrInvalidDataProvided
	}
	if len(req.Password) > utils.MaxPasswordBytes {
		log.Error().Str("email", req.Email).Int("password_len", len(req.Password)).Msg("password too long")
		return ErrPasswordTooLong
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return err
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Favorites:    []string{},
	}

	err = a.users.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		if _, found := findUserByEmail(users, req.Email); found {
			return nil, ErrEmailTaken
		}
		return append(users, user), nil
	})
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			log.Err(err).Str("func", "authService.Register").Msg("user creation ended with error")
		}
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return nil
}

// Login checks the credentials and issues a token. Unknown emails and wrong
// passwords both return ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	users, err := a.users.Load(ctx)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.LoginResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	user, found := findUserByEmail(users, req.Email)
	if !found || !utils.CheckPassword(user.PasswordHash, req.Password) {
		log.Warn().Str("email", req.Email).Msg("wrong email or password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	identity := models.Authenticated{ID: user.ID, Email: user.Email, Name: user.Name}
	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.LoginResponse{Token: token.String(), User: user.Info()}, nil
}

// ParseToken validates a raw JWT. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Authenticated, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Authenticated{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Claims.Requester(), nil
}

func findUserByEmail(users []models.User, email string) (models.User, bool) {
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func findUserByID(users []models.User, id string) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
