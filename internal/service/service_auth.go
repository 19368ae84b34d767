package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/crypto"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes passwords at sign-up and compares them at sign-in.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and PasswordHasher and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignUp creates a new user account and issues a token for it.
//
// The password is hashed before it reaches the repository. The returned user
// carries an empty order list.
//
// Returns:
//   - ErrInvalidDataProvided if the password cannot be hashed (longer than
//     72 bytes).
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
//   - ErrTokenCreationFailed if the token cannot be signed.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("password hashing failed")
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("token creation failed")
		return models.AuthResponse{}, err
	}

	return newAuthResponse(user, token), nil
}

// SignIn authenticates an existing user and issues a token.
//
// Every failure (unknown email, wrong password, storage or token errors)
// is reported as ErrInvalidCredentials so that the response does not reveal
// which part was wrong. The real cause is logged.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	ok, err := a.hasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("password comparison failed")
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if !ok {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("token creation failed")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return newAuthResponse(user, token), nil
}

// Validate verifies tokenString and returns the user it was issued for,
// with the user's orders and items.
//
// A token that fails verification and a token whose user no longer exists
// both yield ErrTokenIsExpiredOrInvalid.
func (a *authService) Validate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("token validation failed")
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNotFound) {
		log.Err(err).Int64("user_id", token.UserID).Msg("token owner does not exist")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("token owner lookup failed")
		return models.User{}, fmt.Errorf("token owner lookup failed: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong key or algorithm,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func newAuthResponse(user models.User, token models.Token) models.AuthResponse {
	user.PasswordHash = ""
	return models.AuthResponse{User: user, Token: token.String()}
}
