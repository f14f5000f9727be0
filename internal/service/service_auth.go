package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/utils"
	"github.com/MKhiriev/go-video-notes/internal/validators"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// decoyHash is compared against when a login is unknown, so both failure
// paths spend one bcrypt comparison.
var decoyHash, _ = bcrypt.GenerateFromPassword([]byte("video-notes-decoy"), bcrypt.DefaultCost)

// authService keeps accounts as bcrypt hashes and signs HS256 access tokens
// whose subject is the user id.
type authService struct {
	users     store.UserRepository
	validator validators.Validator

	signKey  string
	issuer   string
	lifetime time.Duration
	cost     int

	logger *logger.Logger
}

func NewAuthService(users store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:     users,
		validator: validator,
		signKey:   cfg.TokenSignKey,
		issuer:    cfg.TokenIssuer,
		lifetime:  cfg.TokenDuration,
		cost:      bcrypt.DefaultCost,
		logger:    logger,
	}
}

// RegisterUser validates the credentials and stores the account with its
// password hashed. A taken login surfaces as store.ErrLoginAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("login", user.Login).Logger()

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Warn().Err(err).Msg("registration rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.cost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	user.PasswordHash, user.Password = string(hash), ""

	created, err := a.users.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("account not stored")
		return models.User{}, fmt.Errorf("create user %q: %w", user.Login, err)
	}
	return created, nil
}

// Login returns the account whose hash matches the password, with the hash
// cleared. Unknown logins wrap store.ErrNoUserWasFound and bad passwords
// return ErrWrongPassword.
func (a *authService) Login(ctx context.Context, creds models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("login", creds.Login).Logger()

	if creds.Login == "" || creds.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.users.FindUserByLogin(ctx, creds.Login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_ = bcrypt.CompareHashAndPassword(decoyHash, []byte(creds.Password))
		}
		log.Warn().Err(err).Msg("login lookup failed")
		return models.User{}, fmt.Errorf("find user %q: %w", creds.Login, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Warn().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	user.PasswordHash = ""
	return user, nil
}

func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.issuer, user.UserID, a.lifetime, a.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken checks signature, issuer and expiry. Expiry yields
// ErrTokenIsExpired; everything else ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(_ context.Context, raw string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(raw, a.signKey, a.issuer)
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, ErrTokenIsExpired
	default:
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
}
