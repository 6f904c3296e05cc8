package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bidfair/backend/internal/config"
	"github.com/bidfair/backend/internal/db"
	"github.com/bidfair/backend/internal/model"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
)

type AuthService struct {
	users       UserStore
	tokens      TokenStore
	jwtSecret   []byte
	accessTTL   time.Duration
	allowSignup bool
}

type authClaims struct {
	UserID string         `json:"userId"`
	Email  string         `json:"email"`
	Role   model.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(users UserStore, tokens TokenStore, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_ACCESS_TTL", ErrMisconfigured)
	}

	allowSignup, err := parseBool(cfg.AllowSignup, false)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ALLOW_SIGNUP", ErrMisconfigured)
	}

	return &AuthService{
		users:       users,
		tokens:      tokens,
		jwtSecret:   []byte(cfg.JWTSecret),
		accessTTL:   accessTTL,
		allowSignup: allowSignup,
	}, nil
}

func (s *AuthService) AllowSignup() bool {
	return s.allowSignup
}

// EnsureAdmin creates the bootstrap admin account on first start. A
// missing ADMIN_EMAIL/ADMIN_PASSWORD pair disables the bootstrap.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !db.IsNoRows(err) {
		return err
	}

	if err := validatePassword(password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.users.CreateUser(ctx, &model.User{
		ID:             uuid.NewString(),
		Name:           "admin",
		Email:          email,
		Role:           model.RoleAdmin,
		HashedPassword: string(hash),
	})
	return err
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	if !s.allowSignup {
		return nil, ErrForbidden
	}

	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, &model.User{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		Role:           model.RoleCustomer,
		HashedPassword: string(hash),
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return s.issueToken(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrUnauthorized
	}

	return s.issueToken(ctx, user)
}

// Authenticate verifies the bearer token's signature and expiry, then
// cross-checks the tokens table. A token whose row has been deleted is
// treated as revoked even if the signature is still valid.
func (s *AuthService) Authenticate(ctx context.Context, tokenStr string) (*model.AuthUser, error) {
	claims, err := s.parseAccessToken(tokenStr)
	if err != nil {
		return nil, err
	}

	record, err := s.tokens.GetToken(ctx, claims.UserID, tokenStr)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if time.Now().After(record.ExpiresAt) {
		return nil, ErrUnauthorized
	}

	return &model.AuthUser{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// Logout deletes the persisted token row, revoking the session.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	claims, err := s.parseAccessToken(tokenStr)
	if err != nil {
		return err
	}
	return s.tokens.DeleteToken(ctx, claims.UserID, tokenStr)
}

// PurgeExpiredTokens removes stale rows from the allow-list table.
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	return s.tokens.DeleteExpiredTokens(ctx)
}

func (s *AuthService) issueToken(ctx context.Context, user *model.User) (*model.AuthResponse, error) {
	now := time.Now()
	expiresAt := now.Add(s.accessTTL)

	claims := authClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	if _, err := s.tokens.InsertToken(ctx, &model.Token{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     signed,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		Email:       user.Email,
		Role:        user.Role,
	}, nil
}

func (s *AuthService) parseAccessToken(tokenStr string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	if claims.UserID == "" {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be between %d and %d characters",
			ErrInvalidInput, minPasswordLength, maxPasswordLength)
	}
	return nil
}

func parseBool(value string, fallback bool) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, err
	}
	return parsed, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed id %q", ErrInvalidInput, id)
	}
	return nil
}
