package auth

import (
	"context"
	"errors"
	"time"

	"comedyslots/internal/shared/apperrors"
	"comedyslots/internal/shared/config"
	"comedyslots/internal/users"
	"comedyslots/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Causes carried inside the AppErrors the service returns; match them with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidRole        = errors.New("role must be PROMOTER or COMEDIAN")
	ErrInvalidToken       = errors.New("invalid token")
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
}

type service struct {
	repo   Repository
	config *config.Config
	log    *logger.Logger
}

func NewService(repo Repository, cfg *config.Config, log *logger.Logger) Service {
	return &service{
		repo:   repo,
		config: cfg,
		log:    log,
	}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	role, err := users.ParseRole(req.Role)
	if err != nil {
		return nil, apperrors.Wrap(ErrInvalidRole, apperrors.KindValidationFailed, "Validation failed").
			WithDetails(map[string]any{"role": ErrInvalidRole.Error()})
	}

	taken, err := s.repo.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Dependency("failed to check email", err)
	}
	if taken {
		return nil, emailTaken()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := &users.User{
		Name:     req.Name,
		Email:    normalizeEmail(req.Email),
		Password: string(hashed),
		Role:     role,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return nil, emailTaken()
		}
		return nil, apperrors.Dependency("failed to create user", err)
	}

	s.log.LogAuthSuccess(ctx, user.ID.String(), "register")
	return s.authResponse(user)
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, ErrUserNotFound):
		s.log.LogAuthFailure(ctx, "unknown email", "")
		return nil, badCredentials()
	case err != nil:
		return nil, apperrors.Dependency("failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.log.LogAuthFailure(ctx, "wrong password", "")
		return nil, badCredentials()
	}

	s.log.LogAuthSuccess(ctx, user.ID.String(), "password")
	return s.authResponse(user)
}

// RefreshToken issues a new pair from a refresh token. Role and email come from
// the stored user, not from the old token.
func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validateToken(refreshToken)
	if err != nil || claims.Type != tokenTypeRefresh {
		return nil, invalidToken()
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, invalidToken()
	}

	user, err := s.repo.FindByID(ctx, userID)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return nil, apperrors.Wrap(ErrUserNotFound, apperrors.KindUnauthorized, "User not found")
	case err != nil:
		return nil, apperrors.Dependency("failed to load user", err)
	}

	return s.generateTokenPair(user)
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return nil, apperrors.Wrap(ErrUserNotFound, apperrors.KindUnauthorized, "User not found")
	case err != nil:
		return nil, apperrors.Dependency("failed to load user", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *service) ValidateToken(tokenString string) (*JWTClaims, error) {
	return s.validateToken(tokenString)
}

func (s *service) authResponse(user *users.User) (*AuthResponse, error) {
	pair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:         toUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (s *service) generateTokenPair(user *users.User) (*TokenPair, error) {
	now := time.Now()

	access, err := s.signToken(user, tokenTypeAccess, now, s.config.JWT.JWTExpiresIn)
	if err != nil {
		return nil, apperrors.Internal("failed to sign token", err)
	}
	refresh, err := s.signToken(user, tokenTypeRefresh, now, s.config.JWT.RefreshExpiresIn)
	if err != nil {
		return nil, apperrors.Internal("failed to sign token", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func (s *service) signToken(user *users.User, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := JWTClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWT.Secret))
}

func (s *service) validateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.JWT.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

func emailTaken() *apperrors.AppError {
	return apperrors.Wrap(ErrUserAlreadyExists, apperrors.KindConflict, "User with this email already exists")
}

func badCredentials() *apperrors.AppError {
	return apperrors.Wrap(ErrInvalidCredentials, apperrors.KindUnauthorized, "Invalid email or password")
}

func invalidToken() *apperrors.AppError {
	return apperrors.Wrap(ErrInvalidToken, apperrors.KindUnauthorized, "Invalid or expired refresh token")
}
