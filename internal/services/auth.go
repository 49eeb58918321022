package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-hotel-booking/internal/jwt"
	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
	"github.com/sbilibin2017/gw-hotel-booking/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, realname, passwordHash string, isAdmin bool) (int64, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// ClaimsParser decodes and verifies a token.
type ClaimsParser interface {
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration, login, password changes and token verification.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	claims ClaimsParser
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, claims ClaimsParser) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		claims: claims,
	}
}

// Register creates a regular user and returns a token for it.
func (svc *AuthService) Register(ctx context.Context, username, password, realname string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if user != nil {
		logger.Log.Warnw("user already exists", "username", username)
		return "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	userID, err := svc.writer.Save(ctx, username, realname, string(hashedPassword), false)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	logger.Log.Infow("user registered", "userID", userID, "username", username)
	return token, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// ChangePassword stores a new hash for the user.
func (svc *AuthService) ChangePassword(ctx context.Context, userID int64, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "userID", userID, "err", err)
		return fmt.Errorf("update password: %w", err)
	}

	logger.Log.Infow("password changed", "userID", userID)
	return nil
}

// VerifyToken resolves the user a token was issued to. A bad signature, an
// expired token and an unknown user all yield nil, nil; an error means the
// user store failed.
func (svc *AuthService) VerifyToken(ctx context.Context, token string) (*models.UserDB, error) {
	claims, err := svc.claims.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Debugw("token rejected", "err", err)
		return nil, nil
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load token user", "userID", claims.UserID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Debugw("token user no longer exists", "userID", claims.UserID)
		return nil, nil
	}
	return user, nil
}
