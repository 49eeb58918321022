// Package authz resolves the caller of a request and checks it against the
// access level an endpoint requires.
package authz

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
)

//go:generate mockgen -source=authz.go -destination=authz_mock.go -package=authz

// Level is the access an endpoint requires.
type Level int

const (
	// Anonymous endpoints accept any caller.
	Anonymous Level = iota
	// Authenticated endpoints need a valid token.
	Authenticated
	// Admin endpoints need a valid token of an admin user.
	Admin
)

func (l Level) String() string {
	switch l {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

var (
	// ErrUnauthorized means the request carries no usable token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the caller lacks the required level.
	ErrForbidden = errors.New("forbidden")
)

// TokenExtractor pulls the raw token out of a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// TokenVerifier resolves a token to its user; nil, nil for a rejected token.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*models.UserDB, error)
}

// Policy authorizes requests.
type Policy struct {
	extractor TokenExtractor
	verifier  TokenVerifier
}

// NewPolicy creates a new Policy.
func NewPolicy(extractor TokenExtractor, verifier TokenVerifier) *Policy {
	return &Policy{extractor: extractor, verifier: verifier}
}

// Authorize returns the caller when the request satisfies level. Anonymous
// always passes and yields a nil user. Any other error than ErrUnauthorized or
// ErrForbidden comes from the user store.
func (p *Policy) Authorize(ctx context.Context, r *http.Request, level Level) (*models.UserDB, error) {
	if level == Anonymous {
		return nil, nil
	}

	token, err := p.extractor.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Debugw("no token in request", "path", r.URL.Path, "err", err)
		return nil, ErrUnauthorized
	}

	user, err := p.verifier.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	if level == Admin && !user.IsAdmin {
		logger.Log.Warnw("admin access denied", "userID", user.UserID, "path", r.URL.Path)
		return nil, ErrForbidden
	}

	return user, nil
}

// IsDenied reports whether err is an access decision rather than a failure.
func IsDenied(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}
