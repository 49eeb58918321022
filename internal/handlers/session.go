package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
	"github.com/sbilibin2017/gw-hotel-booking/internal/repositories"
)

//go:generate mockgen -source=session.go -destination=session_mock.go -package=handlers

// SessionCookie names the cookie holding the session id.
const SessionCookie = "session_id"

// SessionStore keeps the token issued to a browser session.
type SessionStore interface {
	Save(ctx context.Context, sessionID, token string) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// TokenResponse represents a response carrying a token
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// startSession stores token under a new session id and sets the cookie.
// Failures are logged; the token is still returned to the caller.
func startSession(w http.ResponseWriter, r *http.Request, sessions SessionStore, token string) {
	if sessions == nil {
		return
	}

	sessionID := uuid.NewString()
	if err := sessions.Save(r.Context(), sessionID, token); err != nil {
		logger.Log.Errorw("failed to save session", "error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// NewGetTokenHandler returns an HTTP handler that reads the token back from the session.
// @Summary Get session token
// @Description Returns the token stored for the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.TokenResponse "Token"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /get_token [get]
func NewGetTokenHandler(sessions SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}

		token, err := sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, repositories.ErrSessionNotFound) {
				writeError(w, http.StatusNotFound, MsgNotFound)
				return
			}
			logger.Log.Errorw("failed to read session", "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}

// NewLogoutHandler returns an HTTP handler that drops the session.
// @Summary Logout
// @Description Removes the session and clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Empty object"
// @Router /logout [post]
func NewLogoutHandler(sessions SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			if err := sessions.Delete(r.Context(), cookie.Value); err != nil {
				logger.Log.Errorw("failed to delete session", "error", err)
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		writeJSON(w, http.StatusOK, struct{}{})
	}
}
