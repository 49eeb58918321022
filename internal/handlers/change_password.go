package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-hotel-booking/internal/authz"
	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
)

//go:generate mockgen -source=change_password.go -destination=change_password_mock.go -package=handlers

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID int64, password string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// New password
	// required: true
	// default: new-secret
	Password string `json:"password"`
}

// ChangePasswordResponse represents a successful password change
// swagger:model ChangePasswordResponse
type ChangePasswordResponse struct {
	// Id of the user
	// default: 1
	User int64 `json:"user"`
}

// NewChangePasswordHandler returns an HTTP handler that changes the caller's password.
// @Summary Change password
// @Description Replaces the password of the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.ChangePasswordRequest true "New password"
// @Success 200 {object} handlers.ChangePasswordResponse "Password changed"
// @Failure 400 {object} handlers.ErrorResponse "Missing password"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized access"
// @Router /change_password [post]
// @Security BearerAuth
func NewChangePasswordHandler(auth Authorizer, svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := authorize(w, r, auth, authz.Authenticated)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, MsgInvalidBody)
			return
		}
		if req.Password == "" {
			writeError(w, http.StatusBadRequest, map[string]string{"password": MsgRequiredField})
			return
		}

		if err := svc.ChangePassword(r.Context(), user.UserID, req.Password); err != nil {
			logger.Log.Errorw("failed to change password", "userID", user.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, ChangePasswordResponse{User: user.UserID})
	}
}
