package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
	"github.com/sbilibin2017/gw-hotel-booking/internal/services"
	"github.com/sbilibin2017/gw-hotel-booking/internal/validation"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, realname string) (string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Real name
	// required: true
	// default: Alice Liddell
	Realname string `json:"realname"`
}

// fieldErrors reports missing fields and values wider than their columns.
func (req RegisterRequest) fieldErrors() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(req.Username) == "" {
		errs["username"] = MsgRequiredField
	} else if msg, long := validation.TooLong("username", req.Username); long {
		errs["username"] = msg
	}
	if req.Password == "" {
		errs["password"] = MsgRequiredField
	}
	if strings.TrimSpace(req.Realname) == "" {
		errs["realname"] = MsgRequiredField
	} else if msg, long := validation.TooLong("realname", req.Realname); long {
		errs["realname"] = msg
	}
	return errs
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account and logs it in. Username must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.TokenResponse "User registered and logged in"
// @Failure 400 {object} handlers.ErrorResponse "Missing or too long fields, or username already exists"
// @Router /users [post]
func NewRegisterHandler(svc Registerer, sessions SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, MsgInvalidBody)
			return
		}

		if errs := req.fieldErrors(); len(errs) > 0 {
			writeError(w, http.StatusBadRequest, errs)
			return
		}

		token, err := svc.Register(r.Context(), req.Username, req.Password, req.Realname)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, MsgUsernameExists)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, MsgInternalError)
			}
			return
		}

		startSession(w, r, sessions, token)
		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}
