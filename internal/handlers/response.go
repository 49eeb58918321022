package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-hotel-booking/internal/authz"
	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
)

//go:generate mockgen -source=response.go -destination=response_mock.go -package=handlers

// Error messages shared by all handlers.
const (
	MsgUnauthorized   = "Unauthorized access"
	MsgNotFound       = "Not found"
	MsgNoData         = "No data found"
	MsgInvalidBody    = "Invalid request body"
	MsgInternalError  = "Internal server error"
	MsgRequiredField  = "This field is required"
	MsgInvalidLogin   = "Invalid username or password"
	MsgUsernameExists = "User with this username already exists"
)

var errNotObject = errors.New("request body must be a non-empty JSON object")

// Authorizer resolves the caller of a request for a required access level.
type Authorizer interface {
	Authorize(ctx context.Context, r *http.Request, level authz.Level) (*models.UserDB, error)
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message or a map of field errors
	// default: Unauthorized access
	Error any `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg any) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// authorize runs the access check and answers the request itself when it fails.
func authorize(w http.ResponseWriter, r *http.Request, auth Authorizer, level authz.Level) (*models.UserDB, bool) {
	user, err := auth.Authorize(r.Context(), r, level)
	if err != nil {
		if authz.IsDenied(err) {
			writeError(w, http.StatusForbidden, MsgUnauthorized)
			return nil, false
		}
		logger.Log.Errorw("failed to authorize request", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, MsgInternalError)
		return nil, false
	}
	return user, true
}

// decodeObject reads a JSON object body keeping numbers as json.Number.
func decodeObject(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, errNotObject
	}
	return payload, nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
