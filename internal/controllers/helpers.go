package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/homeseek/backend/internal/middleware"
	"github.com/homeseek/backend/internal/models"
	"github.com/homeseek/backend/internal/utils"
)

var validate = validator.New()

// decodeAndValidate reads a JSON body into dst and runs the validator
// over its tags.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	return validate.Struct(dst)
}

// sessionUser extracts the authenticated user set by the session
// middleware. Responds 400 and returns false if the handler was wired
// without the middleware.
func sessionUser(w http.ResponseWriter, r *http.Request) (models.UserData, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "Unable to retrieve user session", nil)
		return models.UserData{}, false
	}
	return session.UserData, true
}

func pathUUID(r *http.Request, key string) (uuid.UUID, error) {
	raw := mux.Vars(r)[key]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID format on %s: %q", key, raw)
	}
	return id, nil
}

func formInt64(r *http.Request, key string) (int64, error) {
	n, err := strconv.ParseInt(r.FormValue(key), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, r.FormValue(key))
	}
	return n, nil
}

func formInt32(r *http.Request, key string) (int32, error) {
	n, err := strconv.ParseInt(r.FormValue(key), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, r.FormValue(key))
	}
	return int32(n), nil
}

func formInt16(r *http.Request, key string) (int16, error) {
	n, err := strconv.ParseInt(r.FormValue(key), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, r.FormValue(key))
	}
	return int16(n), nil
}
