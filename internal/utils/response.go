package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// APIResponse is the envelope every endpoint answers with. The error
// field carries the underlying failure message, the way the existing
// front-end client expects it.
type APIResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

// RespondSuccess writes a success envelope with the given payload.
func RespondSuccess(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondError writes a failure envelope. The optional devErr is
// surfaced in the envelope error field and logged.
func RespondError(w http.ResponseWriter, status int, publicMessage string, devErr error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := APIResponse{
		Success: false,
		Message: publicMessage,
	}
	if devErr != nil {
		errStr := devErr.Error()
		body.Error = &errStr
	}
	_ = json.NewEncoder(w).Encode(body)

	if devErr != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErr.Error(),
		}).Error(publicMessage)
	} else {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Error(publicMessage)
	}
}
