package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a non-2xx response from the content backend with the
// upstream message already extracted.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Message)
}

// AsStatusError unwraps err into a StatusError when possible.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// newStatusError extracts the upstream error message from a response body.
// FastAPI reports {"detail": ...}; some routes use {"error": ...}. When
// neither parses, the HTTP status text is used.
func newStatusError(statusCode int, body []byte) *StatusError {
	var envelope struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Detail != "" {
			msg = envelope.Detail
		} else if envelope.Error != "" {
			msg = envelope.Error
		}
	}
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return &StatusError{Code: statusCode, Message: msg}
}
