package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/taskdeck-app/taskdeck/backend/errs"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler         authHandler
	clientHandler       clientHandler
	projectHandler      projectHandler
	taskHandler         taskHandler
	teamHandler         teamHandler
	commentHandler      commentHandler
	notificationHandler notificationHandler
	overviewHandler     overviewHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"name"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// decodeInput reads a JSON body into the untrusted input map the validation
// schemas consume.
func decodeInput(r *http.Request) (map[string]any, error) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(bodyBytes) == 0 {
		return map[string]any{}, nil
	}
	var input map[string]any
	if err := json.Unmarshal(bodyBytes, &input); err != nil {
		return nil, err
	}
	if input == nil {
		input = map[string]any{}
	}
	return input, nil
}

// marshalForCache renders a response body once so it can be both cached and
// written.
func marshalForCache(data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, errs.NewInternalError("failed to render response")
	}
	return payload, nil
}
