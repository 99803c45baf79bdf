package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

// ToHTTP flattens any error into what the response envelope needs. Errors
// that are not AppErrors never leak their text to the client.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr != nil {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: map[string]any{
				"kind":      appErr.Kind(),
				"retryable": appErr.Retryable(),
			},
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "Internal server error",
		Details: map[string]any{
			"kind":      KindServer,
			"retryable": true,
		},
	}
}
