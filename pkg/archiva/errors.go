package archiva

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors
var (
	ErrNotLoggedIn = errors.New("not logged in")
)

// ErrorMessage is one server-reported error record.
type ErrorMessage struct {
	ErrorKey string `json:"errorKey"`
	Message  string `json:"message,omitempty"`
}

// ErrorResponse is returned for any non-200 response from the remote.
// ErrorMessages is set when the server reported structured errors,
// Raw when it returned some other JSON body.
type ErrorResponse struct {
	StatusCode    int
	ErrorMessages []ErrorMessage
	Raw           []byte
}

func (e *ErrorResponse) Error() string {
	if len(e.ErrorMessages) > 0 {
		keys := make([]string, 0, len(e.ErrorMessages))
		for _, m := range e.ErrorMessages {
			keys = append(keys, m.ErrorKey)
		}
		return fmt.Sprintf("status code: %d; error messages: %v", e.StatusCode, keys)
	}
	if len(e.Raw) > 0 {
		return fmt.Sprintf("status code: %d; body: %s", e.StatusCode, e.Raw)
	}
	return fmt.Sprintf("status code: %d", e.StatusCode)
}
