package client

import (
	"errors"
	"fmt"
)

// StatusError reports a non-2xx response from the leaderboard service.
// Message carries the server's "detail" text when the body was parseable,
// so the UI can show it verbatim.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// NotFound reports whether err is a 404 from the service.
func NotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == 404
}
