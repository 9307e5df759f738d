package api

import "fmt"

// ServerError is a non-2xx response that is neither an authorization
// failure nor a transport problem. Message carries the server-provided
// error text verbatim when the body contained one.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}
