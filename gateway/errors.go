package gateway

import "fmt"

// HTTPError is a backend failure other than an authorization expiry: any
// non-2xx status that survives the refresh protocol. Message carries the
// server-supplied error message when one could be decoded, so callers can
// surface it to the user verbatim.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// errorBody is the shape the backend uses for error payloads.
type errorBody struct {
	Message string `json:"message"`
}
