package backend

import "fmt"

// APIError is a non-2xx response from the commerce backend, carrying
// the human-readable message and any field-level errors from the JSON
// error body. Callers classify it; raw status codes stop here.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend request failed with status %d", e.StatusCode)
}
