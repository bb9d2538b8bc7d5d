package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError reports a failed call to the notes API: a transport failure,
// a non-2xx status, or a 2xx response whose body could not be decoded.
type RequestError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	msg := "Failed to " + e.Op
	switch {
	case e.StatusCode != 0 && (e.StatusCode < 200 || e.StatusCode > 299):
		return fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a RequestError for an HTTP 404.
func IsNotFound(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound
}
