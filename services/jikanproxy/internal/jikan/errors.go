package jikan

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited is returned when every attempt was answered with 429.
	ErrRateLimited = errors.New("jikan: rate limited")
	// ErrTransport is returned when the last attempt failed below HTTP.
	ErrTransport = errors.New("jikan: transport failure")
	// ErrUnavailable is the class of non-200, non-429 upstream answers.
	ErrUnavailable = errors.New("jikan: upstream unavailable")
	// ErrDecode is returned for a 200 whose body is not the expected JSON.
	ErrDecode = errors.New("jikan: decode error")
)

// StatusError is an upstream answer that is neither 200 nor 429.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("jikan: %s status %d body=%q", e.Endpoint, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrUnavailable }

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == 404
}
