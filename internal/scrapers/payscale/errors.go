package payscale

import (
	"errors"
	"fmt"
)

var (
	ErrNoTable    = errors.New("no HTML <table> elements found on the page, has the site changed?")
	ErrEmptyTable = errors.New("found a table, but could not parse any rows")
)

// FetchExhaustedError is returned once every fetch attempt has failed. It
// unwraps to the failure of the last attempt.
type FetchExhaustedError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *FetchExhaustedError) Error() string {
	return fmt.Sprintf("failed to fetch %s after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchExhaustedError) Unwrap() error {
	return e.Err
}

// StatusError is an HTTP response with a 4xx or 5xx status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status: %s", e.Status)
}
