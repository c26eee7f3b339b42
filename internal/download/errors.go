package download

import "errors"

var (
	// ErrInvalidInput is returned for an empty or whitespace-only URL
	ErrInvalidInput = errors.New("please enter a valid video URL")

	// ErrBusy is returned when a request is already in flight
	ErrBusy = errors.New("a download is already in progress")
)
