package fetch

import (
	"errors"
	"fmt"
)

// Kind is the closed classification of fetch failures. Raw errors are
// classified exactly once, at the point the fetcher first observes them;
// everything downstream switches on Kind instead of probing error shapes.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindClient
	KindServer
	KindOffline
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindClient:
		return "client_error"
	case KindServer:
		return "server_error"
	case KindOffline:
		return "network_offline"
	default:
		return "unknown"
	}
}

// Error is a classified fetch failure. Status carries the HTTP-like status
// code for client and server kinds, zero otherwise.
type Error struct {
	Kind   Kind
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch: %s (status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewStatusError builds a classified error from an HTTP-like status code.
// 404 maps to NotFound, the rest of [400,500) to Client, everything else
// to Server.
func NewStatusError(status int, err error) *Error {
	kind := KindServer
	switch {
	case status == 404:
		kind = KindNotFound
	case status >= 400 && status < 500:
		kind = KindClient
	}
	return &Error{Kind: kind, Status: status, Err: err}
}

// classify wraps an arbitrary backend failure into the closed set. Already
// classified errors pass through untouched.
func classify(err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return &Error{Kind: KindUnknown, Err: err}
}

// retryable reports whether a failure of this kind may succeed on a later
// attempt. Client-classified failures (404 included) never retry.
func (e *Error) retryable() bool {
	switch e.Kind {
	case KindNotFound, KindClient:
		return false
	default:
		return true
	}
}

// KindOf extracts the classification from err, or KindUnknown for errors
// that did not pass through the fetcher.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
