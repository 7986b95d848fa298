package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound reports that the identifier no longer exists remotely.
// Callers treat it as a cue to re-fetch and drop the local row.
var ErrNotFound = errors.New("not found")

// ErrConflict reports that the remote rejected the requested status
// transition.
var ErrConflict = errors.New("transition rejected")

// ErrRemoteSubmission reports that the downstream application channel
// rejected an apply command.
var ErrRemoteSubmission = errors.New("remote submission failed")

// ErrTransient marks failures the caller may retry manually. The SDK
// retries them with bounded backoff on read paths only; mutating
// commands are surfaced unretried.
var ErrTransient = errors.New("transient remote error")

// IsTransient reports whether err is a transient remote failure.
func IsTransient(err error) bool { return errors.Is(err, ErrTransient) }

// TransientError carries diagnostics while satisfying
// errors.Is(_, ErrTransient).
type TransientError struct {
	Status int // 0 when the transport failed before any response
	Err    error
}

func (e *TransientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transient remote error: %v", e.Err)
	}
	return fmt.Sprintf("transient remote error: status %d", e.Status)
}

func (e *TransientError) Is(target error) bool { return target == ErrTransient }
func (e *TransientError) Unwrap() error        { return e.Err }

// statusError maps a non-2xx response onto the error taxonomy. The
// apply path additionally maps 502 to ErrRemoteSubmission before
// falling through to this.
func statusError(op string, status int) error {
	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", op, ErrConflict)
	}
	if status >= 500 {
		return &TransientError{Status: status}
	}
	return fmt.Errorf("%s: status %d", op, status)
}
