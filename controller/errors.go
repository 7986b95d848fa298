package controller

import (
	"errors"

	"github.com/missionhud/missionhud/client"
)

// ErrClosed reports a permanent condition: the controller was torn down
// and accepts no further commands.
var ErrClosed = errors.New("lifecycle controller closed")

// ErrSuperseded reports that a later command for the same job replaced
// this transition before its animation window elapsed. The superseding
// transition carries the outcome.
var ErrSuperseded = errors.New("transition superseded")

// failureReason buckets an error for the failure metric label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, client.ErrNotFound):
		return "not_found"
	case errors.Is(err, client.ErrConflict):
		return "conflict"
	case errors.Is(err, client.ErrRemoteSubmission):
		return "submission"
	case errors.Is(err, client.ErrTransient):
		return "transient"
	}
	return "other"
}
