package controller

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the controller tunables. Values are taken from
// environment variables with the prefix "LIFECYCLE".
// Example: LIFECYCLE_ANIMATION_WINDOW=250ms LIFECYCLE_PAGE_SIZE=100 .
type Config struct {
	// AnimationWindow is the delay between marking a job as exiting and
	// issuing the remote command, matching the UI's exit animation.
	// Zero is valid and commits immediately.
	AnimationWindow time.Duration `envconfig:"ANIMATION_WINDOW" default:"600ms"`

	// PageSize is the default per_page applied to reconciliation
	// fetches when the caller's filter leaves it unset.
	PageSize int `envconfig:"PAGE_SIZE" default:"50"`

	// CommandTimeout bounds each remote command issued from an
	// animation-window callback.
	CommandTimeout time.Duration `envconfig:"COMMAND_TIMEOUT" default:"15s"`

	// ErrorHandler is called synchronously after a transition fails.
	// Leave nil if you do not care; the failure is still reported on
	// the Transition handle.
	ErrorHandler func(error) `ignored:"true"`
}

// LoadConfig populates Config from environment variables (prefix
// LIFECYCLE).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("LIFECYCLE", &c)
}
