package client

import (
	"fmt"
	"regexp"
)

// jobIDRegex accepts the opaque identifiers the service hands out.
var jobIDRegex = regexp.MustCompile(`^[A-Za-z0-9_.:-]{1,64}$`)

// agentCatalog is the fixed persona roster. The service rejects anything
// outside it, so the SDK fails fast locally.
var agentCatalog = map[string]struct{}{
	"astra": {}, "breach": {}, "brimstone": {}, "chamber": {}, "clove": {},
	"cypher": {}, "deadlock": {}, "fade": {}, "gekko": {}, "harbor": {},
	"iso": {}, "jett": {}, "kayo": {}, "killjoy": {}, "neon": {},
	"omen": {}, "phoenix": {}, "raze": {}, "reyna": {}, "sage": {},
	"skye": {}, "sova": {}, "viper": {}, "yoru": {},
}

// ValidateJobID checks that id looks like a service identifier before a
// request is built around it.
func ValidateJobID(id string) error {
	if id == "" {
		return fmt.Errorf("job id is required")
	}
	if !jobIDRegex.MatchString(id) {
		return fmt.Errorf("job id %q is not a valid identifier", id)
	}
	return nil
}

// ValidateStatus checks that s is one of the five defined states.
func ValidateStatus(s JobStatus) error {
	if !s.Known() {
		return fmt.Errorf("unknown job status %q", s)
	}
	return nil
}

// ValidateAgent checks membership in the fixed persona catalog.
func ValidateAgent(agent string) error {
	if agent == "" {
		return fmt.Errorf("agent is required")
	}
	if _, ok := agentCatalog[agent]; !ok {
		return fmt.Errorf("unknown agent %q", agent)
	}
	return nil
}

// ValidateEmailStatus checks an email status filter value. Empty means
// "all" and is accepted.
func ValidateEmailStatus(s string) error {
	switch s {
	case "", "all", "draft", "scheduled", "sent", "failed":
		return nil
	}
	return fmt.Errorf("unknown email status %q", s)
}
