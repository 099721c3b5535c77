package publish

import (
	"fmt"
	"strings"
)

// ConfigError is returned when a publisher's required configuration is missing.
type ConfigError struct {
	Platform string
	Missing  []string
}

func (e ConfigError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("%s credentials not configured", e.Platform)
	}
	return fmt.Sprintf("%s credentials not configured (missing %s)", e.Platform, strings.Join(e.Missing, ", "))
}

// JobError marks a malformed job. It is the only failure class that
// escapes the processor boundary.
type JobError struct {
	Reason string
}

func (e JobError) Error() string {
	return fmt.Sprintf("invalid job: %s", e.Reason)
}
