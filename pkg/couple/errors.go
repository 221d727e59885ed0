package couple

import (
	"fmt"
	"strings"
)

// ParseError reports a config document whose content could not be decoded.
// Format names the encoding that was attempted ("JSON" or "YAML") so operator
// reports can mirror it.
type ParseError struct {
	Location string
	Format   string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("couple: invalid %s in config %s: %v", e.Format, e.Location, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError carries the accumulated validation messages for a config
// that must not be used for generation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("couple: validation failed: %s", strings.Join(e.Messages, "; "))
}
