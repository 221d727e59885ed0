package couple

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// Lint reports advisory warnings for a validated config. The renderer inserts
// display values verbatim, so markup inside them almost always means an
// authoring mistake; Lint surfaces it without failing the run.
func Lint(cfg Config) []string {
	var warnings []string
	for i, name := range cfg.Names {
		if containsMarkup(name) {
			warnings = append(warnings, fmt.Sprintf("names[%d] contains HTML markup: %q", i, name))
		}
	}
	if containsMarkup(cfg.Date) {
		warnings = append(warnings, fmt.Sprintf("'date' contains HTML markup: %q", cfg.Date))
	}
	if containsMarkup(cfg.DateShort) {
		warnings = append(warnings, fmt.Sprintf("'date_short' contains HTML markup: %q", cfg.DateShort))
	}
	return warnings
}

// containsMarkup strips the value with a strict policy and compares the
// entity-unescaped result against the input, so plain text with ampersands or
// spaced angle brackets passes while actual tags are flagged.
func containsMarkup(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	stripped := html.UnescapeString(stripPolicy().Sanitize(trimmed))
	return stripped != trimmed
}

func stripPolicy() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.StrictPolicy()
	})
	return markupPolicy
}
