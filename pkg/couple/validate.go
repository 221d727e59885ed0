package couple

import (
	"fmt"
	"regexp"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Validate checks the raw mapping against the config rules and returns every
// failure as a human-readable message, in rule order, accumulating all of them
// rather than stopping at the first. An empty result means the config is safe
// to Build; generation must not proceed when any message is returned.
func Validate(raw Raw) []string {
	var errs []string
	errs = appendSlugErrors(errs, raw)
	errs = appendNamesErrors(errs, raw)
	errs = appendDisplayStringErrors(errs, raw, "date", "'date' must be a non-empty string (e.g., 'August 31, 2025')")
	errs = appendDisplayStringErrors(errs, raw, "date_short", "'date_short' must be a non-empty string (e.g., '08.31.2025')")
	errs = appendVideoErrors(errs, raw)
	return errs
}

// Build constructs the typed Config from the raw mapping, running Validate
// first. A mapping with any validation failure yields a *ValidationError and
// no Config.
func Build(raw Raw) (Config, error) {
	if msgs := Validate(raw); len(msgs) > 0 {
		return Config{}, &ValidationError{Messages: msgs}
	}

	cfg := Config{
		Slug:      raw["slug"].(string),
		Date:      raw["date"].(string),
		DateShort: raw["date_short"].(string),
	}

	names := raw["names"].([]any)
	cfg.Names = make([]string, 0, len(names))
	for _, name := range names {
		cfg.Names = append(cfg.Names, name.(string))
	}

	videos := raw["videos"].([]any)
	cfg.Videos = make([]Video, 0, len(videos))
	for _, entry := range videos {
		fields := entry.(map[string]any)
		video := make(Video, len(fields))
		for key, value := range fields {
			video[key] = value
		}
		cfg.Videos = append(cfg.Videos, video)
	}

	return cfg, nil
}

func appendSlugErrors(errs []string, raw Raw) []string {
	value, present := raw["slug"]
	if !present {
		return append(errs, "Missing required field: 'slug'")
	}
	slug, ok := value.(string)
	if !ok || slug == "" {
		return append(errs, "'slug' must be a non-empty string")
	}
	if !slugPattern.MatchString(slug) {
		return append(errs, "'slug' must contain only lowercase letters, numbers, and hyphens")
	}
	return errs
}

func appendNamesErrors(errs []string, raw Raw) []string {
	value, present := raw["names"]
	if !present {
		return append(errs, "Missing required field: 'names'")
	}
	names, ok := value.([]any)
	if !ok || len(names) != 2 {
		return append(errs, "'names' must be a list of exactly 2 strings")
	}
	for _, name := range names {
		if s, ok := name.(string); !ok || s == "" {
			return append(errs, "Each name in 'names' must be a non-empty string")
		}
	}
	return errs
}

func appendDisplayStringErrors(errs []string, raw Raw, field, message string) []string {
	value, present := raw[field]
	if !present {
		return append(errs, fmt.Sprintf("Missing required field: '%s'", field))
	}
	if s, ok := value.(string); !ok || s == "" {
		return append(errs, message)
	}
	return errs
}

func appendVideoErrors(errs []string, raw Raw) []string {
	value, present := raw["videos"]
	if !present {
		return append(errs, "Missing required field: 'videos'")
	}
	videos, ok := value.([]any)
	if !ok || len(videos) == 0 {
		return append(errs, "'videos' must be a non-empty list")
	}
	for i, entry := range videos {
		fields, ok := entry.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("videos[%d] must be an object", i))
			continue
		}
		for _, field := range RequiredVideoFields {
			if _, ok := fields[field]; !ok {
				errs = append(errs, fmt.Sprintf("videos[%d] missing required field: '%s'", i, field))
			}
		}
	}
	return errs
}
