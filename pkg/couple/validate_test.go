package couple_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flyiniris/go-pagegen/pkg/couple"
)

func validRaw() couple.Raw {
	return couple.Raw{
		"slug":       "ana-luis",
		"names":      []any{"Ana", "Luis"},
		"date":       "August 31, 2025",
		"date_short": "08.31.2025",
		"videos": []any{
			map[string]any{
				"id":       "feature",
				"title":    "Feature Film",
				"category": "feature",
				"duration": json.Number("1845"),
				"order":    json.Number("1"),
			},
		},
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	if msgs := couple.Validate(validRaw()); len(msgs) != 0 {
		t.Fatalf("expected no messages, got %v", msgs)
	}
}

func TestValidateEmptyConfig(t *testing.T) {
	want := []string{
		"Missing required field: 'slug'",
		"Missing required field: 'names'",
		"Missing required field: 'date'",
		"Missing required field: 'date_short'",
		"Missing required field: 'videos'",
	}

	got := couple.Validate(couple.Raw{})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateFieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(raw couple.Raw)
		want   []string
	}{
		{
			name:   "slug wrong type",
			mutate: func(raw couple.Raw) { raw["slug"] = json.Number("7") },
			want:   []string{"'slug' must be a non-empty string"},
		},
		{
			name:   "slug empty",
			mutate: func(raw couple.Raw) { raw["slug"] = "" },
			want:   []string{"'slug' must be a non-empty string"},
		},
		{
			name:   "slug uppercase",
			mutate: func(raw couple.Raw) { raw["slug"] = "Ana-Luis" },
			want:   []string{"'slug' must contain only lowercase letters, numbers, and hyphens"},
		},
		{
			name:   "slug with space",
			mutate: func(raw couple.Raw) { raw["slug"] = "ana luis" },
			want:   []string{"'slug' must contain only lowercase letters, numbers, and hyphens"},
		},
		{
			name:   "slug with underscore",
			mutate: func(raw couple.Raw) { raw["slug"] = "ana_luis" },
			want:   []string{"'slug' must contain only lowercase letters, numbers, and hyphens"},
		},
		{
			name:   "slug with digits and hyphens",
			mutate: func(raw couple.Raw) { raw["slug"] = "ana-luis-2025" },
			want:   nil,
		},
		{
			name:   "names not a list",
			mutate: func(raw couple.Raw) { raw["names"] = "Ana & Luis" },
			want:   []string{"'names' must be a list of exactly 2 strings"},
		},
		{
			name:   "names wrong length",
			mutate: func(raw couple.Raw) { raw["names"] = []any{"Ana"} },
			want:   []string{"'names' must be a list of exactly 2 strings"},
		},
		{
			name:   "name empty",
			mutate: func(raw couple.Raw) { raw["names"] = []any{"Ana", ""} },
			want:   []string{"Each name in 'names' must be a non-empty string"},
		},
		{
			name:   "both names invalid reports once",
			mutate: func(raw couple.Raw) { raw["names"] = []any{"", json.Number("3")} },
			want:   []string{"Each name in 'names' must be a non-empty string"},
		},
		{
			name:   "date empty",
			mutate: func(raw couple.Raw) { raw["date"] = "" },
			want:   []string{"'date' must be a non-empty string (e.g., 'August 31, 2025')"},
		},
		{
			name:   "date wrong type",
			mutate: func(raw couple.Raw) { raw["date"] = json.Number("20250831") },
			want:   []string{"'date' must be a non-empty string (e.g., 'August 31, 2025')"},
		},
		{
			name:   "date_short empty",
			mutate: func(raw couple.Raw) { raw["date_short"] = "" },
			want:   []string{"'date_short' must be a non-empty string (e.g., '08.31.2025')"},
		},
		{
			name:   "videos empty list",
			mutate: func(raw couple.Raw) { raw["videos"] = []any{} },
			want:   []string{"'videos' must be a non-empty list"},
		},
		{
			name:   "videos not a list",
			mutate: func(raw couple.Raw) { raw["videos"] = "feature" },
			want:   []string{"'videos' must be a non-empty list"},
		},
		{
			name:   "video entry not an object",
			mutate: func(raw couple.Raw) { raw["videos"] = []any{"feature"} },
			want:   []string{"videos[0] must be an object"},
		},
		{
			name: "video missing fields",
			mutate: func(raw couple.Raw) {
				raw["videos"] = []any{
					map[string]any{
						"id":       "feature",
						"title":    "Feature Film",
						"category": "feature",
						"duration": json.Number("1845"),
						"order":    json.Number("1"),
					},
					map[string]any{
						"id":       "teaser",
						"category": "teaser",
						"duration": json.Number("74"),
					},
				}
			},
			want: []string{
				"videos[1] missing required field: 'title'",
				"videos[1] missing required field: 'order'",
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			raw := validRaw()
			tc.mutate(raw)

			got := couple.Validate(raw)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateAccumulatesAcrossFields(t *testing.T) {
	raw := validRaw()
	raw["slug"] = "Ana Luis"
	delete(raw, "date")
	raw["videos"] = []any{map[string]any{"id": "feature"}}

	want := []string{
		"'slug' must contain only lowercase letters, numbers, and hyphens",
		"Missing required field: 'date'",
		"videos[0] missing required field: 'title'",
		"videos[0] missing required field: 'category'",
		"videos[0] missing required field: 'duration'",
		"videos[0] missing required field: 'order'",
	}

	got := couple.Validate(raw)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildConstructsTypedConfig(t *testing.T) {
	cfg, err := couple.Build(validRaw())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := couple.Config{
		Slug:      "ana-luis",
		Names:     []string{"Ana", "Luis"},
		Date:      "August 31, 2025",
		DateShort: "08.31.2025",
		Videos: []couple.Video{
			{
				"id":       "feature",
				"title":    "Feature Film",
				"category": "feature",
				"duration": json.Number("1845"),
				"order":    json.Number("1"),
			},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCopiesVideoEntries(t *testing.T) {
	raw := validRaw()
	entry := raw["videos"].([]any)[0].(map[string]any)

	cfg, err := couple.Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	entry["title"] = "mutated"
	if got := cfg.Videos[0]["title"]; got != "Feature Film" {
		t.Fatalf("config video shares backing map with raw input: title = %v", got)
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	raw := validRaw()
	raw["slug"] = "Ana Luis"

	_, err := couple.Build(raw)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *couple.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *couple.ValidationError, got %T", err)
	}
	want := []string{"'slug' must contain only lowercase letters, numbers, and hyphens"}
	if diff := cmp.Diff(want, verr.Messages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplayNames(t *testing.T) {
	cfg := couple.Config{Names: []string{"Ana", "Luis"}}
	if got, want := cfg.DisplayNames(), "Ana & Luis"; got != want {
		t.Fatalf("DisplayNames() = %q, want %q", got, want)
	}
}
