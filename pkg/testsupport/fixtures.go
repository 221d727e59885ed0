package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flyiniris/go-pagegen/pkg/source"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// ValidConfigJSON returns a minimal couple configuration that passes
// validation. Tests that need variations mutate the decoded form rather than
// maintaining parallel fixture strings.
func ValidConfigJSON() []byte {
	return []byte(`{
  "slug": "ana-luis",
  "names": ["Ana", "Luis"],
  "date": "August 31, 2025",
  "date_short": "08.31.2025",
  "videos": [
    {"id": "feature", "title": "Feature Film", "category": "feature", "duration": 512, "order": 1},
    {"id": "teaser", "title": "Teaser", "category": "teaser", "duration": 73, "order": 2}
  ]
}`)
}

// PageTemplateHTML returns a template exercising every recognized token.
func PageTemplateHTML() []byte {
	return []byte(`<!doctype html>
<html lang="en">
<head>
<title>{{COUPLE_NAMES}} — {{DATE_SHORT}}</title>
</head>
<body data-slug="{{SLUG}}" data-worker="{{WORKER_BASE}}">
<h1>{{NAME_1}} + {{NAME_2}}</h1>
<p>{{DATE_LONG}}</p>
<script>const videos = {{VIDEOS_JSON}};</script>
<footer>© {{YEAR}}</footer>
</body>
</html>
`)
}

// LoadDocument reads a fixture and builds a source.Document using a file
// source. Testing helpers fail fast to keep contract tests concise.
func LoadDocument(t *testing.T, path string) source.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (source.Document, error) {
	if path == "" {
		return source.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return source.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := source.NewDocument(source.FromFile(path), data)
	if err != nil {
		return source.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// WriteFixture writes data beneath dir, creating parent directories, and
// returns the full path.
func WriteFixture(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// MustReadFile reads an artifact produced by the code under test.
func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	return data
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
