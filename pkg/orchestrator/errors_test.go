package orchestrator_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flyiniris/go-pagegen/pkg/couple"
	"github.com/flyiniris/go-pagegen/pkg/orchestrator"
	"github.com/flyiniris/go-pagegen/pkg/source"
	"github.com/flyiniris/go-pagegen/pkg/testsupport"
)

func TestGenerateStageFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		mutate    func(t *testing.T, dir string, req *orchestrator.Request)
		wantStage orchestrator.Stage
		wantIs    error
		check     func(t *testing.T, err error)
	}{
		{
			name: "config not found",
			mutate: func(t *testing.T, dir string, req *orchestrator.Request) {
				req.Config = source.FromFile(filepath.Join(dir, "absent.json"))
			},
			wantStage: orchestrator.StageLoadConfig,
			wantIs:    fs.ErrNotExist,
		},
		{
			name: "config malformed",
			mutate: func(t *testing.T, dir string, req *orchestrator.Request) {
				testsupport.WriteFixture(t, dir, "couple.json", []byte(`{"slug": "ana-luis",`))
			},
			wantStage: orchestrator.StageParseConfig,
			check: func(t *testing.T, err error) {
				var parseErr *couple.ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("error = %v, want *couple.ParseError in chain", err)
				}
				if parseErr.Format != "JSON" {
					t.Fatalf("ParseError.Format = %q, want JSON", parseErr.Format)
				}
			},
		},
		{
			name: "config fails validation",
			mutate: func(t *testing.T, dir string, req *orchestrator.Request) {
				testsupport.WriteFixture(t, dir, "couple.json", []byte(`{
  "slug": "Bad_Slug",
  "names": ["Ana", "Luis"],
  "date": "August 31, 2025",
  "date_short": "08.31.2025",
  "videos": [{"id": "a", "title": "t", "category": "c", "duration": 1, "order": 1}]
}`))
			},
			wantStage: orchestrator.StageValidate,
			check: func(t *testing.T, err error) {
				var validationErr *couple.ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("error = %v, want *couple.ValidationError in chain", err)
				}
				want := "'slug' must contain only lowercase letters, numbers, and hyphens"
				if len(validationErr.Messages) != 1 || validationErr.Messages[0] != want {
					t.Fatalf("Messages = %q, want [%q]", validationErr.Messages, want)
				}
			},
		},
		{
			name: "template not found",
			mutate: func(t *testing.T, dir string, req *orchestrator.Request) {
				req.Template = source.FromFile(filepath.Join(dir, "absent.html"))
			},
			wantStage: orchestrator.StageLoadTemplate,
			wantIs:    fs.ErrNotExist,
		},
		{
			name: "manifest not found",
			mutate: func(t *testing.T, dir string, req *orchestrator.Request) {
				req.Manifest = source.FromFile(filepath.Join(dir, "absent-manifest.json"))
			},
			wantStage: orchestrator.StageLoadManifest,
			wantIs:    fs.ErrNotExist,
		},
		{
			name: "service worker not found",
			mutate: func(t *testing.T, dir string, req *orchestrator.Request) {
				req.ServiceWorker = filepath.Join(dir, "missing-sw.js")
			},
			wantStage: orchestrator.StageCopyServiceWorker,
			wantIs:    fs.ErrNotExist,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			req := validRequest(t, dir)
			tc.mutate(t, dir, &req)

			_, err := orchestrator.New().Generate(testsupport.Context(), req)
			if err == nil {
				t.Fatal("Generate() error = nil, want stage failure")
			}

			var stageErr *orchestrator.StageError
			if !errors.As(err, &stageErr) {
				t.Fatalf("Generate() error = %v, want *orchestrator.StageError", err)
			}
			if stageErr.Stage != tc.wantStage {
				t.Fatalf("Stage = %q, want %q", stageErr.Stage, tc.wantStage)
			}
			if tc.wantIs != nil && !errors.Is(err, tc.wantIs) {
				t.Fatalf("errors.Is(%v, %v) = false", err, tc.wantIs)
			}
			if tc.check != nil {
				tc.check(t, err)
			}
		})
	}
}

func TestGenerateHaltsOnFirstFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	req := validRequest(t, dir)
	req.Manifest = source.FromFile(filepath.Join(dir, "absent-manifest.json"))
	req.ServiceWorker = testsupport.WriteFixture(t, dir, "sw.js", []byte("self.skipWaiting();"))

	_, err := orchestrator.New().Generate(testsupport.Context(), req)

	var stageErr *orchestrator.StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != orchestrator.StageLoadManifest {
		t.Fatalf("Generate() error = %v, want manifest stage failure", err)
	}

	// The page landed before the failure and stays in place; the later
	// service-worker step never ran.
	pagePath := filepath.Join(dir, "films", "ana-luis", orchestrator.PageFileName)
	if _, statErr := os.Stat(pagePath); statErr != nil {
		t.Fatalf("page artifact missing after manifest failure: %v", statErr)
	}
	swPath := filepath.Join(dir, "films", "ana-luis", orchestrator.ServiceWorkerFileName)
	if _, statErr := os.Stat(swPath); statErr == nil {
		t.Fatal("service worker written despite earlier failure")
	}
}

func TestStageErrorMessage(t *testing.T) {
	t.Parallel()

	err := &orchestrator.StageError{
		Stage: orchestrator.StageWritePage,
		Path:  "films/ana-luis/index.html",
		Err:   errors.New("disk full"),
	}

	got := err.Error()
	for _, want := range []string{"orchestrator:", "write page", "films/ana-luis/index.html", "disk full"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Error() = %q, missing %q", got, want)
		}
	}
}

func TestCheckSurfacesValidationMessages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := testsupport.WriteFixture(t, dir, "empty.json", []byte(`{}`))

	_, err := orchestrator.New().Check(testsupport.Context(), source.FromFile(configPath))

	var validationErr *couple.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Check() error = %v, want *couple.ValidationError in chain", err)
	}
	if len(validationErr.Messages) != 5 {
		t.Fatalf("Messages = %q, want one per missing field group", validationErr.Messages)
	}
}
