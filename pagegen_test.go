package pagegen_test

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	pagegen "github.com/flyiniris/go-pagegen"
	"github.com/flyiniris/go-pagegen/pkg/source"
	"github.com/flyiniris/go-pagegen/pkg/testsupport"
)

func TestStarterAssetsReadable(t *testing.T) {
	assets := pagegen.StarterAssets()

	data, err := fs.ReadFile(assets, "couple-page.html")
	if err != nil {
		t.Fatalf("expected starter template to be readable: %v", err)
	}
	if !strings.Contains(string(data), "{{COUPLE_NAMES}}") {
		t.Fatal("starter template does not carry the couple names token")
	}
}

func TestGenerateConvenience(t *testing.T) {
	dir := t.TempDir()
	configPath := testsupport.WriteFixture(t, dir, "couple.json", testsupport.ValidConfigJSON())
	templatePath := testsupport.WriteFixture(t, dir, "template.html", testsupport.PageTemplateHTML())

	result, err := pagegen.Generate(testsupport.Context(), pagegen.Request{
		Config:    source.FromFile(configPath),
		Template:  source.FromFile(templatePath),
		OutputDir: filepath.Join(dir, "films"),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	page := string(testsupport.MustReadFile(t, result.PagePath))
	if strings.Contains(page, "{{") {
		t.Fatalf("page still contains placeholders:\n%s", page)
	}
}

func TestCheckConvenience(t *testing.T) {
	dir := t.TempDir()
	configPath := testsupport.WriteFixture(t, dir, "couple.json", testsupport.ValidConfigJSON())

	cfg, err := pagegen.Check(testsupport.Context(), source.FromFile(configPath))
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if cfg.DisplayNames() != "Ana & Luis" {
		t.Fatalf("DisplayNames() = %q, want Ana & Luis", cfg.DisplayNames())
	}
}

func TestNewLoaderAndParserRoundTrip(t *testing.T) {
	dir := t.TempDir()
	configPath := testsupport.WriteFixture(t, dir, "couple.json", testsupport.ValidConfigJSON())

	loader := pagegen.NewLoader()
	doc, err := loader.Load(testsupport.Context(), source.FromFile(configPath))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	raw, err := pagegen.NewParser().Parse(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if raw["slug"] != "ana-luis" {
		t.Fatalf("slug = %v, want ana-luis", raw["slug"])
	}
}
