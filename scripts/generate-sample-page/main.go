package main

import (
	"context"
	"fmt"
	"os"

	pagegen "github.com/flyiniris/go-pagegen"
	"github.com/flyiniris/go-pagegen/pkg/orchestrator"
	"github.com/flyiniris/go-pagegen/pkg/scaffold"
	"github.com/flyiniris/go-pagegen/pkg/source"
)

// Regenerates the sample delivery page from the bundled starter template.
// Run from the repository root after editing anything under pkg/scaffold/assets
// to eyeball the rendered result in a browser.
func main() {
	ctx := context.Background()

	const (
		configPath = "examples/fixtures/couple.json"
		outputDir  = "docs/sample"
	)

	loader := pagegen.NewLoader(source.WithFileSystem(pagegen.StarterAssets()))

	result, err := pagegen.Generate(ctx, pagegen.Request{
		Config:    source.FromFile(configPath),
		Template:  source.FromFS(scaffold.PageTemplateName),
		Manifest:  source.FromFS(scaffold.ManifestName),
		OutputDir: outputDir,
	}, orchestrator.WithLoader(loader))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate sample page: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated sample delivery page → %s\n", result.PagePath)
}
