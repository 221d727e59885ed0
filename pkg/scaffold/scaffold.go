// Package scaffold carries the embedded starter bundle new projects generate
// from: a delivery page template, a PWA manifest template and a service
// worker.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/flyiniris/go-pagegen/internal/fsio"
)

//go:embed assets
var embeddedAssets embed.FS

// Asset file names inside the bundle.
const (
	PageTemplateName  = "couple-page.html"
	ManifestName      = "manifest.json"
	ServiceWorkerName = "sw.js"
)

// Assets exposes the starter bundle rooted at its file names so callers can
// read or serve the templates without materializing them.
func Assets() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// WriteTo materializes the starter bundle into dir, creating it as needed.
// Existing files are overwritten.
func WriteTo(dir string) error {
	assets := Assets()
	entries, err := fs.ReadDir(assets, ".")
	if err != nil {
		return fmt.Errorf("scaffold: read assets: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(assets, entry.Name())
		if err != nil {
			return fmt.Errorf("scaffold: read asset %s: %w", entry.Name(), err)
		}
		if err := fsio.WriteFile(filepath.Join(dir, entry.Name()), data); err != nil {
			return fmt.Errorf("scaffold: write asset %s: %w", entry.Name(), err)
		}
	}
	return nil
}
