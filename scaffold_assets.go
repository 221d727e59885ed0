package pagegen

import (
	"io/fs"

	"github.com/flyiniris/go-pagegen/pkg/scaffold"
)

// StarterAssets exposes the embedded starter bundle (delivery page template,
// manifest template, service worker) so a fresh project can generate a page
// without authoring templates first.
func StarterAssets() fs.FS {
	return scaffold.Assets()
}
