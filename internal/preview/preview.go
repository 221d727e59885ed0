// Package preview converts output paths into file:// URLs and opens them in
// the system's default viewer.
package preview

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// FileURL converts a filesystem path into a file:// URL over the absolute,
// forward-slash form of the path.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("preview: resolve %s: %w", path, err)
	}
	return "file:///" + strings.TrimPrefix(filepath.ToSlash(abs), "/"), nil
}

// Open launches the URL in the platform's default handler without waiting
// for it to exit.
func Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("preview: open %s: %w", url, err)
	}
	return nil
}
