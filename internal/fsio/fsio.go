// Package fsio provides the filesystem primitives generated artifacts are
// written through: atomic file writes and metadata-preserving copies.
package fsio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// WriteFile writes data to path, creating any missing parent directories.
// The write goes through a temp file and rename, so readers never observe a
// partially written artifact.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("fsio: create parent directories for %s: %w", path, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("fsio: write %s: %w", path, err)
	}
	return nil
}

// CopyFile copies src to dst, creating dst's parent directories and carrying
// over the source's permission bits and modification time.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("fsio: stat %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("fsio: copy %s: not a regular file", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("fsio: create parent directories for %s: %w", dst, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("fsio: open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("fsio: create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("fsio: copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("fsio: close %s: %w", dst, err)
	}

	// OpenFile's perm argument is filtered by the umask; restate the bits and
	// the source timestamps explicitly.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("fsio: set mode on %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("fsio: set times on %s: %w", dst, err)
	}
	return nil
}
