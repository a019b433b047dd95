// SPDX-License-Identifier: MPL-2.0

package metafile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"portrait-cli/pkg/manifest"
)

// ErrNotFound is returned when no metadata file exists at any candidate path.
// Callers can check for it with errors.Is.
var ErrNotFound = errors.New("unable to locate metadata file")

// Locate resolves the metadata file for the project rooted at root.
//
// Each directory in the manifest's tool.portrait.build.packages list is
// probed for the conventionally named file; the first hit wins. If none
// match, a single fallback path derived from the project name (hyphens
// replaced with underscores) is tried: internal/<name>/metadata.go.
func Locate(root string, m *manifest.Manifest) (string, error) {
	for _, pkg := range m.Tool.Portrait.Build.Packages {
		candidate := filepath.Join(root, filepath.FromSlash(pkg), FileName)
		if isFile(candidate) {
			return candidate, nil
		}
	}

	fallbackPkg := strings.ReplaceAll(m.Project.Name, "-", "_")
	fallback := filepath.Join(root, "internal", fallbackPkg, FileName)
	if isFile(fallback) {
		return fallback, nil
	}

	return "", fmt.Errorf("%w for project %q under %s", ErrNotFound, m.Project.Name, root)
}

// isFile reports whether path exists and is a regular file.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
