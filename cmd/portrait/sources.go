// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io/fs"
	"path/filepath"

	"portrait-cli/internal/issue"
	"portrait-cli/pkg/manifest"
	"portrait-cli/pkg/metafile"

	"github.com/charmbracelet/log"
)

// loadManifest loads and validates the manifest, mapping failures to the
// issue catalog for actionable CLI output.
func loadManifest() (*manifest.Manifest, error) {
	path := manifestPath()

	man, err := manifest.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			explain(issue.ManifestNotFoundId)
			return nil, issue.NewErrorContext().
				WithOperation("load manifest").
				WithResource(path).
				WithSuggestion("Run portrait from the project root").
				WithSuggestion("Or pass --manifest with the manifest location").
				Wrap(err).
				BuildError()
		}
		explain(issue.ManifestInvalidId)
		return nil, issue.NewErrorContext().
			WithOperation("load manifest").
			WithResource(path).
			WithSuggestion("Check the TOML syntax and required [project] fields").
			Wrap(err).
			BuildError()
	}

	log.Debug("manifest loaded", "path", path, "name", man.Project.Name, "version", man.Project.Version)

	return man, nil
}

// resolveSources loads the manifest and locates the metadata file next to it.
func resolveSources() (*manifest.Manifest, string, error) {
	man, err := loadManifest()
	if err != nil {
		return nil, "", err
	}

	root := filepath.Dir(man.FilePath)
	metaPath, err := metafile.Locate(root, man)
	if err != nil {
		explain(issue.MetadataFileNotFoundId)
		return nil, "", issue.NewErrorContext().
			WithOperation("locate metadata file").
			WithResource(root).
			WithSuggestion("Declare the metadata directory under [tool.portrait.build] packages").
			Wrap(err).
			BuildError()
	}

	log.Debug("metadata file located", "path", metaPath)

	return man, metaPath, nil
}
