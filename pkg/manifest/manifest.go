// SPDX-License-Identifier: MPL-2.0

package manifest

// DefaultFileName is the conventional manifest file name at the project root.
const DefaultFileName = "project.toml"

type (
	// Manifest is the top-level project.toml structure (only the tables the
	// checker consumes; everything else in the document is ignored).
	Manifest struct {
		Project Project `json:"project"`
		Tool    Tool    `json:"tool"`

		// FilePath is the path the manifest was loaded from.
		FilePath string `json:"-"`
	}

	// Project is the [project] table of the manifest.
	Project struct {
		Name        string            `json:"name"`
		Version     string            `json:"version"`
		Description string            `json:"description"`
		Classifiers []string          `json:"classifiers"`
		URLs        URLs              `json:"urls"`
		Authors     []Author          `json:"authors"`
		Scripts     map[string]string `json:"scripts"`
	}

	// URLs is the [project.urls] table.
	URLs struct {
		Homepage   string `json:"homepage"`
		Repository string `json:"repository"`
		Issues     string `json:"issues"`
	}

	// Author is a single [[project.authors]] entry.
	Author struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	// Tool is the [tool] table (portrait subset only).
	Tool struct {
		Portrait PortraitTool `json:"portrait"`
	}

	// PortraitTool is the [tool.portrait] table.
	PortraitTool struct {
		Build BuildConfig `json:"build"`
	}

	// BuildConfig is the [tool.portrait.build] table. Packages lists source
	// package directories relative to the project root; it is used only for
	// metadata file discovery.
	BuildConfig struct {
		Packages []string `json:"packages"`
	}
)

// FirstAuthor returns the first declared author entry.
// The second return value is false when the manifest declares no authors.
func (p *Project) FirstAuthor() (Author, bool) {
	if len(p.Authors) == 0 {
		return Author{}, false
	}
	return p.Authors[0], true
}

// HasScript reports whether name is declared as a key in [project.scripts].
func (p *Project) HasScript(name string) bool {
	_, ok := p.Scripts[name]
	return ok
}
