// SPDX-License-Identifier: MPL-2.0

package check

import (
	"errors"
	"fmt"
	"strings"

	"portrait-cli/pkg/manifest"
	"portrait-cli/pkg/metafile"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrNoAuthors is returned when the manifest declares no author entries.
	ErrNoAuthors = errors.New("manifest must declare at least one author entry")
	// ErrNoHomepage is returned when the manifest declares no homepage URL.
	ErrNoHomepage = errors.New("manifest must define project.urls.homepage")
)

type (
	// FieldResult records one field comparison between the two sources.
	FieldResult struct {
		// Field is the metadata constant name.
		Field string
		// Want is the value the manifest declares.
		Want string
		// Got is the value the metadata file declares.
		Got string
		// OK reports whether the two agree.
		OK bool
	}

	// Report aggregates the outcome of the cross-source equality check and,
	// when run, the diagnostic completeness check.
	Report struct {
		// ManifestPath and MetadataPath identify the two compared sources.
		ManifestPath string
		MetadataPath string

		// Fields holds one independent result per compared field.
		Fields []FieldResult

		// MissingLabels lists diagnostic labels absent from the PrintInfo
		// output. Nil when the diagnostic check has not been run.
		MissingLabels []string
	}
)

// Run compares the extracted metadata record against the manifest.
//
// Preconditions are verified first and abort the check before any field
// comparison: the manifest must declare at least one author entry and a
// non-empty homepage URL. The returned report then carries one result per
// field; a mismatch never short-circuits the remaining comparisons.
func Run(man *manifest.Manifest, meta *metafile.Metadata) (*Report, error) {
	if _, ok := man.Project.FirstAuthor(); !ok {
		return nil, fmt.Errorf("%s: %w", man.FilePath, ErrNoAuthors)
	}
	if man.Project.URLs.Homepage == "" {
		return nil, fmt.Errorf("%s: %w", man.FilePath, ErrNoHomepage)
	}

	first, _ := man.Project.FirstAuthor()

	r := &Report{ManifestPath: man.FilePath}

	r.compare("Name", man.Project.Name, meta.Name)
	r.compare("Title", man.Project.Description, meta.Title)
	r.compare("Version", man.Project.Version, meta.Version)
	r.compare("Homepage", man.Project.URLs.Homepage, meta.Homepage)
	r.compare("Author", first.Name, meta.Author)
	r.compare("AuthorEmail", first.Email, meta.AuthorEmail)

	// ShellCommand is a membership check against the scripts table rather
	// than a strict equality: any declared command name is acceptable.
	scripts := maps.Keys(man.Project.Scripts)
	slices.Sort(scripts)
	r.Fields = append(r.Fields, FieldResult{
		Field: "ShellCommand",
		Want:  "one of [" + strings.Join(scripts, ", ") + "]",
		Got:   meta.ShellCommand,
		OK:    man.Project.HasScript(meta.ShellCommand),
	})

	return r, nil
}

// Diagnose verifies that every recognized field label appears verbatim in
// the captured PrintInfo output and returns the labels that are missing.
func Diagnose(output string) []string {
	var missing []string
	for _, label := range metafile.TargetFields {
		if !strings.Contains(output, label) {
			missing = append(missing, label)
		}
	}
	return missing
}

// compare appends one independent field result.
func (r *Report) compare(field, want, got string) {
	r.Fields = append(r.Fields, FieldResult{
		Field: field,
		Want:  want,
		Got:   got,
		OK:    want == got,
	})
}

// OK reports whether every field matched and no diagnostic label is missing.
func (r *Report) OK() bool {
	for _, f := range r.Fields {
		if !f.OK {
			return false
		}
	}
	return len(r.MissingLabels) == 0
}

// Mismatches returns the subset of field results that disagree.
func (r *Report) Mismatches() []FieldResult {
	var out []FieldResult
	for _, f := range r.Fields {
		if !f.OK {
			out = append(out, f)
		}
	}
	return out
}
