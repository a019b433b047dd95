// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"portrait-cli/internal/check"
	"portrait-cli/pkg/manifest"
)

func sampleReport() *check.Report {
	return &check.Report{
		ManifestPath: "project.toml",
		MetadataPath: "internal/metadata/metadata.go",
		Fields: []check.FieldResult{
			{Field: "Name", Want: "sampleproj", Got: "sampleproj", OK: true},
			{Field: "Version", Want: "1.2.3", Got: "1.2.3", OK: true},
		},
	}
}

func TestRenderReportAllAgree(t *testing.T) {
	out := renderReport(sampleReport())

	if !strings.Contains(out, "project.toml") {
		t.Errorf("report missing the manifest path:\n%s", out)
	}
	if !strings.Contains(out, "✓") {
		t.Errorf("report missing the match marker:\n%s", out)
	}
	if !strings.Contains(out, "All metadata sources agree.") {
		t.Errorf("report missing the success summary:\n%s", out)
	}
	if strings.Contains(out, "✗") {
		t.Errorf("report shows a mismatch marker for agreeing sources:\n%s", out)
	}
}

func TestRenderReportMismatch(t *testing.T) {
	r := sampleReport()
	r.Fields = append(r.Fields, check.FieldResult{
		Field: "Homepage",
		Want:  "https://example.com/sampleproj",
		Got:   "https://example.org",
		OK:    false,
	})

	out := renderReport(r)

	if !strings.Contains(out, "✗") {
		t.Errorf("report missing the mismatch marker:\n%s", out)
	}
	if !strings.Contains(out, "https://example.com/sampleproj") || !strings.Contains(out, "https://example.org") {
		t.Errorf("report missing the compared values:\n%s", out)
	}
	if !strings.Contains(out, "1 field(s) out of sync.") {
		t.Errorf("report missing the mismatch summary:\n%s", out)
	}
}

func TestRenderReportMissingLabels(t *testing.T) {
	r := sampleReport()
	r.MissingLabels = []string{"Homepage", "Author"}

	out := renderReport(r)

	if !strings.Contains(out, "Homepage, Author") {
		t.Errorf("report missing the label list:\n%s", out)
	}
	if !strings.Contains(out, "Diagnostic output incomplete.") {
		t.Errorf("report missing the diagnostic summary:\n%s", out)
	}
}

func TestRenderManifest(t *testing.T) {
	man := &manifest.Manifest{FilePath: "project.toml"}
	man.Project.Name = "sampleproj"
	man.Project.Version = "1.2.3"
	man.Project.Description = "A sample project"
	man.Project.URLs.Homepage = "https://example.com/sampleproj"
	man.Project.Authors = []manifest.Author{{Name: "Ada Doe", Email: "ada@example.com"}}
	man.Project.Scripts = map[string]string{"sampleproj": "sampleproj-cli/cmd/sampleproj.Execute"}
	man.Project.Classifiers = []string{"Environment :: Console"}
	man.Tool.Portrait.Build.Packages = []string{"internal/metadata"}

	out := renderManifest(man)

	for _, want := range []string{
		"sampleproj",
		"1.2.3",
		"A sample project",
		"https://example.com/sampleproj",
		"Ada Doe <ada@example.com>",
		"internal/metadata",
		"Environment :: Console",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered manifest missing %q:\n%s", want, out)
		}
	}
}
