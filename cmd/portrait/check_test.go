// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"portrait-cli/internal/testutil"
)

const fixtureManifest = `[project]
name = "sampleproj"
version = "1.2.3"
description = "A sample project"

[project.urls]
homepage = "https://example.com/sampleproj"

[[project.authors]]
name = "Ada Doe"
email = "ada@example.com"

[project.scripts]
sampleproj = "sampleproj-cli/cmd/sampleproj.Execute"

[tool.portrait.build]
packages = ["internal/metadata"]
`

const fixtureMetadata = `package metadata

import "fmt"

const (
	Name         = "sampleproj"
	Title        = "A sample project"
	Version      = "1.2.3"
	Homepage     = "https://example.com/sampleproj"
	Author       = "Ada Doe"
	AuthorEmail  = "ada@example.com"
	ShellCommand = "sampleproj"
)

func PrintInfo() {
	fmt.Printf("Name:         %s\n", Name)
	fmt.Printf("Title:        %s\n", Title)
	fmt.Printf("Version:      %s\n", Version)
	fmt.Printf("Homepage:     %s\n", Homepage)
	fmt.Printf("Author:       %s\n", Author)
	fmt.Printf("AuthorEmail:  %s\n", AuthorEmail)
	fmt.Printf("ShellCommand: %s\n", ShellCommand)
}
`

// writeProjectFixture lays out a whole project and points the manifest flag
// at it for the duration of the test.
func writeProjectFixture(t *testing.T, manifestContent, metadataContent string) string {
	t.Helper()

	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, "project.toml"), manifestContent)
	if metadataContent != "" {
		testutil.MustWriteFile(t, filepath.Join(root, "internal", "metadata", "metadata.go"), metadataContent)
	}

	origFlag := manifestFlag
	t.Cleanup(func() { manifestFlag = origFlag })
	manifestFlag = filepath.Join(root, "project.toml")

	return root
}

func TestRunFullCheckAgreeingProject(t *testing.T) {
	writeProjectFixture(t, fixtureManifest, fixtureMetadata)

	report, err := runFullCheck()
	if err != nil {
		t.Fatalf("runFullCheck() returned error: %v", err)
	}

	if !report.OK() {
		t.Errorf("report not OK: mismatches %v, missing labels %v", report.Mismatches(), report.MissingLabels)
	}
	if report.MetadataPath == "" {
		t.Error("report has no metadata path")
	}
}

func TestRunFullCheckDetectsMismatch(t *testing.T) {
	meta := strings.Replace(fixtureMetadata, `Version      = "1.2.3"`, `Version      = "9.9.9"`, 1)
	writeProjectFixture(t, fixtureManifest, meta)

	report, err := runFullCheck()
	if err != nil {
		t.Fatalf("runFullCheck() returned error: %v", err)
	}

	if report.OK() {
		t.Fatal("report OK despite a version drift")
	}
	bad := report.Mismatches()
	if len(bad) != 1 || bad[0].Field != "Version" {
		t.Errorf("Mismatches() = %v, want only Version", bad)
	}
}

func TestRunFullCheckMissingManifest(t *testing.T) {
	origFlag := manifestFlag
	t.Cleanup(func() { manifestFlag = origFlag })
	manifestFlag = filepath.Join(t.TempDir(), "project.toml")

	if _, err := runFullCheck(); err == nil {
		t.Fatal("runFullCheck() succeeded without a manifest")
	}
}

func TestRunFullCheckMissingMetadataFile(t *testing.T) {
	writeProjectFixture(t, fixtureManifest, "")

	if _, err := runFullCheck(); err == nil {
		t.Fatal("runFullCheck() succeeded without a metadata file")
	}
}
