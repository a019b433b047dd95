// SPDX-License-Identifier: MPL-2.0

package metafile

import (
	"errors"
	"path/filepath"
	"testing"

	"portrait-cli/internal/testutil"
	"portrait-cli/pkg/manifest"
)

func fakeManifest(name string, packages ...string) *manifest.Manifest {
	m := &manifest.Manifest{}
	m.Project.Name = name
	m.Tool.Portrait.Build.Packages = packages
	return m
}

func TestLocateDeclaredPackage(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "internal", "metadata", FileName)
	testutil.MustWriteFile(t, want, "package metadata\n")

	got, err := Locate(root, fakeManifest("sampleproj", "internal/metadata"))
	if err != nil {
		t.Fatalf("Locate() returned error: %v", err)
	}
	if got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
}

func TestLocateFirstMatchWins(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "pkg", "meta", FileName)
	second := filepath.Join(root, "internal", "metadata", FileName)
	testutil.MustWriteFile(t, first, "package meta\n")
	testutil.MustWriteFile(t, second, "package metadata\n")

	got, err := Locate(root, fakeManifest("sampleproj", "pkg/meta", "internal/metadata"))
	if err != nil {
		t.Fatalf("Locate() returned error: %v", err)
	}
	if got != first {
		t.Errorf("Locate() = %q, want first declared package %q", got, first)
	}
}

func TestLocateSkipsMissingPackages(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "internal", "metadata", FileName)
	testutil.MustWriteFile(t, want, "package metadata\n")

	got, err := Locate(root, fakeManifest("sampleproj", "pkg/absent", "internal/metadata"))
	if err != nil {
		t.Fatalf("Locate() returned error: %v", err)
	}
	if got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
}

func TestLocateFallbackUnderscoresName(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "internal", "sample_proj", FileName)
	testutil.MustWriteFile(t, want, "package sample_proj\n")

	got, err := Locate(root, fakeManifest("sample-proj"))
	if err != nil {
		t.Fatalf("Locate() returned error: %v", err)
	}
	if got != want {
		t.Errorf("Locate() = %q, want fallback %q", got, want)
	}
}

func TestLocateNotFound(t *testing.T) {
	_, err := Locate(t.TempDir(), fakeManifest("sampleproj", "internal/metadata"))
	if err == nil {
		t.Fatal("Locate() succeeded with no metadata file present")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound in chain, got %v", err)
	}
}

func TestLocateIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	// A directory named like the metadata file must not satisfy the probe.
	dir := filepath.Join(root, "internal", "metadata", FileName)
	testutil.MustWriteFile(t, filepath.Join(dir, "placeholder"), "")

	_, err := Locate(root, fakeManifest("sampleproj", "internal/metadata"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for directory candidate, got %v", err)
	}
}
