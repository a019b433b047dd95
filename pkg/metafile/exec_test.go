// SPDX-License-Identifier: MPL-2.0

package metafile

import (
	"path/filepath"
	"strings"
	"testing"

	"portrait-cli/internal/testutil"
)

const execSource = `package metadata

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

func writeExecFixture(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	testutil.MustWriteFile(t, path, src)
	return path
}

func TestExecPrintInfoOutput(t *testing.T) {
	m, err := Exec(writeExecFixture(t, execSource))
	if err != nil {
		t.Fatalf("Exec() returned error: %v", err)
	}

	if m.Package != "metadata" {
		t.Errorf("Package = %q, want %q", m.Package, "metadata")
	}
	if m.Output() != "" {
		t.Errorf("expected no output before PrintInfo, got %q", m.Output())
	}

	m.PrintInfo()

	out := m.Output()
	for _, field := range TargetFields {
		if !strings.Contains(out, field+":") {
			t.Errorf("PrintInfo output missing label %q:\n%s", field, out)
		}
	}
	if !strings.Contains(out, "sampleproj") {
		t.Errorf("PrintInfo output missing constant value:\n%s", out)
	}
}

func TestExecLookupConstants(t *testing.T) {
	m, err := Exec(writeExecFixture(t, execSource))
	if err != nil {
		t.Fatalf("Exec() returned error: %v", err)
	}

	v, err := m.Lookup("Version")
	if err != nil {
		t.Fatalf("Lookup(Version) returned error: %v", err)
	}
	if got := v.Interface().(string); got != "1.2.3" {
		t.Errorf("Lookup(Version) = %q, want %q", got, "1.2.3")
	}

	if _, err := m.Lookup("Nonexistent"); err == nil {
		t.Error("Lookup(Nonexistent) succeeded, want error")
	}
}

func TestExecMissingPrintInfo(t *testing.T) {
	src := "package metadata\n\nconst Name = \"p\"\n"

	_, err := Exec(writeExecFixture(t, src))
	if err == nil {
		t.Fatal("Exec() succeeded without PrintInfo")
	}
	if !strings.Contains(err.Error(), "PrintInfo") {
		t.Errorf("error %q does not mention PrintInfo", err)
	}
}

func TestExecInvalidSource(t *testing.T) {
	src := "package metadata\n\nfunc PrintInfo() {\n"

	if _, err := Exec(writeExecFixture(t, src)); err == nil {
		t.Fatal("Exec() succeeded on unparseable source")
	}
}

func TestExecNoPackageClause(t *testing.T) {
	src := "const Name = \"p\"\n"

	_, err := Exec(writeExecFixture(t, src))
	if err == nil {
		t.Fatal("Exec() succeeded without a package clause")
	}
	if !strings.Contains(err.Error(), "package clause") {
		t.Errorf("error %q does not mention the package clause", err)
	}
}

func TestExecFileNotFound(t *testing.T) {
	if _, err := Exec(filepath.Join(t.TempDir(), FileName)); err == nil {
		t.Fatal("Exec() succeeded on missing file")
	}
}
