// SPDX-License-Identifier: MPL-2.0

// Package metadata holds the project portrait: scalar constants mirroring
// the canonical project.toml manifest.
//
// Keep this file self-contained: it is both compiled into the binary and
// interpreted as a standalone unit by pkg/metafile, so it must not import
// anything beyond the standard library. The values must stay textually
// identical to their manifest counterparts; the test suite enforces that.
package metadata

import "fmt"

const (
	Name         = "portrait"
	Title        = "Keeps a project's declared metadata and its generated metadata module in agreement"
	Version      = "0.3.1"
	Homepage     = "https://github.com/portrait-dev/portrait"
	Author       = "Portrait Maintainers"
	AuthorEmail  = "maintainers@portrait.dev"
	ShellCommand = "portrait"
)

// PrintInfo prints every metadata field with its label for human inspection.
func PrintInfo() {
	fmt.Printf("Name:         %s\n", Name)
	fmt.Printf("Title:        %s\n", Title)
	fmt.Printf("Version:      %s\n", Version)
	fmt.Printf("Homepage:     %s\n", Homepage)
	fmt.Printf("Author:       %s\n", Author)
	fmt.Printf("AuthorEmail:  %s\n", AuthorEmail)
	fmt.Printf("ShellCommand: %s\n", ShellCommand)
}
