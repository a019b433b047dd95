// SPDX-License-Identifier: MPL-2.0

// Package metafile locates, statically extracts, and dynamically executes the
// generated metadata file of a project.
//
// The metadata file (metadata.go by convention) is a small Go source file of
// scalar constant assignments (Name, Title, Version, Homepage, Author,
// AuthorEmail, ShellCommand) plus a zero-argument PrintInfo diagnostic that
// prints every field.
//
// Three operations exist:
//
//   - Locate walks the manifest's declared build packages for the
//     conventionally named file, with a fallback path derived from the
//     project name.
//   - Extract scans the file line by line for the recognized constant
//     assignments and parses the collected fragments as a TOML table. The
//     textual pre-filter means no full Go parser is needed for the source
//     file, only for its literal constant-assignment lines.
//   - Exec interprets the whole file in-process with yaegi so the PrintInfo
//     diagnostic can be invoked and its output captured.
package metafile
