// SPDX-License-Identifier: MPL-2.0

// Package manifest loads and validates the declarative project manifest.
//
// The manifest (project.toml by convention) is a TOML document with a
// [project] table describing package identity (name, version, description,
// classifiers, urls, authors, scripts) and a [tool.portrait.build] table
// naming the source package directories used for metadata file discovery.
//
// Parsing is a two-step flow: the TOML document is decoded into a raw map
// with go-toml, then validated against the embedded #Manifest CUE schema and
// decoded into the typed Manifest struct. Unknown tables and keys are
// ignored; required fields (project.name, project.version,
// project.description) fail validation with the offending CUE path.
package manifest
