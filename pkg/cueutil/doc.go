// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE schema validation utilities.
//
// The package consolidates the schema validation pattern used across the
// manifest, metafile, and config packages:
//
//  1. Compile the embedded schema
//  2. Encode or compile the input data and unify with the schema
//  3. Validate and decode to a Go struct
//
// Two entry points exist: ParseAndDecode for CUE-syntax input (config files)
// and DecodeMap for data that has already been parsed from another format
// (TOML manifests decoded into a map).
//
// # Usage
//
//	//go:embed manifest_schema.cue
//	var schemaStr string
//
//	value, err := cueutil.DecodeMap[Manifest](
//	    schemaStr,
//	    rawMap,
//	    "#Manifest",
//	    cueutil.WithFilename("project.toml"),
//	)
//	if err != nil {
//	    return nil, err // Error includes the CUE path of the offending field
//	}
package cueutil
