// SPDX-License-Identifier: MPL-2.0

package metafile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"portrait-cli/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
)

//go:embed metadata_schema.cue
var metadataSchema string

// ErrNoAssignments is returned when the metadata file contains no recognized
// constant assignments. Callers can check for it with errors.Is.
var ErrNoAssignments = errors.New("no metadata assignments found")

// Extract reads the metadata file at path and parses its constant
// assignments into a validated Metadata record.
func Extract(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file at %s: %w", path, err)
	}

	return ExtractBytes(data, path)
}

// ExtractBytes parses metadata file content from bytes.
//
// The file is scanned line by line for assignments to the recognized
// constant names. Matching lines are collected verbatim (modulo whitespace
// normalization around the '='), wrapped in a [metadata] TOML table, parsed
// with the same TOML parser used for the manifest, and validated against the
// #Metadata schema. Go string literals for the scalar values double as valid
// TOML strings, which is what makes the textual pre-filter sufficient.
func ExtractBytes(data []byte, path string) (*Metadata, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return nil, err
	}

	fragments := collectAssignments(string(data))
	if len(fragments) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoAssignments)
	}

	doc := "[metadata]\n" + strings.Join(fragments, "\n") + "\n"

	var raw map[string]any
	if err := toml.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("%s: failed to parse metadata assignments: %w", path, err)
	}

	section, ok := raw["metadata"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNoAssignments)
	}

	return cueutil.DecodeMap[Metadata](
		metadataSchema,
		section,
		"#Metadata",
		cueutil.WithFilename(path),
	)
}

// collectAssignments returns normalized "key = value" fragments for every
// line assigning a recognized constant. gofmt aligns the '=' inside const
// blocks, so matching splits on the first '=' rather than on a fixed prefix.
func collectAssignments(src string) []string {
	var fragments []string

	for _, line := range strings.Split(src, "\n") {
		stripped := strings.TrimSpace(line)

		key, value, ok := strings.Cut(stripped, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if value == "" || !isTargetField(key) {
			continue
		}

		fragments = append(fragments, key+" = "+value)
	}

	return fragments
}
