// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	_ "embed"
	"fmt"
	"os"

	"portrait-cli/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
)

//go:embed manifest_schema.cue
var manifestSchema string

// Load reads and parses the manifest at the given path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at %s: %w", path, err)
	}

	return LoadBytes(data, path)
}

// LoadBytes parses manifest content from bytes.
// The TOML document is decoded into a raw map, validated against the
// #Manifest schema, and decoded into the typed Manifest.
func LoadBytes(data []byte, path string) (*Manifest, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: invalid TOML: %w", path, err)
	}

	m, err := cueutil.DecodeMap[Manifest](
		manifestSchema,
		raw,
		"#Manifest",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	m.FilePath = path

	return m, nil
}
