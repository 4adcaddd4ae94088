// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/superapp-labs/superapp/pkg/cueschema"
)

//go:embed manifest_schema.cue
var manifestSchema []byte

// Parse reads and parses a plugin manifest from the given path.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin manifest at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses plugin manifest content from bytes. Uses the shared
// 3-step CUE flow: compile schema, compile user data, unify and decode.
// The decoded manifest is then validated; all violations are collected and
// returned as a single ValidationErrors value.
func ParseBytes(data []byte, path string) (*Manifest, error) {
	m, err := cueschema.Decode[Manifest](manifestSchema, data, "#Manifest", cueschema.WithFilename(path))
	if err != nil {
		return nil, err
	}
	m.FilePath = path

	if errs := m.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return m, nil
}
