// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadParams reads YAML encoded params from path. Keys missing from the
// file keep their value from base.
func LoadParams(path string, base Params) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("failed to read params file: %w", err)
	}

	p, err := ParseParams(data, base)
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// ParseParams decodes YAML with the keys window_type, window_length,
// transform_size and overlap_ratio on top of base and validates the
// result.
func ParseParams(data []byte, base Params) (Params, error) {
	p := base
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("failed to parse params: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}

// MarshalParams encodes p in the format ParseParams reads.
func MarshalParams(p Params) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode params: %w", err)
	}

	return data, nil
}
