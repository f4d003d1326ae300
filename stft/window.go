// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/dsp/window"
	"gopkg.in/yaml.v3"
)

// WindowType selects the analysis and synthesis window.
type WindowType int

const (
	Rectangular WindowType = iota
	Hann
	Hamming
	Blackman
	BlackmanHarris
	Triangular
	Sine
)

var windowNames = map[WindowType]string{
	Rectangular:    "rectangular",
	Hann:           "hann",
	Hamming:        "hamming",
	Blackman:       "blackman",
	BlackmanHarris: "blackmanharris",
	Triangular:     "triangular",
	Sine:           "sine",
}

var windowFuncs = map[WindowType]func([]float64) []float64{
	Rectangular:    window.Rectangular,
	Hann:           window.Hann,
	Hamming:        window.Hamming,
	Blackman:       window.Blackman,
	BlackmanHarris: window.BlackmanHarris,
	Triangular:     window.Triangular,
	Sine:           window.Sine,
}

func (w WindowType) String() string {
	if name, ok := windowNames[w]; ok {
		return name
	}
	return fmt.Sprintf("WindowType(%d)", int(w))
}

func (w WindowType) valid() bool {
	_, ok := windowFuncs[w]
	return ok
}

// ParseWindowType maps a window name to its WindowType. Matching ignores
// case, dashes and underscores, and accepts "hanning" and "boxcar".
func ParseWindowType(name string) (WindowType, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)

	switch key {
	case "hanning":
		return Hann, nil
	case "boxcar", "rect":
		return Rectangular, nil
	}

	for w, n := range windowNames {
		if n == key {
			return w, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownWindow, name)
}

func (w WindowType) MarshalYAML() (any, error) {
	if !w.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWindow, int(w))
	}
	return w.String(), nil
}

func (w *WindowType) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return fmt.Errorf("window_type: %w", err)
	}

	parsed, err := ParseWindowType(name)
	if err != nil {
		return err
	}

	*w = parsed
	return nil
}

// Coefficients returns the n point symmetric window. A single point
// window is always 1.
func (w WindowType) Coefficients(n int) ([]float64, error) {
	fn, ok := windowFuncs[w]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWindow, int(w))
	}

	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = 1
	}
	if n == 1 {
		return coeffs, nil
	}

	return fn(coeffs), nil
}
