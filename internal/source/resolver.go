package source

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoInput is returned when a directory holds no capture file.
var ErrNoInput = errors.New("no input file")

// Resolve turns a path argument into the capture to convert. A file is used
// as is; for a directory the first capture in lexical order is picked.
func Resolve(spec string) (string, error) {
	if spec == "" {
		spec = "."
	}
	stat, err := os.Stat(spec)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", spec, err)
	}
	if !stat.IsDir() {
		return spec, nil
	}

	matches, err := Matches(spec)
	if err != nil {
		return "", fmt.Errorf("failed to search %s: %w", spec, err)
	}
	for _, m := range matches {
		if st, err := os.Stat(m); err == nil && !st.IsDir() {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: no %s file in %s", ErrNoInput, Extension, spec)
}
