package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindProjectBinary locates the spec2wsx binary, preferring SPEC2WSX_BINARY
// and falling back to bin/spec2wsx in the module root.
func FindProjectBinary() (string, error) {
	if bin := os.Getenv("SPEC2WSX_BINARY"); bin != "" {
		return bin, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "bin", "spec2wsx")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("spec2wsx binary not found; run go build -o bin/spec2wsx . or set SPEC2WSX_BINARY")
		}
		dir = parent
	}
}
