package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// verifyOutput reads the written file back and checks that it holds
// exactly want and that every line is a path taken verbatim from spec.
func verifyOutput(path string, spec *MappingSpec, want []string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ResolveError{
			Kind: KindVerify,
			Err:  fmt.Errorf("failed to read back output file %s: %w", path, err),
		}
	}
	if !bytes.Equal(data, formatSelectors(want)) {
		return newError(KindVerify, "output file %s does not match the resolved selectors", path)
	}
	if len(data) == 0 {
		return nil
	}

	known := make(map[string]bool, len(spec.Mappings))
	for _, row := range spec.Mappings {
		known[row.Path] = true
	}
	for i, line := range strings.Split(string(data), "\n") {
		if !known[line] {
			return newError(KindVerify, "line %d of %s is not a mapping path: %q", i+1, path, line)
		}
	}
	return nil
}
