package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Marker lines framing the selector list on stdout. Pipeline steps parse
// these, so the text must not change.
const (
	bannerHeader = "=== Resolved Selectors ==="
	bannerFooter = "=========================="
)

// formatSelectors joins selectors with newlines, without a trailing newline.
func formatSelectors(selectors []string) []byte {
	return []byte(strings.Join(selectors, "\n"))
}

// writeSelectors writes the selector list to path, creating parent
// directories as needed and replacing any existing file.
func writeSelectors(path string, selectors []string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &ResolveError{
				Kind: KindWriteOutput,
				Err:  fmt.Errorf("failed to create output directory %s: %w", dir, err),
			}
		}
	}
	if err := os.WriteFile(path, formatSelectors(selectors), 0644); err != nil {
		return &ResolveError{
			Kind: KindWriteOutput,
			Err:  fmt.Errorf("failed to write output file %s: %w", path, err),
		}
	}
	return nil
}

// printSelectors echoes the list between the marker lines.
func printSelectors(w io.Writer, selectors []string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, bannerHeader)
	for _, s := range selectors {
		fmt.Fprintln(bw, s)
	}
	fmt.Fprintln(bw, bannerFooter)
	return bw.Flush()
}
