package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MappingSpec is the decoded mapping file.
type MappingSpec struct {
	Mappings []MappingRow
}

// MappingRow associates a test case with a selector.
type MappingRow struct {
	TestCaseID int
	Path       string
}

type mappingFormat int

const (
	formatJSON mappingFormat = iota
	formatYAML
)

// formatForPath picks the decoder from the file extension. Anything that
// is not .yaml or .yml is read as JSON.
func formatForPath(path string) mappingFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// loadMapping reads and validates the mapping file at path.
func loadMapping(path string) (*MappingSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newError(KindMappingNotFound, "mapping file not found: %s", path)
		}
		return nil, &ResolveError{
			Kind: KindInvalidMapping,
			Err:  fmt.Errorf("failed to read mapping file %s: %w", path, err),
		}
	}
	return parseMapping(data, formatForPath(path))
}

// parseMapping decodes data and validates every row. A single malformed
// row fails the whole document.
func parseMapping(data []byte, format mappingFormat) (*MappingSpec, error) {
	var (
		doc map[string]any
		err error
	)
	switch format {
	case formatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		doc, err = decodeJSONObject(data)
	}
	if err != nil {
		return nil, &ResolveError{
			Kind: KindInvalidMapping,
			Err:  fmt.Errorf("failed to parse mapping file: %w", err),
		}
	}

	raw, ok := doc["mappings"]
	if !ok || raw == nil {
		return nil, newError(KindEmptyMappings, "no 'mappings' array found in mapping file")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, newError(KindInvalidMapping, "'mappings' must be an array, got %s", describe(raw))
	}
	if len(items) == 0 {
		return nil, newError(KindEmptyMappings, "no 'mappings' array found in mapping file")
	}

	spec := &MappingSpec{Mappings: make([]MappingRow, 0, len(items))}
	for i, item := range items {
		row, ok := parseRow(item)
		if !ok {
			return nil, newError(KindMalformedRow, "bad row %d (missing testCaseId/path): %s", i, renderRow(item))
		}
		spec.Mappings = append(spec.Mappings, row)
	}
	return spec, nil
}

// decodeJSONObject decodes a single JSON object, keeping numbers as
// json.Number so integral IDs survive without float rounding.
func decodeJSONObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after top-level value")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value must be an object, got %s", describe(v))
	}
	return obj, nil
}

func parseRow(item any) (MappingRow, bool) {
	fields, ok := item.(map[string]any)
	if !ok {
		return MappingRow{}, false
	}
	id, ok := caseIDFromValue(fields["testCaseId"])
	if !ok {
		return MappingRow{}, false
	}
	path, ok := fields["path"].(string)
	if !ok || path == "" {
		return MappingRow{}, false
	}
	return MappingRow{TestCaseID: id, Path: path}, true
}

// caseIDFromValue converts an integer-like value: an integral number or a
// decimal string. Booleans and fractional numbers are rejected.
func caseIDFromValue(v any) (int, bool) {
	switch v := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(v.String(), 10, 0); err == nil {
			return int(i), true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return intFromFloat(f)
	case int:
		return v, true
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case float64:
		return intFromFloat(v)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func intFromFloat(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}

func renderRow(item any) string {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Sprintf("%v", item)
	}
	return string(data)
}
