package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// resolver turns a mapping into the list of selectors to run.
type resolver struct {
	Root      string // directory relative file portions are checked against
	Delimiter string // separates the file portion from a sub-selector

	log  *zap.Logger
	stat func(name string) (fs.FileInfo, error)
}

func newResolver(cfg *Config, log *zap.Logger) *resolver {
	return &resolver{
		Root:      cfg.Root,
		Delimiter: cfg.Delimiter,
		log:       log,
		stat:      os.Stat,
	}
}

// resolve filters spec by requested and drops rows whose file is missing.
// Source order is kept. It fails only when requested is non-empty and
// nothing survives.
func (r *resolver) resolve(spec *MappingSpec, requested caseIDSet) ([]string, error) {
	selected := make([]string, 0, len(spec.Mappings))
	found := make(map[int]bool)

	for _, row := range spec.Mappings {
		if len(requested) > 0 && !requested.has(row.TestCaseID) {
			continue
		}
		file := r.filePart(row.Path)
		if !r.exists(file) {
			r.log.Error("File not found for testCaseId",
				zap.Int("testCaseId", row.TestCaseID),
				zap.String("file", file))
			continue
		}
		found[row.TestCaseID] = true
		selected = append(selected, row.Path)
	}

	if len(requested) == 0 {
		if len(selected) == 0 {
			r.log.Warn("No mapping rows resolved to existing files")
		}
		return selected, nil
	}

	if len(selected) == 0 {
		return nil, newError(KindUnresolved, "none of the requested caseIds %v resolved to valid paths", requested.sorted())
	}
	var missing []int
	for _, id := range requested.sorted() {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		r.log.Warn("Some requested caseIds did not resolve", zap.Ints("caseIds", missing))
	}
	return selected, nil
}

// filePart returns the portion of a selector before the first delimiter.
func (r *resolver) filePart(selector string) string {
	file, _, _ := strings.Cut(selector, r.Delimiter)
	return file
}

func (r *resolver) exists(file string) bool {
	name := file
	if !filepath.IsAbs(name) {
		name = filepath.Join(r.Root, name)
	}
	_, err := r.stat(name)
	return err == nil
}
