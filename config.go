package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Config holds the options of a single run.
type Config struct {
	Mapping   string // mapping file path
	CaseIDs   string // requested case IDs, "-" to read them from stdin
	Out       string // output file path
	Root      string // base directory for existence checks
	Delimiter string // sub-selector delimiter
	Verify    bool   // read the output back and check it
	Quiet     bool   // suppress warnings
}

var DefaultConfig = Config{
	Root:      ".",
	Delimiter: "::",
}

func (c *Config) validate() error {
	switch {
	case c.Mapping == "":
		return newError(KindUsage, "--mapping is required")
	case c.Out == "":
		return newError(KindUsage, "--out is required")
	case c.Delimiter == "":
		return newError(KindUsage, "--delimiter must not be empty")
	case c.Root == "":
		return newError(KindUsage, "--root must not be empty")
	}
	return nil
}

// caseIDInput returns the raw requested-ID string, reading it from stdin
// when CaseIDs is "-".
func (c *Config) caseIDInput(stdin io.Reader) (string, error) {
	if c.CaseIDs != "-" {
		return c.CaseIDs, nil
	}
	if isInteractive(stdin) {
		return "", newError(KindUsage, "--caseIds - expects input on stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", &ResolveError{Kind: KindUsage, Err: fmt.Errorf("failed to read caseIds from stdin: %w", err)}
	}
	return string(data), nil
}

// Return true if r is a terminal
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
