package main

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a fatal resolver failure. Each kind has its own exit code.
type ErrorKind int

const (
	KindUsage ErrorKind = iota + 1
	KindMappingNotFound
	KindMalformedRow
	KindUnresolved
	KindEmptyMappings
	KindInvalidMapping
	KindWriteOutput
	KindVerify
)

// ExitCode returns the process exit status for the kind.
func (k ErrorKind) ExitCode() int {
	return int(k)
}

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindMappingNotFound:
		return "mapping-not-found"
	case KindMalformedRow:
		return "malformed-row"
	case KindUnresolved:
		return "unresolved"
	case KindEmptyMappings:
		return "empty-mappings"
	case KindInvalidMapping:
		return "invalid-mapping"
	case KindWriteOutput:
		return "write-output"
	case KindVerify:
		return "verify"
	default:
		return "unknown"
	}
}

// ResolveError is returned for every fatal condition of a run.
type ResolveError struct {
	Kind ErrorKind
	Err  error
}

func (e *ResolveError) Error() string {
	return e.Err.Error()
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, format string, args ...any) *ResolveError {
	return &ResolveError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// exitCode maps err to a process exit status. Errors that are not a
// *ResolveError are treated as usage errors, which is what cobra returns
// for bad flags.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var re *ResolveError
	if errors.As(err, &re) {
		return re.Kind.ExitCode()
	}
	return KindUsage.ExitCode()
}
