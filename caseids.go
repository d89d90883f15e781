package main

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// caseIDSet is the set of requested case IDs. An empty set selects every row.
type caseIDSet map[int]struct{}

// parseCaseIDs splits s on commas and whitespace. Tokens that are not made
// of decimal digits only are logged and skipped.
func parseCaseIDs(s string, log *zap.Logger) caseIDSet {
	ids := make(caseIDSet)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for _, token := range fields {
		if !isDigits(token) {
			log.Warn("Ignoring non-numeric caseId token", zap.String("token", token))
			continue
		}
		id, err := strconv.Atoi(token)
		if err != nil {
			log.Warn("Ignoring out of range caseId token", zap.String("token", token))
			continue
		}
		ids[id] = struct{}{}
	}
	return ids
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (s caseIDSet) has(id int) bool {
	_, ok := s[id]
	return ok
}

// sorted returns the IDs in ascending order, for messages.
func (s caseIDSet) sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
