// Package cliutil holds argument parsing shared by the commands.
package cliutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Query list parsing
const (
	listSeparator = ","
	decimalBase   = 10
	bitSize64     = 64
)

// SplitList splits a comma-separated flag value into trimmed items. An empty
// or blank value yields no items.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, listSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseIndex parses a decimal uint64 sample or knot index.
func ParseIndex(s string) (uint64, error) {
	x, err := strconv.ParseUint(s, decimalBase, bitSize64)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	return x, nil
}
