// Package utils holds tiny parsing helpers with no domain knowledge.
package utils

import "strconv"

// AtoiDefault parses s as a base-10 integer and returns def when s is
// empty or malformed. Query and path parameters go through this so a
// bad "?page=x" degrades to the default instead of failing the request.
func AtoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
