package services

import (
	"path/filepath"
	"strings"
)

// placement is the computed destination for a validated upload. Both
// fields are physical paths in slash form.
type placement struct {
	dir  string
	path string
}

// planPlacement derives the final directory and path from where the temp
// file landed: the staging root is the temp path minus its leaf, and the
// destination is <stagingRoot>/<route>/<typeSegment>/<leaf>. Pure
// computation, no I/O. Separators are normalized up front so substring
// stripping cannot be confused by platform mismatches.
func planPlacement(route, typeSegment, tempPath, tempName string) placement {
	staging := strings.TrimSuffix(filepath.ToSlash(tempPath), tempName)
	staging = strings.TrimSuffix(staging, "/")

	dir := staging + "/" + route + "/" + typeSegment

	return placement{dir: dir, path: dir + "/" + tempName}
}
