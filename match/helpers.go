package match

import "strings"

// normalize strips exactly one leading and one trailing slash. Repeated
// slashes are left alone: they produce empty segments that only match an
// empty literal.
func normalize(path string) string {
	path = strings.TrimPrefix(path, "/")
	return strings.TrimSuffix(path, "/")
}

// depthOf is the depth of a segment list: segment count minus one.
func depthOf(segs []string) int {
	return len(segs) - 1
}
