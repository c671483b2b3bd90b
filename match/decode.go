package match

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("decoded bytes are not valid UTF-8")

// hasEscape reports whether the path carries any percent-escape marker.
// Paths without one skip decoding entirely.
func hasEscape(path string) bool {
	return strings.Contains(path, "%")
}

// decodeSegments percent-decodes every segment in place. Decoding happens
// strictly after splitting, so an escaped slash (%2F) stays inside its
// segment instead of becoming another separator. Decoded bytes must form
// valid UTF-8.
func decodeSegments(segs []string) error {
	for i, seg := range segs {
		decoded, err := url.PathUnescape(seg)
		if err != nil {
			return &DecodeError{Segment: seg, Err: err}
		}
		if !utf8.ValidString(decoded) {
			return &DecodeError{Segment: seg, Err: errInvalidUTF8}
		}
		segs[i] = decoded
	}
	return nil
}
