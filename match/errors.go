package match

import (
	"errors"
	"fmt"
)

// ErrRoute is the base error for every failure reported by this package.
// All errors returned by Routes.Add and Routes.Match match it with
// errors.Is.
var ErrRoute = errors.New("match: route error")

// ErrNotFound is returned by Routes.Match when no registered pattern
// matches the path, or when the path has more segments than the depth
// bound allows.
var ErrNotFound = fmt.Errorf("%w: no matching pattern", ErrRoute)

// PatternError is returned by Routes.Add for a malformed registration.
type PatternError struct {
	// Pattern is the pattern string passed to Add.
	Pattern string

	// Reason describes what is wrong with the pattern.
	Reason string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("match: invalid pattern %q: %s", e.Pattern, e.Reason)
}

func (e *PatternError) Unwrap() error { return ErrRoute }

// DecodeError is returned by Routes.Match when a percent-escaped segment
// cannot be decoded. It is a distinct failure, never folded into
// ErrNotFound: matching does not proceed on partially decoded input.
type DecodeError struct {
	// Segment is the raw segment that failed to decode.
	Segment string

	// Err is the underlying decode failure.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("match: cannot decode segment %q: %v", e.Segment, e.Err)
	}
	return fmt.Sprintf("match: cannot decode segment %q", e.Segment)
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRoute}
	}
	return []error{ErrRoute, e.Err}
}
