package match

import (
	"fmt"
	"strings"
)

const (
	// defaultDepthLimit bounds how many segments a matched path may have.
	// Wildcard patterns can absorb any number of segments, so the deepest
	// registered pattern stops being a usable bound once one exists; this
	// ceiling takes over.
	defaultDepthLimit = 40

	wildcardPrefix = ":*"
	variablePrefix = ":"
)

// route is one registered pattern terminating at a graph node: the
// variable names in declaration order, the caller's payload, and the
// per-variable validators.
type route struct {
	names      []string
	payload    any
	validators Validators
}

// Params maps variable names to captured values: a string for a
// single-segment variable, a []string of one or more segments for a
// wildcard variable.
type Params map[string]any

// Resolved is a successful match: the extracted parameters and the payload
// attached at registration.
type Resolved struct {
	Params  Params
	Payload any
}

// Routes matches URL paths against registered patterns.
//
// Registration is not safe for concurrent use and must fully complete
// before matching begins. Once built, the graph is read-only: Match keeps
// all traversal state call-local and any number of goroutines may call it
// concurrently.
type Routes struct {
	root *node

	// maxDepth is the depth of the deepest wildcard-free pattern.
	// Monotonic, never shrinks.
	maxDepth int

	depthLimit int
	fallback   Validator
}

// NewRoutes returns an empty pattern registry.
func NewRoutes() *Routes {
	return &Routes{
		root:       newNode(),
		depthLimit: defaultDepthLimit,
		fallback:   DefaultValidator,
	}
}

// DepthLimit sets the segment-depth ceiling for matched paths. The
// effective bound never drops below the deepest registered wildcard-free
// pattern. The default is 40.
func (r *Routes) DepthLimit(limit int) *Routes {
	r.depthLimit = limit
	return r
}

// FallbackValidator replaces DefaultValidator for variables that have no
// validator of their own.
func (r *Routes) FallbackValidator(v Validator) *Routes {
	r.fallback = v
	return r
}

// Add registers a URL pattern. A segment starting with ":*" declares a
// wildcard variable consuming one or more segments, a segment starting
// with ":" declares a single-segment variable, anything else matches
// literally, byte for byte and case-sensitively. The payload is opaque and
// returned as-is on a match.
//
// An optional validator set constrains captured values by variable name;
// variables without one fall back to DefaultValidator. Registering a
// colliding pattern appends another route record at the same terminal;
// records are tried in registration order until one passes validation.
func (r *Routes) Add(pattern string, payload any, validators ...Validators) error {
	var vals Validators
	if len(validators) > 0 {
		vals = validators[0]
	}

	parts := strings.Split(normalize(pattern), "/")

	names, wild, err := declaredNames(pattern, parts)
	if err != nil {
		return err
	}

	declared := make(map[string]struct{}, len(names))
	for _, name := range names {
		declared[name] = struct{}{}
	}
	for key := range vals {
		if _, ok := declared[key]; !ok {
			return &PatternError{
				Pattern: pattern,
				Reason:  fmt.Sprintf("validator for undeclared variable %q", key),
			}
		}
	}

	curr := r.root
	for _, part := range parts {
		switch {
		case strings.HasPrefix(part, wildcardPrefix):
			curr = curr.wildcardChild()
		case strings.HasPrefix(part, variablePrefix):
			curr = curr.variableChild()
		default:
			curr = curr.staticChild(part)
		}
	}

	curr.routes = append(curr.routes, &route{
		names:      names,
		payload:    payload,
		validators: vals,
	})

	if !wild && depthOf(parts) > r.maxDepth {
		r.maxDepth = depthOf(parts)
	}

	return nil
}

// MustAdd is like Add but panics on error. It simplifies registries built
// from fixed tables at startup.
func (r *Routes) MustAdd(pattern string, payload any, validators ...Validators) *Routes {
	if err := r.Add(pattern, payload, validators...); err != nil {
		panic(err)
	}
	return r
}

// Match finds the best registered pattern for path and extracts its
// variables. Overlapping patterns resolve deterministically: literal
// segments take precedence over variables, variables over wildcards.
//
// Returns ErrNotFound when nothing matches or the path exceeds the depth
// bound, and a *DecodeError when a percent-escaped segment cannot be
// decoded.
func (r *Routes) Match(path string) (*Resolved, error) {
	normalized := normalize(path)

	segs, err := r.deconstruct(normalized)
	if err != nil {
		return nil, err
	}

	if hasEscape(normalized) {
		if err := decodeSegments(segs); err != nil {
			return nil, err
		}
	}

	return r.search(segs)
}

// declaredNames scans pattern parts for variable declarations, preserving
// declaration order and rejecting empty or duplicate names.
func declaredNames(pattern string, parts []string) (names []string, wild bool, err error) {
	seen := make(map[string]struct{})

	for _, part := range parts {
		var name string

		switch {
		case strings.HasPrefix(part, wildcardPrefix):
			name = strings.TrimPrefix(part, wildcardPrefix)
			wild = true
		case strings.HasPrefix(part, variablePrefix):
			name = strings.TrimPrefix(part, variablePrefix)
		default:
			continue
		}

		if name == "" {
			return nil, false, &PatternError{Pattern: pattern, Reason: "variable with empty name"}
		}
		if _, ok := seen[name]; ok {
			return nil, false, &PatternError{
				Pattern: pattern,
				Reason:  fmt.Sprintf("duplicate variable %q", name),
			}
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names, wild, nil
}

// bound is the effective depth ceiling: the configured limit, or the
// deepest wildcard-free pattern when that is deeper.
func (r *Routes) bound() int {
	if r.maxDepth > r.depthLimit {
		return r.maxDepth
	}
	return r.depthLimit
}

// deconstruct splits a normalized path into segments, bounded by the
// registry depth. Splitting is capped so an overlong path is rejected
// before the tail past the bound is even separated.
func (r *Routes) deconstruct(path string) ([]string, error) {
	maxDepth := r.bound()

	segs := strings.SplitN(path, "/", maxDepth+2)
	if depthOf(segs) > maxDepth {
		return nil, ErrNotFound
	}

	return segs, nil
}
