// Package match routes URL paths to registered URL patterns and extracts
// captured variables.
//
// The package is the matching core of a dispatch layer: it knows nothing
// about HTTP methods, handlers or servers. Each pattern carries an opaque
// payload that is handed back on a match, so callers decide what a route
// resolves to (a handler table, a controller, anything).
//
// # Patterns
//
// Patterns are /-separated segments. A segment starting with ":" declares
// a single-segment variable, a segment starting with ":*" declares a
// wildcard variable matching one or more consecutive segments, and
// anything else is a literal, matched byte for byte and case-sensitively:
//
//	r := match.NewRoutes()
//	r.MustAdd("api/:version/users/:id", usersPayload)
//	r.MustAdd("static/:*path/:file", filesPayload)
//
// One leading and one trailing slash are ignored on both patterns and
// matched paths, so "/a/b/", "a/b" and "a/b/" are equivalent.
//
// # Matching
//
//	resolved, err := r.Match("api/v1/users/42")
//	if err != nil {
//	    // errors.Is(err, match.ErrNotFound)
//	}
//	resolved.Params  // match.Params{"version": "v1", "id": "42"}
//	resolved.Payload // usersPayload
//
// A single-segment variable captures a string; a wildcard captures a
// []string of one or more segments in path order:
//
//	resolved, _ = r.Match("static/css/site/main.css")
//	resolved.Params // match.Params{"path": []string{"css", "site"}, "file": "main.css"}
//
// # Precedence
//
// Overlapping patterns resolve deterministically: a literal segment beats
// a variable, and a variable beats a wildcard. The search backtracks, so a
// path that walks into a dead end on a literal branch still falls back to
// a variable alternative:
//
//	r.MustAdd(":x/:y", payloadA)
//	r.MustAdd("api", payloadB)
//	r.Match("api/baz") // payloadA, Params{"x": "api", "y": "baz"}
//
// When several wildcards are adjacent, each group left of the last takes
// exactly one segment and the rightmost absorbs the remainder.
//
// # Validators
//
// A validator constrains the values a variable accepts. Validators are
// passed at registration, keyed by variable name; for wildcard variables
// the validator runs against every segment of the group:
//
//	r.MustAdd("user/:id", payload, match.Validators{
//	    "id": func(v string) bool { return v != "" && v[0] != '0' },
//	})
//
// Pre-compiled validators for common shapes are available by name via
// BuiltinValidator: uuid, int, float, slug, alpha, alphanum, date, hex and
// domain.
//
// Variables without a validator use DefaultValidator, which accepts
// Unicode letters, digits, spaces, dots, dashes and underscores. The
// fallback is plain registry configuration, replaceable per registry:
//
//	r := match.NewRoutes().FallbackValidator(func(string) bool { return true })
//
// Registering the same pattern again appends another route record at the
// same terminal. Records are tried in registration order and the first
// whose validators all pass wins, so colliding patterns can be
// disambiguated purely by validation:
//
//	r.MustAdd("order/:ref", byID, match.Validators{"ref": isDigits})
//	r.MustAdd("order/:ref", byCode)
//
// # Percent-decoding
//
// When the matched path contains a percent-escape, every segment is
// decoded (strict UTF-8) after splitting and before matching. An escaped
// slash therefore stays inside its segment:
//
//	r.Match("download/rates%2Fusd") // one segment "rates/usd", not two
//
// A malformed escape or invalid UTF-8 is reported as a *DecodeError,
// never as ErrNotFound.
//
// # Depth bound
//
// Paths deeper than the registry bound fail fast with ErrNotFound before
// any traversal. The bound is the deepest registered wildcard-free
// pattern, or the DepthLimit ceiling (default 40) when that is larger;
// wildcard patterns can absorb unbounded segments, which is what the
// ceiling is for.
//
// # Errors
//
// All errors match ErrRoute with errors.Is. Malformed registrations
// (validator for an undeclared variable, empty or duplicate variable
// names) return a *PatternError from Add.
//
// # Concurrency
//
// Build the registry first, then match: Add is not safe for concurrent
// use, while Match touches no shared mutable state and may be called from
// any number of goroutines once registration is done.
package match
