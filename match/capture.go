package match

// captureKind tags one entry of a capture chain.
type captureKind uint8

const (
	// captureVariable binds one segment to a single-segment variable.
	captureVariable captureKind = iota

	// captureContinue adds a segment to a wildcard group that stays open.
	captureContinue

	// captureBreak adds the final segment of a wildcard group.
	captureBreak
)

// capture is one link of a persistent, newest-first chain recording which
// segments bound to which variable edges along a traversal. Frames forked
// during backtracking share tails, so pushing is O(1) and never disturbs
// the chains held by sibling frames.
type capture struct {
	prev *capture
	kind captureKind
	seg  string
}

// push returns a new chain head. Works on a nil chain.
func (c *capture) push(kind captureKind, seg string) *capture {
	return &capture{prev: c, kind: kind, seg: seg}
}

// unwrap flattens the chain into captured values, newest first: string for
// a single-segment variable, []string in path order for a wildcard group.
// Walking newest-first, a break entry is always the first of its group, so
// it closes whatever group was accumulating and opens the next one;
// continue entries extend the open group with earlier segments.
func (c *capture) unwrap() []any {
	var values []any
	var group []string

	closeGroup := func() {
		if group == nil {
			return
		}
		// Group segments were collected newest first; restore path order.
		for i, j := 0, len(group)-1; i < j; i, j = i+1, j-1 {
			group[i], group[j] = group[j], group[i]
		}
		values = append(values, group)
		group = nil
	}

	for curr := c; curr != nil; curr = curr.prev {
		switch curr.kind {
		case captureContinue:
			group = append(group, curr.seg)
		case captureBreak:
			closeGroup()
			group = []string{curr.seg}
		default:
			closeGroup()
			values = append(values, curr.seg)
		}
	}
	closeGroup()

	return values
}

// makeParams zips declared variable names with unwrapped values. Unwrapped
// values come out newest first, which is reverse declaration order, so the
// names are indexed from the back instead of reversing either side.
func makeParams(names []string, chain *capture) Params {
	values := chain.unwrap()
	params := make(Params, len(values))
	for i, value := range values {
		params[names[len(names)-1-i]] = value
	}
	return params
}

// resolve tries the terminal's route records in registration order and
// returns the first whose validators all pass, or nil.
func resolve(routes []*route, chain *capture, fallback Validator) *Resolved {
	for _, rt := range routes {
		params := makeParams(rt.names, chain)
		if !validateParams(params, rt.validators, fallback) {
			continue
		}
		return &Resolved{Params: params, Payload: rt.payload}
	}
	return nil
}

// validateParams checks every captured value against its variable's
// validator, falling back to the registry fallback. Wildcard groups are
// checked segment by segment.
func validateParams(params Params, validators Validators, fallback Validator) bool {
	for name, value := range params {
		v, ok := validators[name]
		if !ok {
			v = fallback
		}

		switch val := value.(type) {
		case string:
			if !v(val) {
				return false
			}
		case []string:
			for _, seg := range val {
				if !v(seg) {
					return false
				}
			}
		}
	}
	return true
}
