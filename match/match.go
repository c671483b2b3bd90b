package match

// frame is one pending state of the traversal: a graph node, the capture
// chain accumulated on the way there, and how many input segments were
// consumed. wildOnly marks a wildcard continue frame, which re-offers only
// the wildcard edge of the same node so the open group can absorb another
// segment; such a frame is never a terminal.
type frame struct {
	n        *node
	chain    *capture
	depth    int
	wildOnly bool
}

// search runs a depth-first scan of the pattern graph on an explicit
// stack. Push order encodes precedence: for every node the literal frame
// is pushed last and popped first, the variable frame before it, the
// wildcard frames first of all. Popping LIFO, a literal continuation and
// everything it pushes in turn is explored to exhaustion before any
// variable alternative is considered, and variables before wildcards.
// Within a wildcard, the break frame (close the group, move to the child)
// is popped before the continue frame, so every group left of the last
// wildcard stays as short as possible and the rightmost group absorbs the
// remainder.
//
// Graph branches are tree-like, so no state is ever revisited and the work
// is bounded by branching factor times path length. Success ends the
// search immediately; an exhausted stack is ErrNotFound.
func (r *Routes) search(segs []string) (*Resolved, error) {
	stack := []frame{{n: r.root}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if curr.depth == len(segs) {
			if curr.wildOnly {
				continue
			}
			if resolved := resolve(curr.n.routes, curr.chain, r.fallback); resolved != nil {
				return resolved, nil
			}
			continue
		}

		seg := segs[curr.depth]

		if curr.n.wildcard != nil {
			stack = append(stack,
				frame{
					n:        curr.n,
					chain:    curr.chain.push(captureContinue, seg),
					depth:    curr.depth + 1,
					wildOnly: true,
				},
				frame{
					n:     curr.n.wildcard,
					chain: curr.chain.push(captureBreak, seg),
					depth: curr.depth + 1,
				},
			)
		}

		if curr.wildOnly {
			continue
		}

		if curr.n.variable != nil {
			stack = append(stack, frame{
				n:     curr.n.variable,
				chain: curr.chain.push(captureVariable, seg),
				depth: curr.depth + 1,
			})
		}

		if child, ok := curr.n.static[seg]; ok {
			stack = append(stack, frame{
				n:     child,
				chain: curr.chain,
				depth: curr.depth + 1,
			})
		}
	}

	return nil, ErrNotFound
}
