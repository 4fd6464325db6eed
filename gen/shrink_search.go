package gen

// PropertyCheck evaluates a materialized value during a shrink search. It
// returns ok=true when the property held for that value. ok=false, or a
// non-nil err (a recovered panic), means the value still reproduces the
// failure — that is the signal the search commits to.
type PropertyCheck func(value any) (ok bool, err error)

// ShrinkSearch repeatedly walks root looking for a smaller value that
// still fails prop, committing to the first such candidate it finds at
// each pass and restarting from the top until a full pass finds nothing
// smaller or maxSteps candidates have been tried. maxSteps <= 0 means
// unbounded.
//
// Search order: at each node, for every child in index order, first
// recurse into the child's own subtree (so a failing value nested several
// combinators deep keeps shrinking through every layer), then fall back
// to the child's own Shrink candidates for that child's cached value as a
// whole. Falling back after recursing is what lets a Collection's
// removeChunks-driven length change (which recursion alone cannot express,
// since recursion only ever replaces values at existing positions) still
// run after per-element shrinking of the current length is exhausted.
func ShrinkSearch(ctx *Context, root *Node, prop PropertyCheck, maxSteps int) (any, int) {
	steps := 0
	for shrinkChildren(ctx, root, root, prop, maxSteps, &steps) {
	}
	return root.value(ctx), steps
}

func shrinkChildren(ctx *Context, root, n *Node, prop PropertyCheck, maxSteps int, steps *int) bool {
	for i := 0; i < len(n.children); i++ {
		child := n.children[i]

		if len(child.children) > 0 {
			if shrinkChildren(ctx, root, child, prop, maxSteps, steps) {
				return true
			}
		}

		if maxSteps > 0 && *steps >= maxSteps {
			return false
		}

		it := child.gen.shrinkAny(child.cached)
		for {
			cand, ok := it.Next()
			if !ok {
				break
			}
			if maxSteps > 0 && *steps >= maxSteps {
				return false
			}

			backup := n.children[i]
			// Re-materializing a candidate can shorten the children of n and
			// its ancestors (a Collection whose length shrank), so keep their
			// children to put back if the candidate is rejected.
			var saved [][]*Node
			for p := n; p != nil; p = p.parent {
				saved = append(saved, append([]*Node(nil), p.children...))
			}
			n.ReplaceChild(i, child.gen, cand)
			*steps++

			v := root.value(ctx)
			passed, err := prop(v)
			if !passed || err != nil {
				return true
			}
			for p, j := n, 0; p != nil; p, j = p.parent, j+1 {
				p.children = saved[j]
			}
			n.RestoreChild(i, backup)
			root.value(ctx)
		}
	}
	return false
}
