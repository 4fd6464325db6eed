package gen

// Node is one position in a rose tree: a generator, the value it produced
// (once materialized), and the children that generator's own Pick calls
// recorded while producing that value.
//
// A Node is either:
//   - fresh: not yet materialized, no cached value.
//   - materialized: has a cached value and, if its generator called Pick
//     while producing it, a children slice.
//   - pinned: materialized by ReplaceChild rather than by running its
//     generator. A pinned node's value is authoritative and must never be
//     regenerated; its former children are discarded since they described
//     a decomposition of a value that no longer exists.
//
// Node is type-erased (gen holds an erasedGenerator, not a Generator[T])
// because a single tree mixes positions of different T — a Collection of
// strings has an int node (the length) and string/rune nodes (the
// elements) as siblings.
type Node struct {
	gen    erasedGenerator
	parent *Node

	materialized bool
	pinned       bool
	cached       any

	children    []*Node
	nextIdx     int // resets to 0 at the start of every materialize pass
}

// NewRoot builds the root node of a fresh rose tree for g.
func NewRoot[T any](g Generator[T]) *Node {
	return &Node{gen: erase(g)}
}

// value returns the node's materialized value, generating it first if
// necessary.
func (n *Node) value(ctx *Context) any {
	if n.materialized {
		return n.cached
	}
	return n.materialize(ctx)
}

// materialize runs the node's generator, installing n as ctx's current
// node so any Pick calls the generator makes become n's children. A
// pinned node is never (re)materialized by this path.
func (n *Node) materialize(ctx *Context) any {
	n.nextIdx = 0
	restore := ctx.letCurrentNode(n)
	v := n.gen.generateAny(ctx)
	restore()

	n.cached = v
	n.materialized = true
	// Any children beyond what this pass actually touched belonged to a
	// longer previous decomposition (e.g. a Collection that just shrank
	// shorter); drop them so they don't linger as orphaned stale state.
	n.children = n.children[:n.nextIdx]
	return v
}

// nextChildFor returns the child at the current generation pass's next
// position, creating it (bound to g) if this is the first time this
// position has been visited, or reusing it untouched if a child already
// exists there. Reuse is what makes unrelated siblings "free" during
// shrink re-materialization: a shrink candidate patches exactly one
// position, and every other Pick call downstream of the patched
// generator's re-run walks straight back to its already-materialized
// child instead of drawing fresh randomness.
func (n *Node) nextChildFor(g erasedGenerator) *Node {
	idx := n.nextIdx
	n.nextIdx++

	if idx < len(n.children) {
		return n.children[idx]
	}

	child := &Node{gen: g, parent: n}
	n.children = append(n.children, child)
	return child
}

// ReplaceChild pins n's child at index i to value v, produced by gen
// (normally the same generator the child already carried; SuchThat-style
// combinators may pass a different one, but none of the combinators in
// this package do). It installs a brand new node rather than mutating the
// existing one in place, so the displaced node stays intact for
// RestoreChild to put back untouched. Every ancestor above n is
// invalidated so the next Value call recomputes the whole path.
func (n *Node) ReplaceChild(i int, g erasedGenerator, v any) {
	n.children[i] = &Node{
		gen:          g,
		parent:       n,
		cached:       v,
		materialized: true,
		pinned:       true,
	}
	n.invalidateUp()
}

// RestoreChild undoes a ReplaceChild by swapping the whole child node back
// in — used by the shrink search to back out a candidate that turned out
// not to preserve the failure.
func (n *Node) RestoreChild(i int, prev *Node) {
	n.children[i] = prev
	n.invalidateUp()
}

// invalidateUp clears the materialized flag on n and every ancestor of n,
// so the next call to value() along this path recomputes rather than
// returning a stale cache. Pinned nodes are never invalidated: their value
// is authoritative regardless of what their ancestors do.
func (n *Node) invalidateUp() {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.pinned {
			break
		}
		cur.materialized = false
	}
}

// Value materializes the whole tree rooted at n and returns the result.
func (n *Node) Value(ctx *Context) any {
	return n.value(ctx)
}
