package floe

// Scope is a temporary context for querying node bounds relative to a
// not-yet-placed composite. Begin registers the composite as the active
// context; RelativeBounds answers queries against it; End (or Close)
// releases it. Scopes are single-threaded and do not nest.
//
// The typical use is connecting two descendants of a composite with an
// overlay before the composite itself has a final position:
//
//	sc, err := floe.Begin(diagram)
//	if err != nil { ... }
//	defer sc.Close()
//	from, err := sc.RelativeBounds(boxA)
//	to, err := sc.RelativeBounds(boxB)
//	// build an arrow from `from` to `to` and sc.Add it
//	final, err := sc.End()
type Scope struct {
	root     *Node
	overlays []*Node
	done     bool
}

// activeScope is the single registered context. Scoped composition is a
// single-threaded accumulation phase; no locking (see package doc).
var activeScope *Scope

// Begin registers root as the active composition scope. It fails with
// ErrNestedScope while another scope is active.
func Begin(root *Node) (*Scope, error) {
	if activeScope != nil {
		return nil, ErrNestedScope
	}
	if root == nil {
		panic("floe: Begin with nil root")
	}
	s := &Scope{root: root}
	activeScope = s
	return s, nil
}

// RelativeBounds returns n's bounds expressed in the scope root's local
// coordinate frame. n may be the root itself or any descendant; a node
// placed in the tree as a copy (Move, Pad, NextTo all copy) still matches
// a query for the original it was derived from. Overlays added with Add
// are searched too. After the composite is placed, relative bounds
// translated by the composite frame's absolute origin agree with Resolve.
func (s *Scope) RelativeBounds(n *Node) (Bounds, error) {
	if s.done || activeScope != s {
		return Bounds{}, ErrNoActiveScope
	}
	if b, ok := findRelative(s.root, n, Point{}); ok {
		return b, nil
	}
	for _, o := range s.overlays {
		if b, ok := findRelative(o, n, Point{}); ok {
			return b, nil
		}
	}
	return Bounds{}, ErrNotInScope
}

// findRelative searches the subtree rooted at cur for target by identity,
// following each node's source chain so copies match their originals.
// frame is the position of cur's parent frame relative to the scope root.
func findRelative(cur, target *Node, frame Point) (Bounds, bool) {
	self := frame.Add(cur.offset)
	for s := cur; s != nil; s = s.source {
		if s == target {
			return cur.bounds.Translate(self), true
		}
	}
	for _, c := range cur.children {
		if b, ok := findRelative(c, target, self); ok {
			return b, true
		}
	}
	return Bounds{}, false
}

// Add registers an overlay to be composed over the scope root when the
// scope ends. Typically an arrow or connector built from RelativeBounds
// queries.
func (s *Scope) Add(overlay *Node) {
	if s.done || activeScope != s {
		panic("floe: Add on a released scope")
	}
	s.overlays = append(s.overlays, overlay)
}

// End finalizes the scope: the context is released and the root composed
// with any overlays is returned. The composite bounds stay the root's
// bounds; overlays draw over it without expanding it.
func (s *Scope) End() (*Node, error) {
	if s.done || activeScope != s {
		return nil, ErrNoActiveScope
	}
	s.release()
	if len(s.overlays) == 0 {
		return s.root, nil
	}
	nodes := append([]*Node{s.root}, s.overlays...)
	return Anchor(0, nodes...), nil
}

// Close releases the scope without finalizing. It is safe to call after
// End and safe to defer; every path out of a scope must release it.
func (s *Scope) Close() {
	if s.done || activeScope != s {
		return
	}
	s.release()
}

func (s *Scope) release() {
	s.done = true
	activeScope = nil
}
