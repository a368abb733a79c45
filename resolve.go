package floe

// Placed is one node of a resolved tree with its absolute geometry.
type Placed struct {
	Node *Node
	// Frame is the absolute position of the node's local origin.
	Frame Point
	// Bounds is the node's absolute bounds.
	Bounds Bounds
}

// Resolved is a read-only map from the nodes of a tree to their absolute
// bounds. Resolution never mutates the tree; it is a derived view valid for
// as long as the caller keeps it.
type Resolved struct {
	origin Point
	abs    map[*Node]Bounds
	placed []Placed
}

// Resolve computes absolute bounds for every node reachable from root, with
// root's parent frame anchored at origin. A single top-down traversal adds
// each node's offset to its parent's frame; trees are acyclic by
// construction, so the walk always terminates.
func Resolve(root *Node, origin Point) *Resolved {
	r := &Resolved{
		origin: origin,
		abs:    make(map[*Node]Bounds),
	}
	r.walk(root, origin)
	return r
}

func (r *Resolved) walk(n *Node, frame Point) {
	self := frame.Add(n.offset)
	abs := n.bounds.Translate(self)
	// A node shared by reference can appear at several positions; the map
	// keeps the first, matching scope query order. The source chain is
	// recorded too so a query for a node's pre-copy original resolves.
	for s := n; s != nil; s = s.source {
		if _, seen := r.abs[s]; !seen {
			r.abs[s] = abs
		}
	}
	r.placed = append(r.placed, Placed{Node: n, Frame: self, Bounds: abs})
	for _, c := range n.children {
		r.walk(c, self)
	}
}

// Origin returns the origin the tree was resolved against.
func (r *Resolved) Origin() Point { return r.origin }

// Bounds returns the absolute bounds of n. The second result is false when
// n is not part of the resolved tree. A node the tree holds as a copy
// (Move, Pad, NextTo all copy) resolves under the original too. For a node
// shared at several positions, the first (pre-order) occurrence wins.
func (r *Resolved) Bounds(n *Node) (Bounds, bool) {
	b, ok := r.abs[n]
	return b, ok
}

// Nodes returns every node in paint order (pre-order traversal) with its
// absolute geometry. The returned slice MUST NOT be mutated by the caller.
func (r *Resolved) Nodes() []Placed { return r.placed }
