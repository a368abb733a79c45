package floe

import "testing"

func TestResolveAccumulatesOffsets(t *testing.T) {
	leaf := mustRect(t, Bounds{W: 10, H: 10}, Filled(Red))
	inner := Compose(leaf.Move(5, 5))
	outer := Compose(inner.Move(100, 100))

	r := Resolve(outer, Pt(1000, 0))
	got, ok := r.Bounds(outer.ChildAt(0).ChildAt(0))
	if !ok {
		t.Fatal("leaf not found")
	}
	assertBounds(t, "leaf", got, Bounds{X: 1105, Y: 105, W: 10, H: 10})
	assertPoint(t, "origin", r.Origin(), Pt(1000, 0))
}

func TestResolvePaintOrder(t *testing.T) {
	a := mustRect(t, Bounds{W: 1, H: 1}, Filled(Red))
	b := mustRect(t, Bounds{W: 1, H: 1}, Filled(Blue))
	g := Compose(a, Compose(b))

	placed := Resolve(g, Pt(0, 0)).Nodes()
	if len(placed) != 4 {
		t.Fatalf("placed %d nodes, want 4", len(placed))
	}
	// Pre-order: root, a, inner group, b.
	if placed[0].Node != g || placed[1].Node != a || placed[3].Node != b {
		t.Error("traversal should be pre-order")
	}
}

func TestResolveFindsOriginalsOfCopies(t *testing.T) {
	leaf := mustRect(t, Bounds{W: 10, H: 10}, Filled(Red))
	g := Compose(leaf.Move(5, 5))

	// Move placed a copy; a lookup keyed on the pre-move node still
	// answers with the copy's position.
	got, ok := Resolve(g, Pt(100, 0)).Bounds(leaf)
	if !ok {
		t.Fatal("moved leaf not found under its original")
	}
	assertBounds(t, "leaf", got, Bounds{X: 105, Y: 5, W: 10, H: 10})
}

func TestResolveSharedNodeKeepsFirstOccurrence(t *testing.T) {
	shared := mustRect(t, Bounds{W: 10, H: 10}, Filled(Red))
	g := Compose(Compose(shared), Compose(shared).Move(50, 0))

	r := Resolve(g, Pt(0, 0))
	got, ok := r.Bounds(shared)
	if !ok {
		t.Fatal("shared node not found")
	}
	assertBounds(t, "first occurrence", got, Bounds{W: 10, H: 10})

	// Both occurrences still appear in paint order.
	if len(r.Nodes()) != 5 {
		t.Errorf("placed %d nodes, want 5", len(r.Nodes()))
	}
}

func TestResolveUnknownNode(t *testing.T) {
	g := Compose(mustRect(t, Bounds{W: 1, H: 1}, Filled(Red)))
	outsider := mustRect(t, Bounds{W: 1, H: 1}, Filled(Blue))
	if _, ok := Resolve(g, Pt(0, 0)).Bounds(outsider); ok {
		t.Error("outsider should not resolve")
	}
}
