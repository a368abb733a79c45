package floe

// Scene is a root node anchored on a canvas: the origin is the canvas
// position of the root's parent frame, and Size is the canvas extent.
type Scene struct {
	Root   *Node
	Origin Point
	Size   Point
}

// NewScene creates a scene and validates its geometry.
func NewScene(root *Node, origin, size Point) (Scene, error) {
	if root == nil {
		panic("floe: NewScene with nil root")
	}
	if !origin.IsFinite() {
		return Scene{}, geometryErrorf("scene origin %v", origin)
	}
	if !size.IsFinite() || size.X < 0 || size.Y < 0 {
		return Scene{}, geometryErrorf("scene size %v", size)
	}
	return Scene{Root: root, Origin: origin, Size: size}, nil
}

// SceneOf wraps a node in a scene sized to its bounds, shifting the origin
// so the node's top-left lands on the canvas top-left.
func SceneOf(root *Node) Scene {
	b := root.Bounds()
	return Scene{
		Root:   root,
		Origin: Pt(-b.X, -b.Y),
		Size:   b.Size(),
	}
}
