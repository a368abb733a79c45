// Package floe is a compositional scene-graph library for 2D diagrams.
//
// Floe builds pictures by relating drawables to one another instead of
// placing them at absolute coordinates. Every element is an immutable
// [Node]; composition operators return new nodes and never mutate their
// inputs, so subtrees can be shared and reused freely.
//
// # Quick start
//
//	box, _ := floe.NewRectangle(floe.Bounds{W: 500, H: 100}, floe.Outlined(floe.Blue, 3))
//	label, _ := floe.NewText("Hello, world!", floe.FontStyle{Family: "Arial", Size: 28, Color: floe.Black})
//	banner := floe.CenterTo(box, label)
//	caption, _ := floe.NewText("rendered with floe", floe.FontStyle{Family: "Arial", Size: 14, Color: floe.Gray})
//	scene, _ := banner.NextTo(caption, floe.Down.Times(10))
//	raster.SavePNG(floe.SceneOf(scene), "hello.png")
//
// # Composition
//
// The core operators are [Compose] (overlay), [NextTo] (place beside along
// a direction), [CenterTo], [Pad], [Align] (corner to corner), and
// [Arrange] (rows and columns with gaps). Each derives the bounds of its
// result from the bounds of its inputs, so operators nest arbitrarily.
//
// Within a [Scope], [Scope.RelativeBounds] reports where a node ended up inside
// a composition, which is how arrows find their endpoints:
//
//	sc, _ := floe.Begin(diagram)
//	defer sc.Close()
//	from, _ := sc.RelativeBounds(boxA)
//	to, _ := sc.RelativeBounds(boxB)
//	arrow, _ := floe.NewArrow(fromPoint, toPoint, stroke, floe.DefaultArrowStyle())
//	sc.Add(arrow)
//	diagram, _ = sc.End()
//
// # Animation
//
// [Tween] interpolates between two structurally matching scenes, and
// [Animation] sequences tweens with [Animation.Then], [Animation.Freeze],
// and [Animation.Reverse]. Easing curves come from [gween].
//
// # Rendering
//
// [Render] flattens a [Scene] into a [DrawList] of absolute-coordinate
// commands; backends implement [Renderer]. The raster subpackage rasterizes
// to PNG and GIF, and the ebitengine subpackage replays a draw list onto an
// [Ebitengine] image.
//
// [gween]: https://github.com/tanema/gween
// [Ebitengine]: https://ebitengine.org
package floe
