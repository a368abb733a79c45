package floe

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Animation is a scene-valued function of time over a fixed duration,
// measured in seconds. Animations compose by concatenation and can be
// frozen, reversed, and sampled into discrete frames.
type Animation struct {
	duration float64
	frame    func(float64) *Node
}

// NewAnimation wraps a frame function. The function is sampled with times
// clamped to [0, duration], so it never needs its own range checks.
func NewAnimation(duration float64, frame func(t float64) *Node) (Animation, error) {
	if !isFinite(duration) || duration < 0 {
		return Animation{}, geometryErrorf("animation duration %g", duration)
	}
	if frame == nil {
		panic("floe: NewAnimation with nil frame function")
	}
	return Animation{duration: duration, frame: frame}, nil
}

// TweenAnimation interpolates between two compatible scenes over duration,
// optionally shaped by a gween easing function. Compatibility is verified
// once up front rather than at every sampled frame.
func TweenAnimation(from, to *Node, duration float64, fn ease.TweenFunc) (Animation, error) {
	if err := compatible(from, to, "root"); err != nil {
		return Animation{}, err
	}
	if fn == nil {
		fn = ease.Linear
	}
	return NewAnimation(duration, func(t float64) *Node {
		p := 1.0
		if duration > 0 {
			p = t / duration
		}
		eased := float64(fn(float32(clamp01(p)), 0, 1, 1))
		return tweenAt(from, to, eased)
	})
}

// Still shows a single scene unchanged for the given duration.
func Still(scene *Node, duration float64) (Animation, error) {
	if scene == nil {
		panic("floe: Still with nil scene")
	}
	return NewAnimation(duration, func(float64) *Node { return scene })
}

func (a Animation) Duration() float64 { return a.duration }

// FrameAt samples the animation at time t, clamped to [0, Duration].
func (a Animation) FrameAt(t float64) *Node {
	if a.frame == nil {
		panic("floe: FrameAt on zero Animation")
	}
	if t < 0 {
		t = 0
	}
	if t > a.duration {
		t = a.duration
	}
	return a.frame(t)
}

// Then plays a followed by next. The boundary instant belongs to next.
func (a Animation) Then(next Animation) Animation {
	if a.frame == nil || next.frame == nil {
		panic("floe: Then on zero Animation")
	}
	first := a
	return Animation{
		duration: first.duration + next.duration,
		frame: func(t float64) *Node {
			if t < first.duration {
				return first.frame(t)
			}
			return next.FrameAt(t - first.duration)
		},
	}
}

// Freeze extends the animation by holding its final frame for extra seconds.
func (a Animation) Freeze(extra float64) Animation {
	if a.frame == nil {
		panic("floe: Freeze on zero Animation")
	}
	if !isFinite(extra) || extra < 0 {
		extra = 0
	}
	last := a.FrameAt(a.duration)
	hold, _ := Still(last, extra)
	return a.Then(hold)
}

// Reverse plays the animation backwards over the same duration.
func (a Animation) Reverse() Animation {
	if a.frame == nil {
		panic("floe: Reverse on zero Animation")
	}
	forward := a
	return Animation{
		duration: forward.duration,
		frame: func(t float64) *Node {
			return forward.FrameAt(forward.duration - t)
		},
	}
}

// Frames samples the animation at a fixed rate. The final instant is always
// included so the last frame shows the end state.
func (a Animation) Frames(fps int) []*Node {
	if fps <= 0 {
		panic("floe: Frames with non-positive fps")
	}
	n := int(math.Ceil(a.duration*float64(fps))) + 1
	out := make([]*Node, 0, n)
	step := 1.0 / float64(fps)
	for i := 0; i < n-1; i++ {
		out = append(out, a.FrameAt(float64(i)*step))
	}
	out = append(out, a.FrameAt(a.duration))
	return out
}
