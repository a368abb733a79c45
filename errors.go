package floe

import (
	"errors"
	"fmt"
)

// Scope misuse errors. The relative-bounds context is strictly single
// threaded and non-reentrant.
var (
	// ErrNestedScope is returned by Begin while another scope is active.
	ErrNestedScope = errors.New("floe: a composition scope is already active")

	// ErrNoActiveScope is returned by scope queries after the scope has been
	// finalized or released.
	ErrNoActiveScope = errors.New("floe: no active composition scope")

	// ErrNotInScope is returned when a relative-bounds query names a node
	// that is not part of the active scope's subtree.
	ErrNotInScope = errors.New("floe: node is not part of the active composition scope")
)

// GeometryError reports invalid geometry: negative sizes or non-finite
// coordinates. All geometry is validated at construction time, never
// deferred to render time.
type GeometryError struct {
	Msg string
}

func (e *GeometryError) Error() string {
	return "floe: invalid geometry: " + e.Msg
}

func geometryErrorf(format string, args ...any) *GeometryError {
	return &GeometryError{Msg: fmt.Sprintf(format, args...)}
}

// CornerError reports an unrecognized corner selector.
type CornerError struct {
	Corner Corner
}

func (e *CornerError) Error() string {
	return fmt.Sprintf("floe: unknown corner %s", e.Corner)
}

// DirectionError reports an unrecognized or unsupported direction.
type DirectionError struct {
	Name string
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("floe: unknown direction %q", e.Name)
}

// IncompatibleSceneError reports a structural mismatch between two trees
// handed to Tween. Path identifies the offending node from the root, e.g.
// "root.children[1]".
type IncompatibleSceneError struct {
	Path   string
	Reason string
}

func (e *IncompatibleSceneError) Error() string {
	return fmt.Sprintf("floe: incompatible scenes at %s: %s", e.Path, e.Reason)
}
