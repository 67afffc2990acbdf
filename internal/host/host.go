// Package host declares the rendering-environment primitives the motion
// packages run against: frame scheduling, scroll position, viewport
// intersection and the user's motion preference.
//
// A browser binding, the server's pre-paint renderer and the test fakes in
// hosttest all implement these.
package host

import "reflect"

// Rect is the part of an element's bounding box the motion code reads.
// Top is relative to the top of the viewport.
type Rect struct {
	Top    float64
	Height float64
}

// Element is an observable node.
type Element interface {
	Bounds() Rect
}

// Present reports whether el refers to an actual node. A nil interface and
// an interface holding a nil pointer are both absent.
func Present(el Element) bool {
	if el == nil {
		return false
	}
	v := reflect.ValueOf(el)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return !v.IsNil()
	}
	return true
}

// Viewport reports the visible height.
type Viewport interface {
	Height() float64
}

// FrameHandle identifies a scheduled frame callback.
type FrameHandle uint64

// FrameScheduler runs one callback before the next rendered frame.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

// ScrollSource reports the document scroll offset and scroll events.
type ScrollSource interface {
	ScrollY() float64
	// OnScroll registers fn and returns the function that removes it.
	OnScroll(fn func()) (remove func())
}

// IntersectionEntry is one element's intersection change.
type IntersectionEntry struct {
	Target         Element
	Ratio          float64
	IsIntersecting bool
}

// ObserverOptions configure an intersection observer.
type ObserverOptions struct {
	Threshold float64
	// RootMarginBottom shrinks the viewport from the bottom, in px.
	RootMarginBottom float64
}

// Observer watches elements until disconnected.
type Observer interface {
	Observe(el Element)
	Disconnect()
}

// ObserverFactory creates an observer delivering batches to callback. A nil
// factory means the environment has no intersection primitive.
type ObserverFactory func(callback func([]IntersectionEntry), opts ObserverOptions) Observer

// MotionPreference reports the user's reduced-motion setting.
type MotionPreference interface {
	PrefersReducedMotion() bool
}

// Env bundles the primitives available in one rendering environment. Any
// field may be nil.
type Env struct {
	Frames   FrameScheduler
	Scroll   ScrollSource
	Viewport Viewport
	Observe  ObserverFactory
	Motion   MotionPreference
}

// PrefersReducedMotion reads the motion preference, false when unknown.
func (e Env) PrefersReducedMotion() bool {
	return e.Motion != nil && e.Motion.PrefersReducedMotion()
}

// ScrollY reads the scroll offset, 0 when unknown.
func (e Env) ScrollY() float64 {
	if e.Scroll == nil {
		return 0
	}
	return e.Scroll.ScrollY()
}
