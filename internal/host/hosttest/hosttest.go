// Package hosttest provides scripted host primitives for tests.
package hosttest

import (
	"sort"

	"github.com/Zachkp/portfolio/internal/host"
)

// Frames is a manual frame scheduler. Tick runs the callbacks requested
// before it was called.
type Frames struct {
	next    host.FrameHandle
	pending map[host.FrameHandle]func()

	Requested int
	Canceled  int
}

// NewFrames returns an empty scheduler.
func NewFrames() *Frames {
	return &Frames{pending: make(map[host.FrameHandle]func())}
}

// RequestFrame implements host.FrameScheduler.
func (f *Frames) RequestFrame(fn func()) host.FrameHandle {
	f.next++
	f.pending[f.next] = fn
	f.Requested++
	return f.next
}

// CancelFrame implements host.FrameScheduler.
func (f *Frames) CancelFrame(h host.FrameHandle) {
	if _, ok := f.pending[h]; ok {
		delete(f.pending, h)
		f.Canceled++
	}
}

// Pending reports how many callbacks wait for the next frame.
func (f *Frames) Pending() int { return len(f.pending) }

// Tick runs one frame.
func (f *Frames) Tick() {
	handles := make([]host.FrameHandle, 0, len(f.pending))
	for h := range f.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	due := f.pending
	f.pending = make(map[host.FrameHandle]func())
	for _, h := range handles {
		due[h]()
	}
}

// Scroll is a scripted scroll source.
type Scroll struct {
	Y         float64
	listeners map[int]func()
	nextID    int
}

// NewScroll returns a scroll source at offset 0.
func NewScroll() *Scroll {
	return &Scroll{listeners: make(map[int]func())}
}

// ScrollY implements host.ScrollSource.
func (s *Scroll) ScrollY() float64 { return s.Y }

// OnScroll implements host.ScrollSource.
func (s *Scroll) OnScroll(fn func()) func() {
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Listeners reports the registered listener count.
func (s *Scroll) Listeners() int { return len(s.listeners) }

// To moves the offset and dispatches a scroll event.
func (s *Scroll) To(y float64) {
	s.Y = y
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := s.listeners[id]; ok {
			fn()
		}
	}
}

// Observers records every observer a factory created.
type Observers struct {
	Created []*Observer
}

// Factory returns a host.ObserverFactory backed by o.
func (o *Observers) Factory() host.ObserverFactory {
	return func(callback func([]host.IntersectionEntry), opts host.ObserverOptions) host.Observer {
		obs := &Observer{callback: callback, Options: opts}
		o.Created = append(o.Created, obs)
		return obs
	}
}

// Last returns the most recent observer or nil.
func (o *Observers) Last() *Observer {
	if len(o.Created) == 0 {
		return nil
	}
	return o.Created[len(o.Created)-1]
}

// Observer delivers scripted intersection batches. Like a real observer it
// keeps calling back after disconnect only if the caller ignores Disconnect,
// which lets tests check that released subscriptions stay silent.
type Observer struct {
	callback func([]host.IntersectionEntry)
	Options  host.ObserverOptions
	Targets  []host.Element

	Disconnected bool
}

// Observe implements host.Observer.
func (o *Observer) Observe(el host.Element) { o.Targets = append(o.Targets, el) }

// Disconnect implements host.Observer.
func (o *Observer) Disconnect() { o.Disconnected = true }

// Fire delivers entries regardless of the disconnect state.
func (o *Observer) Fire(entries ...host.IntersectionEntry) { o.callback(entries) }

// Enter builds an intersecting entry.
func Enter(el host.Element, ratio float64) host.IntersectionEntry {
	return host.IntersectionEntry{Target: el, Ratio: ratio, IsIntersecting: ratio > 0}
}

// Exit builds a non-intersecting entry.
func Exit(el host.Element) host.IntersectionEntry {
	return host.IntersectionEntry{Target: el}
}

// Element is a movable fake element.
type Element struct {
	Name string
	Rect host.Rect
}

// Bounds implements host.Element.
func (e *Element) Bounds() host.Rect { return e.Rect }
