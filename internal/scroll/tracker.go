package scroll

import "github.com/Zachkp/portfolio/internal/host"

// Tracker recomputes element progress once per frame, or on every scroll
// event when the host has no frame scheduler.
type Tracker struct {
	env host.Env
}

// NewTracker returns a tracker bound to env.
func NewTracker(env host.Env) *Tracker {
	return &Tracker{env: env}
}

// Track calls fn with el's progress whenever it changes, starting with the
// first computed value. A nil element, or a host without a viewport, yields
// an inactive subscription.
func (t *Tracker) Track(el host.Element, fn func(progress float64)) *Subscription {
	s := &Subscription{}
	if !host.Present(el) || fn == nil || t.env.Viewport == nil {
		s.released = true
		return s
	}
	s.el = el
	s.fn = fn
	s.viewport = t.env.Viewport

	switch {
	case t.env.Frames != nil:
		s.frames = t.env.Frames
		s.schedule()
	case t.env.Scroll != nil:
		s.update()
		s.removeScroll = t.env.Scroll.OnScroll(s.update)
	default:
		s.update()
		s.released = true
	}
	return s
}

// Subscription is one tracked element.
type Subscription struct {
	el       host.Element
	fn       func(float64)
	viewport host.Viewport

	frames       host.FrameScheduler
	frame        host.FrameHandle
	scheduled    bool
	removeScroll func()

	last     float64
	emitted  bool
	released bool
}

// Active reports whether updates can still be delivered.
func (s *Subscription) Active() bool {
	return s != nil && !s.released
}

// Release stops all updates. It is safe to call more than once.
func (s *Subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	if s.scheduled && s.frames != nil {
		s.frames.CancelFrame(s.frame)
		s.scheduled = false
	}
	if s.removeScroll != nil {
		s.removeScroll()
		s.removeScroll = nil
	}
}

func (s *Subscription) schedule() {
	s.frame = s.frames.RequestFrame(s.onFrame)
	s.scheduled = true
}

func (s *Subscription) onFrame() {
	s.scheduled = false
	if s.released {
		return
	}
	s.update()
	// fn may have released the subscription.
	if !s.released {
		s.schedule()
	}
}

func (s *Subscription) update() {
	if s.released {
		return
	}
	r := s.el.Bounds()
	p := ComputeProgress(r.Top, r.Height, s.viewport.Height())
	if s.emitted && p == s.last {
		return
	}
	s.last = p
	s.emitted = true
	s.fn(p)
}
