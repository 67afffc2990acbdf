// Package reveal toggles per-element visibility as elements cross the
// viewport.
//
// The controller only decides states and offset vectors. Applying them is
// left to the caller, usually through style.Reveal.
package reveal

import (
	"fmt"
	"math"

	"github.com/Zachkp/portfolio/internal/host"
	apperrors "github.com/Zachkp/portfolio/internal/platform/errors"
)

// State is an element's reveal state.
type State int

const (
	Hidden State = iota
	Entering
	Visible
	Leaving
)

var stateNames = [...]string{"hidden", "entering", "visible", "leaving"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Shown reports whether the element should be rendered at full opacity.
func (s State) Shown() bool {
	return s == Visible || s == Entering
}

// Target is an element registered with its entry side.
// Elements are used as map keys and must be comparable.
type Target struct {
	Element host.Element
	Side    Side
}

// Change describes one state transition.
type Change struct {
	Element   host.Element
	From      State
	To        State
	Offset    Offset
	Direction Direction
}

// Options configure an observation.
type Options struct {
	// Threshold is the intersection ratio at which an element counts as
	// visible, in [0,1].
	Threshold float64
	// RootMarginShrink pulls the viewport bottom up by this many px.
	RootMarginShrink float64
	// DirectionAware selects Entering/Leaving transitions with offsets that
	// depend on scroll direction. In this mode Entering and Leaving take the
	// place of Visible and Hidden after the first intersection.
	DirectionAware bool
	// OnChange receives every transition, in delivery order.
	OnChange func(Change)
}

func (o Options) validate() error {
	if math.IsNaN(o.Threshold) || o.Threshold < 0 || o.Threshold > 1 {
		return apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("threshold must be in [0,1], got %v", o.Threshold))
	}
	if math.IsNaN(o.RootMarginShrink) || o.RootMarginShrink < 0 {
		return apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("root margin shrink must be >= 0, got %v", o.RootMarginShrink))
	}
	return nil
}

// Controller registers elements against a host's intersection primitive.
type Controller struct {
	env host.Env
}

// NewController returns a controller bound to env.
func NewController(env host.Env) *Controller {
	return &Controller{env: env}
}

// Observe starts tracking targets. Nil elements are skipped and repeated
// elements keep their first side.
//
// When the user prefers reduced motion, or the host has no intersection
// primitive, every element is made Visible at once and nothing is observed.
func (c *Controller) Observe(targets []Target, opts Options) (*Subscription, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	s := &Subscription{
		env:     c.env,
		opts:    opts,
		entries: make(map[host.Element]*entry, len(targets)),
		lastY:   c.env.ScrollY(),
	}
	for _, t := range targets {
		if !host.Present(t.Element) {
			continue
		}
		if _, dup := s.entries[t.Element]; dup {
			continue
		}
		s.entries[t.Element] = &entry{side: t.Side, state: Hidden, offset: EnterOffset(t.Side, Down)}
		s.order = append(s.order, t.Element)
	}
	if len(s.order) == 0 {
		s.released = true
		return s, nil
	}

	if c.env.PrefersReducedMotion() || c.env.Observe == nil {
		s.showAll()
		s.released = true
		return s, nil
	}

	s.observer = c.env.Observe(s.deliver, host.ObserverOptions{
		Threshold:        opts.Threshold,
		RootMarginBottom: opts.RootMarginShrink,
	})
	if s.observer == nil {
		s.showAll()
		s.released = true
		return s, nil
	}
	for _, el := range s.order {
		s.observer.Observe(el)
	}
	return s, nil
}

type entry struct {
	side   Side
	state  State
	offset Offset
}

// Subscription holds the states of one Observe call.
type Subscription struct {
	env      host.Env
	opts     Options
	entries  map[host.Element]*entry
	order    []host.Element
	observer host.Observer

	lastY     float64
	direction Direction
	released  bool
}

// Active reports whether intersection changes are still applied.
func (s *Subscription) Active() bool {
	return s != nil && !s.released
}

// State returns el's state; unregistered elements report Hidden.
func (s *Subscription) State(el host.Element) State {
	if e := s.lookup(el); e != nil {
		return e.state
	}
	return Hidden
}

// Offset returns the vector el animates from (entering, hidden) or toward
// (leaving). Visible elements sit at rest.
func (s *Subscription) Offset(el host.Element) Offset {
	if e := s.lookup(el); e != nil {
		return e.offset
	}
	return Offset{}
}

// Direction returns the last observed scroll direction.
func (s *Subscription) Direction() Direction {
	if s == nil {
		return Down
	}
	return s.direction
}

// Release detaches the observer. Later intersection reports are ignored.
// It is safe to call more than once.
func (s *Subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	if s.observer != nil {
		s.observer.Disconnect()
		s.observer = nil
	}
}

func (s *Subscription) lookup(el host.Element) *entry {
	if s == nil || !host.Present(el) {
		return nil
	}
	return s.entries[el]
}

func (s *Subscription) showAll() {
	for _, el := range s.order {
		s.set(el, s.entries[el], Visible, Offset{})
	}
}

func (s *Subscription) deliver(batch []host.IntersectionEntry) {
	if s.released {
		return
	}
	y := s.env.ScrollY()
	switch {
	case y > s.lastY:
		s.direction = Down
	case y < s.lastY:
		s.direction = Up
	}
	s.lastY = y

	for _, ie := range batch {
		if s.released {
			return
		}
		e := s.lookup(ie.Target)
		if e == nil {
			continue
		}
		in := ie.IsIntersecting && ie.Ratio >= s.opts.Threshold
		if s.opts.DirectionAware {
			switch {
			case in && (e.state == Hidden || e.state == Leaving):
				s.set(ie.Target, e, Entering, EnterOffset(e.side, s.direction))
			case !in && e.state == Entering:
				s.set(ie.Target, e, Leaving, ExitOffset(e.side, s.direction))
			}
			continue
		}
		switch {
		case in && e.state == Hidden:
			s.set(ie.Target, e, Visible, Offset{})
		case !in && e.state == Visible:
			s.set(ie.Target, e, Hidden, EnterOffset(e.side, Down))
		}
	}
}

func (s *Subscription) set(el host.Element, e *entry, to State, offset Offset) {
	from := e.state
	e.state = to
	e.offset = offset
	if s.opts.OnChange != nil {
		s.opts.OnChange(Change{
			Element:   el,
			From:      from,
			To:        to,
			Offset:    offset,
			Direction: s.direction,
		})
	}
}
