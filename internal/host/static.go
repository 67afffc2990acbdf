package host

// ReducedMotion is a fixed motion preference.
type ReducedMotion bool

// PrefersReducedMotion implements MotionPreference.
func (r ReducedMotion) PrefersReducedMotion() bool { return bool(r) }

// FixedViewport is a viewport of constant height.
type FixedViewport float64

// Height implements Viewport.
func (v FixedViewport) Height() float64 { return float64(v) }

// Block is an element with a fixed layout box.
type Block struct {
	Key  string
	Rect Rect
}

// Bounds implements Element.
func (b *Block) Bounds() Rect { return b.Rect }

// Inert returns an observer factory whose observers accept elements but
// never report an intersection. It models the document before first paint.
func Inert() ObserverFactory {
	return func(func([]IntersectionEntry), ObserverOptions) Observer {
		return inertObserver{}
	}
}

type inertObserver struct{}

func (inertObserver) Observe(Element) {}
func (inertObserver) Disconnect()     {}
