package reveal

import (
	"fmt"
	"strings"

	apperrors "github.com/Zachkp/portfolio/internal/platform/errors"
)

// Side is the edge an element slides in from.
type Side int

const (
	SideCenter Side = iota
	SideLeft
	SideRight
)

var sideNames = [...]string{"center", "left", "right"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// ParseSide resolves a content-file side name. Empty means center.
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "center":
		return SideCenter, nil
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	}
	return SideCenter, apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("unknown reveal side %q", name))
}

// Direction is the scroll direction at the time of a transition.
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == Up {
		return Down
	}
	return Up
}

// Offset is a translation in px.
type Offset struct {
	X float64
	Y float64
}

// IsZero reports whether o is the rest position.
func (o Offset) IsZero() bool { return o.X == 0 && o.Y == 0 }

// enterOffsets[side][direction] is where an element starts before sliding
// to rest. Scrolling down brings content up from below.
var enterOffsets = [3][2]Offset{
	SideCenter: {Down: {X: 0, Y: 40}, Up: {X: 0, Y: -40}},
	SideLeft:   {Down: {X: -60, Y: 20}, Up: {X: -60, Y: -20}},
	SideRight:  {Down: {X: 60, Y: 20}, Up: {X: 60, Y: -20}},
}

// EnterOffset returns the start offset for an element entering from side
// while scrolling in dir.
func EnterOffset(side Side, dir Direction) Offset {
	if side < 0 || int(side) >= len(enterOffsets) {
		side = SideCenter
	}
	if dir != Up {
		dir = Down
	}
	return enterOffsets[side][dir]
}

// ExitOffset returns the offset an element leaves toward. It mirrors
// EnterOffset: content scrolled past while moving down leaves upward.
func ExitOffset(side Side, dir Direction) Offset {
	return EnterOffset(side, dir.Opposite())
}
