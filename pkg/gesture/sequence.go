package gesture

import (
	"time"
)

// PointerOp is a single W3C pointer operation kind.
type PointerOp string

// Pointer operations.
const (
	OpMove  PointerOp = "pointerMove"
	OpDown  PointerOp = "pointerDown"
	OpPause PointerOp = "pause"
	OpUp    PointerOp = "pointerUp"
)

// PointerAction is one step of a pointer sequence. X/Y apply to moves,
// Duration to moves and pauses.
type PointerAction struct {
	Op       PointerOp
	X        int
	Y        int
	Duration time.Duration
}

// Sequence is an immutable ordered list of pointer operations,
// submitted to the driver as one unit. Modelling gestures as values
// decouples planning and testing from the transport.
type Sequence []PointerAction

// SwipeSequence builds a press-drag-release from start to end. The
// pause before release keeps the OS from reading the drag as a flick.
func SwipeSequence(start, end Point, pause time.Duration) Sequence {
	return Sequence{
		{Op: OpMove, X: start.X, Y: start.Y},
		{Op: OpDown},
		{Op: OpMove, X: end.X, Y: end.Y},
		{Op: OpPause, Duration: pause},
		{Op: OpUp},
	}
}

// TapSequence builds one or more taps at a point, each held for hold.
func TapSequence(p Point, hold time.Duration, taps int) Sequence {
	seq := make(Sequence, 0, taps*4)
	for i := 0; i < taps; i++ {
		seq = append(seq,
			PointerAction{Op: OpMove, X: p.X, Y: p.Y},
			PointerAction{Op: OpDown},
			PointerAction{Op: OpPause, Duration: hold},
			PointerAction{Op: OpUp},
		)
	}
	return seq
}

// DragSequence builds a press-hold-drag-hold-release between two
// points. The holds give the OS time to enter drag mode and to settle
// before the drop.
func DragSequence(from, to Point, hold time.Duration) Sequence {
	return Sequence{
		{Op: OpMove, X: from.X, Y: from.Y},
		{Op: OpDown},
		{Op: OpPause, Duration: hold},
		{Op: OpMove, X: to.X, Y: to.Y},
		{Op: OpPause, Duration: hold},
		{Op: OpUp},
	}
}
