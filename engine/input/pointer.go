package input

// PointerTracker stores the most recent pointer position as an offset from the viewport
// centre, normalised so each axis spans roughly [-0.5, 0.5].
//
// The tracker does no smoothing; consumers damp the value themselves. It is owned by the
// engine's loop context and is not safe for concurrent use.
type PointerTracker interface {
	// Move records a pointer position in window pixels.
	// Calls with a non-positive viewport dimension are ignored.
	//
	// Parameters:
	//   - x, y: cursor position in pixels from the top-left corner
	//   - width, height: current viewport size in pixels
	Move(x, y float64, width, height int)

	// Offset returns the last normalised offset, (0, 0) until the first Move.
	//
	// Returns:
	//   - x, y: offset from the viewport centre
	Offset() (x, y float32)

	// Reset returns the offset to neutral.
	Reset()
}

type pointerTracker struct {
	x, y float32
}

var _ PointerTracker = &pointerTracker{}

// NewPointerTracker creates a tracker at the neutral offset.
func NewPointerTracker() PointerTracker {
	return &pointerTracker{}
}

func (p *pointerTracker) Move(x, y float64, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.x = float32(x/float64(width) - 0.5)
	p.y = float32(y/float64(height) - 0.5)
}

func (p *pointerTracker) Offset() (x, y float32) {
	return p.x, p.y
}

func (p *pointerTracker) Reset() {
	p.x, p.y = 0, 0
}
