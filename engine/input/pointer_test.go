package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerTrackerStartsNeutral(t *testing.T) {
	x, y := NewPointerTracker().Offset()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestPointerTrackerNormalises(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		w, h         int
		wantX, wantY float32
	}{
		{"centre", 400, 300, 800, 600, 0, 0},
		{"top left", 0, 0, 800, 600, -0.5, -0.5},
		{"bottom right", 800, 600, 800, 600, 0.5, 0.5},
		{"quarter", 200, 450, 800, 600, -0.25, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPointerTracker()
			p.Move(tt.x, tt.y, tt.w, tt.h)
			x, y := p.Offset()
			assert.InDelta(t, tt.wantX, x, 1e-6)
			assert.InDelta(t, tt.wantY, y, 1e-6)
		})
	}
}

func TestPointerTrackerIgnoresDegenerateViewport(t *testing.T) {
	p := NewPointerTracker()
	p.Move(100, 100, 400, 400)
	p.Move(10, 10, 0, 0)

	x, y := p.Offset()
	assert.InDelta(t, -0.25, x, 1e-6)
	assert.InDelta(t, -0.25, y, 1e-6)
}

func TestPointerTrackerReset(t *testing.T) {
	p := NewPointerTracker()
	p.Move(0, 0, 10, 10)
	p.Reset()

	x, y := p.Offset()
	assert.Zero(t, x)
	assert.Zero(t, y)
}
