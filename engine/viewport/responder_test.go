package viewport

import (
	"math/rand/v2"
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sceneTarget adapts a scene and records surface resizes.
type sceneTarget struct {
	scene.Scene
	resizes [][2]int
}

func (s *sceneTarget) Resize(width, height int) {
	s.resizes = append(s.resizes, [2]int{width, height})
}

func newTarget(t *testing.T) *sceneTarget {
	t.Helper()
	return &sceneTarget{Scene: scene.NewScene(
		scene.WithRand(rand.New(rand.NewPCG(5, 6))),
		scene.WithStars(10, 200),
	)}
}

func TestResizeAppliesSurfaceAndProjection(t *testing.T) {
	target := newTarget(t)
	r := NewResponder(target)

	r.Resize(1600, 800)

	require.Equal(t, [][2]int{{1600, 800}}, target.resizes)
	assert.Equal(t, float32(2), target.Camera().Aspect())
	assert.InDelta(t, target.Camera().ProjectionMatrix()[5]/2, target.Camera().ProjectionMatrix()[0], 1e-6)
	w, h := r.Size()
	assert.Equal(t, 1600, w)
	assert.Equal(t, 800, h)
}

func TestBreakpointRoundTrip(t *testing.T) {
	target := newTarget(t)
	r := NewResponder(target)

	r.Resize(1024, 768)
	assert.Equal(t, FullProfile, r.Profile())
	assert.Equal(t, [3]float32{1, 1, 1}, target.Planet().Scale())
	assert.Equal(t, [3]float32{25, 25, 25}, target.Sprite().Scale())

	r.Resize(500, 768)
	assert.Equal(t, CompactProfile, r.Profile())
	assert.Equal(t, [3]float32{0.8, 0.8, 0.8}, target.Planet().Scale())
	assert.Equal(t, [3]float32{15, 15, 15}, target.Sprite().Scale())

	r.Resize(1024, 768)
	assert.Equal(t, FullProfile, r.Profile())
	assert.Equal(t, [3]float32{1, 1, 1}, target.Planet().Scale())
	assert.Equal(t, [3]float32{25, 25, 25}, target.Sprite().Scale())
}

func TestBreakpointBoundary(t *testing.T) {
	target := newTarget(t)
	r := NewResponder(target)

	r.Resize(767, 600)
	assert.Equal(t, "compact", r.Profile().Name)
	r.Resize(768, 600)
	assert.Equal(t, "full", r.Profile().Name)
}

func TestResizeIgnoresEmptyViewport(t *testing.T) {
	target := newTarget(t)
	r := NewResponder(target)
	r.Resize(1024, 768)

	r.Resize(0, 0)
	r.Resize(-5, 100)

	assert.Len(t, target.resizes, 1)
	assert.Equal(t, float32(1024.0/768.0), target.Camera().Aspect())
	assert.Equal(t, FullProfile, r.Profile())
}

func TestResponderOptions(t *testing.T) {
	target := newTarget(t)
	tiny := Profile{Name: "tiny", PlanetScale: 0.5, SpriteScale: 5}
	r := NewResponder(target, WithBreakpoint(1200), WithCompactProfile(tiny), WithBreakpoint(-1))

	r.Resize(1024, 768)
	assert.Equal(t, tiny, r.Profile())
	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, target.Planet().Scale())
}
