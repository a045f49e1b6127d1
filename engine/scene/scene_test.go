package scene

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/light"
	"github.com/Carmen-Shannon/oxy-planet/engine/model"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader answers LoadAsync synchronously with a fixed result.
type stubLoader struct {
	tex      common.TextureStagingData
	err      error
	requests []string
}

func (l *stubLoader) Load(_ context.Context, locator string) (common.TextureStagingData, error) {
	l.requests = append(l.requests, locator)
	return l.tex, l.err
}

func (l *stubLoader) LoadAsync(locator string, done func(common.TextureStagingData, error)) {
	tex, err := l.Load(context.Background(), locator)
	done(tex, err)
}

func (l *stubLoader) Close() {}

func newTestScene(t *testing.T) Scene {
	t.Helper()
	return NewScene(WithRand(rand.New(rand.NewPCG(1, 2))), WithAspect(2))
}

func TestNewSceneAssembly(t *testing.T) {
	s := newTestScene(t)

	cam := s.Camera()
	assert.Equal(t, [3]float32{0, 0, 5}, cam.Position())
	assert.InDelta(t, 1.309, cam.Fov(), 1e-3)
	assert.Equal(t, float32(2), cam.Aspect())
	assert.Equal(t, float32(0.1), cam.Near())
	assert.Equal(t, float32(1000), cam.Far())

	lights := s.Lights()
	require.Len(t, lights, 3)
	assert.Equal(t, light.LightTypeAmbient, lights[0].Type())
	assert.Equal(t, light.LightTypeDirectional, lights[1].Type())
	assert.Equal(t, light.LightTypePoint, lights[2].Type())
	assert.Same(t, lights[0], s.Ambient())
	assert.Equal(t, float32(20), lights[2].Range())
	assert.Equal(t, uint32(2), s.LightBlock().LightCount)

	assert.Equal(t, 6000, s.StarField().Len())
	assert.Equal(t, 6000, s.Stars().Model().VertexCount())
	assert.Equal(t, model.TopologyPoints, s.Stars().Model().Topology())
}

func TestPlanetStartsWithPlaceholder(t *testing.T) {
	s := newTestScene(t)
	m := s.Planet().Material()

	require.Same(t, s.PlaceholderMaterial(), m)
	assert.Nil(t, m.Texture())
	assert.Equal(t, [3]float32{0.17, 0.42, 0.69}, m.Color())
	assert.Equal(t, [3]float32{0.04, 0.1, 0.2}, m.Emissive())
	assert.Equal(t, float32(25), m.Shininess())
	assert.Equal(t, PipelinePlanet, m.PipelineKey())
	assert.InDelta(t, 1.6, s.Planet().Model().BoundingRadius(), 1e-5)
}

func TestSpriteIsAdditiveGlow(t *testing.T) {
	s := newTestScene(t)
	sp := s.Sprite()

	assert.True(t, sp.Billboard())
	assert.Equal(t, [3]float32{30, 18, -90}, sp.Position())
	assert.Equal(t, [3]float32{25, 25, 25}, sp.Scale())
	m := sp.Material()
	assert.Equal(t, material.BlendAdditive, m.Blend())
	require.NotNil(t, m.Texture())
	assert.Equal(t, uint32(256), m.Texture().Width)
}

func TestObjectsDrawOrder(t *testing.T) {
	s := newTestScene(t)
	objs := s.Objects()
	require.Len(t, objs, 3)
	assert.Same(t, s.Stars(), objs[0])
	assert.Same(t, s.Planet(), objs[1])
	assert.Same(t, s.Sprite(), objs[2])
}

func TestWorldMatrixAppliesSceneRotation(t *testing.T) {
	s := newTestScene(t)
	planet := s.Planet()

	assert.Equal(t, planet.ModelMatrix(), s.WorldMatrix(planet))

	s.SetRotation(0, 0.5)
	pitch, yaw := s.Rotation()
	assert.Zero(t, pitch)
	assert.Equal(t, float32(0.5), yaw)
	assert.NotEqual(t, planet.ModelMatrix(), s.WorldMatrix(planet))
	// the rotation lives on the scene, not on the object
	assert.Equal(t, [3]float32{}, planet.Rotation())
}

func TestRequestPlanetTextureSwapsThroughPost(t *testing.T) {
	s := newTestScene(t)
	s.Planet().AddRotation(0, 0.0045, 0)
	before := s.Planet().Rotation()

	loader := &stubLoader{tex: common.TextureStagingData{Pixels: make([]byte, 4*4*4), Width: 4, Height: 4}}
	var posted []func()
	s.RequestPlanetTexture(loader, " https://example.test/earth.jpg ", func(fn func()) {
		posted = append(posted, fn)
	})

	assert.Equal(t, []string{"https://example.test/earth.jpg"}, loader.requests)
	require.Len(t, posted, 1)
	assert.Same(t, s.PlaceholderMaterial(), s.Planet().Material())

	posted[0]()
	m := s.Planet().Material()
	require.NotNil(t, m.Texture())
	assert.Equal(t, uint32(4), m.Texture().Width)
	assert.Equal(t, s.PlaceholderMaterial().Emissive(), m.Emissive())
	assert.Equal(t, before, s.Planet().Rotation())
}

func TestRequestPlanetTextureFailureKeepsPlaceholder(t *testing.T) {
	s := newTestScene(t)
	loader := &stubLoader{err: errors.New("404")}

	assert.NotPanics(t, func() {
		s.RequestPlanetTexture(loader, "missing.png", nil)
	})
	assert.Same(t, s.PlaceholderMaterial(), s.Planet().Material())
}

func TestRequestPlanetTextureIgnoresEmptyLocator(t *testing.T) {
	s := newTestScene(t)
	loader := &stubLoader{}

	s.RequestPlanetTexture(loader, "   ", nil)
	s.RequestPlanetTexture(nil, "earth.png", nil)
	assert.Empty(t, loader.requests)
}

func TestSetPlanetMaterialIgnoresNil(t *testing.T) {
	s := newTestScene(t)
	s.SetPlanetMaterial(nil)
	assert.NotNil(t, s.Planet().Material())
}
