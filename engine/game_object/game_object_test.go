package game_object

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/engine/model"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/material"
	"github.com/stretchr/testify/assert"
)

func TestNewGameObjectDefaults(t *testing.T) {
	g := NewGameObject()
	assert.True(t, g.Enabled())
	assert.False(t, g.Billboard())
	assert.Equal(t, [3]float32{1, 1, 1}, g.Scale())
	assert.Nil(t, g.Model())
	assert.Nil(t, g.Material())
	assert.NotZero(t, g.ID())
	assert.NotEqual(t, g.ID(), NewGameObject().ID())
}

func TestBuilderOptions(t *testing.T) {
	m := model.NewQuad("q")
	mat := material.NewMaterial(material.WithName("glow"))
	g := NewGameObject(
		WithName("sprite"),
		WithModel(m),
		WithMaterial(mat),
		WithBillboard(true),
		WithPosition(30, 18, -90),
		WithScale(25, 25, 1),
		WithEnabled(false),
	)

	assert.Equal(t, "sprite", g.Name())
	assert.Same(t, m, g.Model())
	assert.Same(t, mat, g.Material())
	assert.True(t, g.Billboard())
	assert.False(t, g.Enabled())
	assert.Equal(t, [3]float32{30, 18, -90}, g.Position())
	assert.Equal(t, uint32(1), g.Uniform().Billboard)
}

func TestModelMatrixCarriesTransform(t *testing.T) {
	g := NewGameObject(WithPosition(1, 2, 3))
	g.SetUniformScale(2)
	m := g.ModelMatrix()
	assert.Equal(t, float32(2), m[0])
	assert.Equal(t, float32(2), m[5])
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{m[12], m[13], m[14]})
}

func TestAddRotationAccumulates(t *testing.T) {
	g := NewGameObject(WithRotation(0.1, 0, 0))
	g.AddRotation(0, 0.0015, 0)
	g.AddRotation(0, 0.0015, 0)
	r := g.Rotation()
	assert.InDelta(t, 0.1, r[0], 1e-7)
	assert.InDelta(t, 0.003, r[1], 1e-7)
}

func TestSetMaterialIsAtomicUnderConcurrency(t *testing.T) {
	a := material.NewMaterial(material.WithName("a"))
	b := material.NewMaterial(material.WithName("b"))
	g := NewGameObject(WithMaterial(a))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 1000 {
			g.SetMaterial(b)
			g.SetMaterial(a)
		}
	}()
	go func() {
		defer wg.Done()
		for range 1000 {
			got := g.Material()
			if !assert.NotNil(t, got) {
				return
			}
			assert.Contains(t, []string{"a", "b"}, got.Name())
		}
	}()
	wg.Wait()
}

func TestUniformMarshal(t *testing.T) {
	u := NewGameObject().Uniform()
	assert.Len(t, u.Marshal(), u.Size())
}
