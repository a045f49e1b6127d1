package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlowDimensions(t *testing.T) {
	tex := Glow()
	require.Equal(t, uint32(256), tex.Width)
	require.Equal(t, uint32(256), tex.Height)
	assert.Len(t, tex.Pixels, 256*256*4)
}

func TestGlowCentreOpaqueCornersTransparent(t *testing.T) {
	tex := Glow()

	r, g, b, a := tex.RGBA(128, 128)
	assert.Equal(t, uint8(255), a, "centre alpha")
	assert.Greater(t, r, uint8(240))
	assert.Greater(t, g, uint8(230))
	assert.Greater(t, b, uint8(200))

	for _, c := range [][2]int{{0, 0}, {255, 0}, {0, 255}, {255, 255}} {
		_, _, _, a := tex.RGBA(c[0], c[1])
		assert.Zero(t, a, "corner %v alpha", c)
	}
}

func TestGlowAlphaFallsOffWithDistance(t *testing.T) {
	tex := Glow()
	prev := uint8(255)
	for x := 128; x < 256; x += 8 {
		_, _, _, a := tex.RGBA(x, 128)
		assert.LessOrEqual(t, a, prev, "alpha at x=%d", x)
		prev = a
	}
}

func TestGlowDeterministic(t *testing.T) {
	assert.Equal(t, Glow().Pixels, Glow().Pixels)
}

func TestGlowFallback(t *testing.T) {
	tests := []struct {
		name string
		opts []GlowBuilderOption
	}{
		{"zero size", []GlowBuilderOption{WithGlowSize(0)}},
		{"negative size", []GlowBuilderOption{WithGlowSize(-4)}},
		{"no stops", []GlowBuilderOption{WithGlowStops(nil)}},
		{"unsorted stops", []GlowBuilderOption{WithGlowStops([]GradientStop{{Offset: 0.5, A: 1}, {Offset: 0.2, A: 1}})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, SolidFallback(), Glow(tt.opts...))
		})
	}
}

func TestGlowCustomSize(t *testing.T) {
	tex := Glow(WithGlowSize(16))
	assert.Equal(t, uint32(16), tex.Width)
	_, _, _, a := tex.RGBA(0, 0)
	assert.Zero(t, a)
}
