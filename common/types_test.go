package common

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTexturePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(2, 1, color.NRGBA{B: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	tex, err := DecodeTexture(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), tex.Width)
	assert.Equal(t, uint32(2), tex.Height)
	assert.Len(t, tex.Pixels, 3*2*4)
	assert.False(t, tex.Empty())

	r, _, _, a := tex.RGBA(0, 0)
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(255), a)
	_, _, b, _ := tex.RGBA(2, 1)
	assert.Equal(t, uint8(255), b)
}

func TestDecodeTextureRejectsGarbage(t *testing.T) {
	_, err := DecodeTexture(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestTextureStagingDataBounds(t *testing.T) {
	tex := TextureStagingData{Pixels: []byte{1, 2, 3, 4}, Width: 1, Height: 1}
	r, g, b, a := tex.RGBA(5, 5)
	assert.Zero(t, r+g+b+a)
	assert.True(t, TextureStagingData{}.Empty())
}
