// package common contains plain data types and helpers shared across the engine packages.
package common

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
type TextureStagingData struct {
	// Pixels is tightly packed RGBA8 data, 4 bytes per pixel, row-major from the top-left texel.
	Pixels []byte
	// Width is the texture width in pixels.
	Width uint32
	// Height is the texture height in pixels.
	Height uint32
}

// Empty reports whether the staging data holds no pixels.
func (t TextureStagingData) Empty() bool {
	return t.Width == 0 || t.Height == 0 || len(t.Pixels) == 0
}

// RGBA returns the four channels of the texel at (x, y).
// Out-of-range coordinates return zeros.
//
// Parameters:
//   - x, y: texel coordinates
//
// Returns:
//   - r, g, b, a: channel values
func (t TextureStagingData) RGBA(x, y int) (r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= int(t.Width) || y >= int(t.Height) {
		return 0, 0, 0, 0
	}
	i := (y*int(t.Width) + x) * 4
	if i+3 >= len(t.Pixels) {
		return 0, 0, 0, 0
	}
	return t.Pixels[i], t.Pixels[i+1], t.Pixels[i+2], t.Pixels[i+3]
}

// SamplerStagingData holds the configuration for a sampler pending GPU creation.
// Zero fields fall back to linear filtering with the given address modes defaulting to repeat.
type SamplerStagingData struct {
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	MagFilter, MinFilter                     wgpu.FilterMode
	MipmapFilter                             wgpu.MipmapFilterMode
}

// DecodeTexture decodes a PNG or JPEG stream into RGBA staging data.
//
// Parameters:
//   - r: the encoded image stream
//
// Returns:
//   - TextureStagingData: the decoded pixels
//   - error: error if the stream is not a supported image
func DecodeTexture(r io.Reader) (TextureStagingData, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return TextureStagingData{}, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return TextureStagingData{}, fmt.Errorf("decoded %s image has no pixels", format)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return TextureStagingData{
		Pixels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}, nil
}
