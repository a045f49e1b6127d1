package texture

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 10, G: 120, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planet.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, w, h), 0o644))
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writePNG(t, 4, 2)
	l := NewLoader()

	tex, err := l.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), tex.Width)
	assert.Equal(t, uint32(2), tex.Height)

	r, g, b, a := tex.RGBA(1, 1)
	assert.Equal(t, []uint8{10, 120, 200, 255}, []uint8{r, g, b, a})
}

func TestLoadFromFileURL(t *testing.T) {
	path := writePNG(t, 2, 2)
	l := NewLoader()

	tex, err := l.Load(context.Background(), "file://"+filepath.ToSlash(path))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), tex.Width)
}

func TestLoadFromHTTP(t *testing.T) {
	payload := encodePNG(t, 8, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/planet.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	l := NewLoader(WithHTTPClient(server.Client()))

	tex, err := l.Load(context.Background(), server.URL+"/planet.png")
	require.NoError(t, err)
	assert.Equal(t, uint32(8), tex.Width)

	_, err = l.Load(context.Background(), server.URL+"/missing.png")
	assert.ErrorContains(t, err, "status 404")
}

func TestLoadErrors(t *testing.T) {
	l := NewLoader()

	_, err := l.Load(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyLocator)

	_, err = l.Load(context.Background(), "ftp://example.com/planet.png")
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = l.Load(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))
	_, err = l.Load(context.Background(), bad)
	assert.Error(t, err)
}

func TestLoadAsyncDeliversOnce(t *testing.T) {
	path := writePNG(t, 3, 3)
	l := NewLoader(WithWorkers(1), WithTimeout(5*time.Second))

	type result struct {
		tex common.TextureStagingData
		err error
	}
	results := make(chan result, 2)
	l.LoadAsync(path, func(tex common.TextureStagingData, err error) {
		results <- result{tex, err}
	})

	select {
	case r := <-results:
		require.NoError(t, r.err)
		assert.Equal(t, uint32(3), r.tex.Width)
	case <-time.After(5 * time.Second):
		t.Fatal("async load never completed")
	}

	select {
	case <-results:
		t.Fatal("completion delivered twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLoadAsyncReportsFailure(t *testing.T) {
	l := NewLoader()
	errs := make(chan error, 1)
	l.LoadAsync(filepath.Join(t.TempDir(), "missing.png"), func(_ common.TextureStagingData, err error) {
		errs <- err
	})

	select {
	case err := <-errs:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("async load never completed")
	}
}

func TestCloseRejectsLaterLoads(t *testing.T) {
	path := writePNG(t, 2, 2)
	l := NewLoader(WithWorkers(1))

	l.Close()
	l.Close()

	var got error
	called := 0
	l.LoadAsync(path, func(_ common.TextureStagingData, err error) {
		called++
		got = err
	})

	assert.Equal(t, 1, called)
	assert.ErrorIs(t, got, ErrClosed)

	// synchronous loads do not use the pool
	tex, err := l.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), tex.Width)
}
