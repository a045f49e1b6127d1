package engine

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/animation"
	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/Carmen-Shannon/oxy-planet/engine/viewport"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	mu           sync.Mutex
	width        int
	height       int
	attributes   map[string]string
	running      bool
	closed       int
	onUpdate     func()
	onResize     func(width, height int)
	onMouseMove  func(x, y float64)
	onVisibility func(visible bool)

	// iterations bounds ProcessMessages in tests
	iterations int
}

var _ window.Window = &fakeWindow{}

func newFakeWindow(width, height int, attrs map[string]string) *fakeWindow {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &fakeWindow{width: width, height: height, attributes: attrs, running: true}
}

func (w *fakeWindow) SetUpdateCallback(cb func()) {
	w.mu.Lock()
	w.onUpdate = cb
	w.mu.Unlock()
}

func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) {
	w.mu.Lock()
	w.onResize = cb
	w.mu.Unlock()
}

func (w *fakeWindow) SetMouseMoveCallback(cb func(x, y float64)) {
	w.mu.Lock()
	w.onMouseMove = cb
	w.mu.Unlock()
}

func (w *fakeWindow) SetVisibilityCallback(cb func(visible bool)) {
	w.mu.Lock()
	w.onVisibility = cb
	w.mu.Unlock()
}

func (w *fakeWindow) Attribute(key string) (string, bool) {
	v, ok := w.attributes[key]
	return v, ok
}

func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }

func (w *fakeWindow) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *fakeWindow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.running = false
	w.closed++
	return nil
}

func (w *fakeWindow) ProcessMessages() {
	for i := 0; i < w.iterations && w.IsRunning(); i++ {
		w.mu.Lock()
		update := w.onUpdate
		w.mu.Unlock()
		if update != nil {
			update()
		}
	}
}

func (w *fakeWindow) Width() int { return w.width }

func (w *fakeWindow) Height() int { return w.height }

func (w *fakeWindow) CursorBounds() (int, int) { return w.width, w.height }

func (w *fakeWindow) hasCallbacks() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.onUpdate != nil || w.onResize != nil || w.onMouseMove != nil || w.onVisibility != nil
}

type frameRecord struct {
	textured bool
	rotation [3]float32
}

type fakeRenderer struct {
	frames   []frameRecord
	resizes  [][2]int
	released int
	err      error
}

func (r *fakeRenderer) Render(s scene.Scene) error {
	r.frames = append(r.frames, frameRecord{
		textured: s.Planet().Material().Texture() != nil,
		rotation: s.Planet().Rotation(),
	})
	return r.err
}

func (r *fakeRenderer) Resize(width, height int) {
	r.resizes = append(r.resizes, [2]int{width, height})
}

func (r *fakeRenderer) Release() { r.released++ }

type fakeLoader struct {
	mu       sync.Mutex
	locators []string
	done     func(common.TextureStagingData, error)
	closed   int
}

func (l *fakeLoader) Load(context.Context, string) (common.TextureStagingData, error) {
	return common.TextureStagingData{}, errors.New("not used")
}

func (l *fakeLoader) LoadAsync(locator string, done func(common.TextureStagingData, error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.locators = append(l.locators, locator)
	l.done = done
}

func (l *fakeLoader) Close() {
	l.mu.Lock()
	l.closed++
	l.mu.Unlock()
}

func (l *fakeLoader) complete(tex common.TextureStagingData, err error) {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()
	done(tex, err)
}

func mount(t *testing.T, w *fakeWindow, r *fakeRenderer, l *fakeLoader, opts ...EngineBuilderOption) *engine {
	t.Helper()
	opts = append([]EngineBuilderOption{
		WithRendererFactory(func(window.Window) Renderer { return r }),
		WithLoader(l),
		WithSceneOptions(scene.WithRand(rand.New(rand.NewPCG(1, 2)))),
		WithStars(50, 200),
	}, opts...)
	e := Mount(w, opts...)
	require.NotNil(t, e)
	return e.(*engine)
}

func TestMountWithoutWindowIsNoop(t *testing.T) {
	r := &fakeRenderer{}
	created := false
	e := Mount(nil, WithRendererFactory(func(window.Window) Renderer {
		created = true
		return r
	}))
	assert.Nil(t, e)
	assert.False(t, created)
}

func TestMountInitialisesView(t *testing.T) {
	w := newFakeWindow(1024, 768, map[string]string{TextureAttribute: "https://example.com/earth.jpg"})
	r := &fakeRenderer{}
	l := &fakeLoader{}

	e := mount(t, w, r, l)

	assert.Equal(t, []string{"https://example.com/earth.jpg"}, l.locators)
	assert.Equal(t, [][2]int{{1024, 768}}, r.resizes)
	assert.Equal(t, viewport.FullProfile, e.Responder().Profile())
	assert.Equal(t, animation.StateRunning, e.Loop().State())
	assert.Equal(t, uint64(1), e.Loop().Episodes())
	assert.InDelta(t, 1024.0/768.0, e.Scene().Camera().Aspect(), 1e-6)
	assert.True(t, w.hasCallbacks())
	assert.Empty(t, r.frames)
}

func TestMountWithoutTextureAttributeSkipsLoad(t *testing.T) {
	l := &fakeLoader{}
	mount(t, newFakeWindow(800, 600, nil), &fakeRenderer{}, l)
	assert.Empty(t, l.locators)
}

func TestTextureAppliesOnFrameAfterCompletion(t *testing.T) {
	w := newFakeWindow(1024, 768, map[string]string{TextureAttribute: "earth.png"})
	r := &fakeRenderer{}
	l := &fakeLoader{}
	e := mount(t, w, r, l)

	for range 3 {
		require.Equal(t, 1, e.tick())
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.complete(common.TextureStagingData{Pixels: make([]byte, 16), Width: 2, Height: 2}, nil)
	}()
	wg.Wait()

	// the completion is posted, not applied on the loader goroutine
	assert.Nil(t, e.Scene().Planet().Material().Texture())

	for range 3 {
		require.Equal(t, 1, e.tick())
	}

	require.Len(t, r.frames, 6)
	for i, f := range r.frames {
		assert.Equal(t, i >= 3, f.textured, "frame %d", i+1)
	}

	// the swap leaves the animation untouched
	control := &fakeRenderer{}
	c := mount(t, newFakeWindow(1024, 768, nil), control, &fakeLoader{})
	for range 6 {
		c.tick()
	}
	require.Len(t, control.frames, 6)
	for i := range r.frames {
		assert.Equal(t, control.frames[i].rotation, r.frames[i].rotation, "frame %d", i+1)
	}
}

func TestTextureFailureKeepsPlaceholder(t *testing.T) {
	w := newFakeWindow(1024, 768, map[string]string{TextureAttribute: "missing.png"})
	r := &fakeRenderer{}
	l := &fakeLoader{}
	e := mount(t, w, r, l)

	l.complete(common.TextureStagingData{}, errors.New("404"))
	e.tick()

	assert.Same(t, e.Scene().PlaceholderMaterial(), e.Scene().Planet().Material())
}

func TestVisibilityEpisodes(t *testing.T) {
	w := newFakeWindow(1024, 768, nil)
	r := &fakeRenderer{}
	e := mount(t, w, r, &fakeLoader{})

	w.onVisibility(false)
	for range 5 {
		assert.Zero(t, e.tick())
	}
	assert.Empty(t, r.frames)
	assert.Equal(t, animation.StatePaused, e.Loop().State())

	w.onVisibility(true)
	for range 4 {
		e.tick()
	}
	assert.Len(t, r.frames, 4)
	assert.Equal(t, uint64(2), e.Loop().Episodes())

	w.onVisibility(false)
	for range 3 {
		e.tick()
	}
	assert.Len(t, r.frames, 4)
	assert.Equal(t, uint64(2), e.Loop().Episodes())
}

func TestResizeAndPointerCallbacks(t *testing.T) {
	w := newFakeWindow(1024, 768, nil)
	r := &fakeRenderer{}
	e := mount(t, w, r, &fakeLoader{})

	w.onResize(500, 768)
	assert.Equal(t, viewport.CompactProfile, e.Responder().Profile())
	assert.Equal(t, [3]float32{0.8, 0.8, 0.8}, e.Scene().Planet().Scale())
	assert.Equal(t, [2]int{500, 768}, r.resizes[len(r.resizes)-1])

	w.onMouseMove(1024, 0)
	x, y := e.pointer.Offset()
	assert.InDelta(t, 0.5, x, 1e-6)
	assert.InDelta(t, -0.5, y, 1e-6)
}

func TestRenderErrorKeepsLoopRunning(t *testing.T) {
	r := &fakeRenderer{err: errors.New("surface lost")}
	e := mount(t, newFakeWindow(1024, 768, nil), r, &fakeLoader{})

	e.tick()
	e.tick()
	assert.Len(t, r.frames, 2)
	assert.Equal(t, animation.StateRunning, e.Loop().State())
}

func TestTeardownIsIdempotent(t *testing.T) {
	w := newFakeWindow(1024, 768, nil)
	r := &fakeRenderer{}
	l := &fakeLoader{}
	e := mount(t, w, r, l)
	e.pointer.Move(1024, 768, 1024, 768)

	e.Teardown()
	e.Teardown()

	assert.False(t, w.hasCallbacks())
	assert.Equal(t, 1, r.released)
	// a loader handed in by the caller stays open
	assert.Zero(t, l.closed)
	assert.Equal(t, animation.StatePaused, e.Loop().State())
	x, y := e.pointer.Offset()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, e.queue.Pending())
	assert.Zero(t, w.closed)

	ran := false
	e.Post(func() { ran = true })
	e.Visible(true)
	assert.Zero(t, e.tick())
	assert.False(t, ran)
	assert.Equal(t, animation.StatePaused, e.Loop().State())
}

func TestRunPumpsFramesAndTearsDown(t *testing.T) {
	w := newFakeWindow(1024, 768, nil)
	w.iterations = 10
	r := &fakeRenderer{}
	e := mount(t, w, r, &fakeLoader{}, WithProfiling(true))

	clock := time.Unix(0, 0)
	e.now = func() time.Time {
		clock = clock.Add(20 * time.Millisecond)
		return clock
	}

	posted := 0
	e.Post(func() { posted++ })
	e.Run()

	assert.Equal(t, 1, posted)
	assert.Len(t, r.frames, 10)
	assert.Equal(t, 1, r.released)
	assert.False(t, w.hasCallbacks())
	assert.Equal(t, 1, w.closed)
}

func TestUpdateWaitsForTick(t *testing.T) {
	w := newFakeWindow(1024, 768, nil)
	r := &fakeRenderer{}
	e := mount(t, w, r, &fakeLoader{}, WithTickRate(50))

	clock := time.Unix(0, 0)
	e.now = func() time.Time { return clock }
	e.lastTick = clock

	posted := 0
	e.Post(func() { posted++ })
	clock = clock.Add(5 * time.Millisecond)
	e.update()
	assert.Equal(t, 1, posted)
	assert.Empty(t, r.frames)

	clock = clock.Add(20 * time.Millisecond)
	e.update()
	assert.Len(t, r.frames, 1)
}

func TestTeardownClosesOwnLoader(t *testing.T) {
	r := &fakeRenderer{}
	mounted := Mount(newFakeWindow(1024, 768, nil),
		WithRendererFactory(func(window.Window) Renderer { return r }),
		WithStars(10, 200),
	)
	require.NotNil(t, mounted)
	e := mounted.(*engine)
	require.True(t, e.ownsLoader)

	e.Teardown()

	var got error
	e.loader.LoadAsync("earth.png", func(_ common.TextureStagingData, err error) { got = err })
	assert.ErrorIs(t, got, texture.ErrClosed)
}
