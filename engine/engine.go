package engine

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/engine/animation"
	"github.com/Carmen-Shannon/oxy-planet/engine/input"
	"github.com/Carmen-Shannon/oxy-planet/engine/profiler"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/Carmen-Shannon/oxy-planet/engine/viewport"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
	"github.com/rs/zerolog"
)

// TextureAttribute is the window attribute holding the planet texture locator.
const TextureAttribute = "texture"

// Renderer is what the engine needs from a renderer: drawing the scene, following the
// surface size, and releasing GPU resources on teardown.
type Renderer interface {
	animation.Renderer

	// Resize reconfigures the drawing surface.
	Resize(width, height int)

	// Release frees every GPU resource.
	Release()
}

// RendererFactory creates the renderer attached to a mounted window.
type RendererFactory func(w window.Window) Renderer

// engine implements the Engine interface.
// All scene state is touched from the goroutine running the window loop. Other goroutines
// hand work over with Post.
type engine struct {
	window window.Window
	logger zerolog.Logger

	rendererFactory RendererFactory
	renderer        Renderer
	loader          texture.Loader
	ownsLoader      bool
	sceneOptions    []scene.SceneBuilderOption
	responderOpts   []viewport.ResponderBuilderOption
	msaa            renderer.MSAASampleCount
	presentMode     renderer.PresentMode

	scene     scene.Scene
	pointer   input.PointerTracker
	responder viewport.Responder
	queue     *animation.FrameQueue
	loop      animation.RenderLoop
	driver    animation.Driver

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickRate time.Duration
	lastTick time.Time
	now      func() time.Time

	mu       sync.Mutex
	posted   []func()
	torndown bool
	running  bool
}

// Engine is one mounted planet view: the scene, its renderer, and the loop that animates it
// inside a window.
type Engine interface {
	// Run pumps the window message loop. Each iteration runs posted work, and once per
	// display tick flushes the frame queue. Blocks until the window closes or Teardown is
	// called, then tears the engine down.
	Run()

	// Post queues fn to run on the goroutine pumping the window loop.
	// Safe to call from any goroutine. Work posted after Teardown is dropped.
	//
	// Parameters:
	//   - fn: the work to run
	Post(fn func())

	// Teardown stops the render loop, removes every window callback, resets the pointer,
	// releases the renderer and closes the texture loader when the engine created it.
	// Safe to call multiple times.
	Teardown()

	// Visible pauses the render loop when the view is hidden and resumes it when shown.
	//
	// Parameters:
	//   - visible: whether the view can be seen
	Visible(visible bool)

	// Scene returns the mounted scene.
	Scene() scene.Scene

	// Loop returns the render loop state machine.
	Loop() animation.RenderLoop

	// Responder returns the viewport responder.
	Responder() viewport.Responder
}

var _ Engine = &engine{}

// Mount builds the planet view inside w and starts animating it.
// A nil window is a missing mount point: nothing is created and nil is returned.
//
// Parameters:
//   - w: the window to draw into
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the mounted engine, or nil when w is nil
func Mount(w window.Window, options ...EngineBuilderOption) Engine {
	e := &engine{
		window:      w,
		logger:      zerolog.Nop(),
		msaa:        renderer.MSAA4x,
		presentMode: renderer.PresentModeVSync,
		tickRate:    time.Second / 60,
		now:         time.Now,
	}
	for _, opt := range options {
		opt(e)
	}

	if w == nil {
		e.logger.Debug().Msg("no mount point, planet view not created")
		return nil
	}

	if e.rendererFactory == nil {
		e.rendererFactory = e.defaultRenderer
	}
	if e.loader == nil {
		e.loader = texture.NewLoader(texture.WithLogger(e.logger))
		e.ownsLoader = true
	}
	if e.profilingEnabled {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}

	locator, _ := w.Attribute(TextureAttribute)

	width, height := w.Width(), w.Height()
	sceneOpts := []scene.SceneBuilderOption{scene.WithLogger(e.logger)}
	if width > 0 && height > 0 {
		sceneOpts = append(sceneOpts, scene.WithAspect(float32(width)/float32(height)))
	}
	e.scene = scene.NewScene(append(sceneOpts, e.sceneOptions...)...)

	e.renderer = e.rendererFactory(w)

	e.responder = viewport.NewResponder(
		&surfaceTarget{Scene: e.scene, renderer: e.renderer},
		append([]viewport.ResponderBuilderOption{viewport.WithLogger(e.logger)}, e.responderOpts...)...,
	)
	e.responder.Resize(width, height)

	e.pointer = input.NewPointerTracker()
	w.SetMouseMoveCallback(func(x, y float64) {
		cw, ch := w.CursorBounds()
		e.pointer.Move(x, y, cw, ch)
	})
	w.SetResizeCallback(e.responder.Resize)
	w.SetVisibilityCallback(e.Visible)

	e.scene.RequestPlanetTexture(e.loader, locator, e.Post)

	e.queue = animation.NewFrameQueue()
	e.driver = animation.NewDriver(e.scene, e.pointer, e.renderer)
	e.loop = animation.NewRenderLoop(e.queue, e.frame, animation.WithLogger(e.logger))
	e.loop.Start()

	e.logger.Info().
		Int("width", width).
		Int("height", height).
		Str("texture", locator).
		Msg("planet view mounted")
	return e
}

func (e *engine) defaultRenderer(w window.Window) Renderer {
	return renderer.NewRenderer(renderer.BackendTypeWGPU, w,
		renderer.WithLogger(e.logger),
		renderer.WithMSAA(e.msaa),
		renderer.WithPresentMode(e.presentMode),
	)
}

func (e *engine) Run() {
	e.mu.Lock()
	if e.torndown {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.mu.Unlock()

	e.lastTick = e.now()
	e.window.SetUpdateCallback(e.update)
	e.window.ProcessMessages()

	e.Teardown()
}

func (e *engine) Post(fn func()) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.torndown {
		return
	}
	e.posted = append(e.posted, fn)
}

func (e *engine) Teardown() {
	e.mu.Lock()
	if e.torndown {
		e.mu.Unlock()
		return
	}
	e.torndown = true
	e.posted = nil
	running := e.running
	e.mu.Unlock()

	e.loop.Stop()

	e.window.SetUpdateCallback(nil)
	e.window.SetResizeCallback(nil)
	e.window.SetMouseMoveCallback(nil)
	e.window.SetVisibilityCallback(nil)
	e.pointer.Reset()

	if e.renderer != nil {
		e.renderer.Release()
	}
	if e.ownsLoader {
		e.loader.Close()
	}

	// the message loop only returns once the window stops running
	if running && e.window.IsRunning() {
		if err := e.window.Close(); err != nil {
			e.logger.Warn().Err(err).Msg("closing window")
		}
	}

	e.logger.Info().
		Uint64("frames", e.loop.Frames()).
		Uint64("episodes", e.loop.Episodes()).
		Msg("planet view torn down")
}

func (e *engine) Visible(visible bool) {
	e.mu.Lock()
	torndown := e.torndown
	e.mu.Unlock()
	if torndown {
		return
	}

	if visible {
		e.loop.Start()
		return
	}
	e.loop.Stop()
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Loop() animation.RenderLoop {
	return e.loop
}

func (e *engine) Responder() viewport.Responder {
	return e.responder
}

// frame is the render loop's per-frame work.
func (e *engine) frame() {
	if err := e.driver.Step(); err != nil {
		e.logger.Error().Err(err).Msg("render frame")
	}
}

// update runs once per window loop iteration.
func (e *engine) update() {
	now := e.now()
	if now.Sub(e.lastTick) < e.tickRate {
		e.drainPosted()
		return
	}
	e.lastTick = now
	e.tick()
}

// tick runs posted work and then one display tick of queued frames.
//
// Returns:
//   - int: the number of frame callbacks that ran
func (e *engine) tick() int {
	e.drainPosted()
	ran := e.queue.Flush()
	if ran > 0 && e.profiler != nil {
		e.profiler.Tick()
	}
	return ran
}

func (e *engine) drainPosted() {
	e.mu.Lock()
	batch := e.posted
	e.posted = nil
	e.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
}

// surfaceTarget lets the viewport responder resize the renderer along with the scene.
type surfaceTarget struct {
	scene.Scene
	renderer Renderer
}

func (t *surfaceTarget) Resize(width, height int) {
	t.renderer.Resize(width, height)
}
