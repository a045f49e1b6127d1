package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/Carmen-Shannon/oxy-planet/engine/viewport"
	"github.com/rs/zerolog"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithLogger sets the logger handed to every component the engine creates.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger zerolog.Logger) EngineBuilderOption {
	return func(e *engine) {
		e.logger = logger
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, FPS and memory stats are logged once a second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the display tick rate in frames per second.
// Queued frames are flushed at this rate. Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.tickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithRendererFactory replaces how the renderer is created for the mounted window.
//
// Parameters:
//   - factory: builds the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRendererFactory(factory RendererFactory) EngineBuilderOption {
	return func(e *engine) {
		e.rendererFactory = factory
	}
}

// WithLoader sets the texture loader used for the planet texture. The caller keeps
// ownership: Teardown does not close it.
//
// Parameters:
//   - loader: the texture loader
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLoader(loader texture.Loader) EngineBuilderOption {
	return func(e *engine) {
		e.loader = loader
	}
}

// WithSceneOptions appends options applied when the scene is built.
//
// Parameters:
//   - options: scene options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSceneOptions(options ...scene.SceneBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.sceneOptions = append(e.sceneOptions, options...)
	}
}

// WithStars sets the star count and cube half-extent.
//
// Parameters:
//   - count: number of stars
//   - halfExtent: half the side of the star cube
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStars(count int, halfExtent float32) EngineBuilderOption {
	return WithSceneOptions(scene.WithStars(count, halfExtent))
}

// WithBreakpoint sets the width below which the compact viewport profile applies.
//
// Parameters:
//   - px: the breakpoint in pixels
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithBreakpoint(px int) EngineBuilderOption {
	return func(e *engine) {
		e.responderOpts = append(e.responderOpts, viewport.WithBreakpoint(px))
	}
}

// WithMSAA sets the sample count of the default renderer.
//
// Parameters:
//   - count: MSAAOff or MSAA4x
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMSAA(count renderer.MSAASampleCount) EngineBuilderOption {
	return func(e *engine) {
		e.msaa = count
	}
}

// WithVSync selects vsync or uncapped presentation for the default renderer.
//
// Parameters:
//   - enabled: true to wait for vertical blank
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithVSync(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.presentMode = renderer.PresentModeVSync
		if !enabled {
			e.presentMode = renderer.PresentModeUncapped
		}
	}
}
