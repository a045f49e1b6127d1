package scene

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/rs/zerolog"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithLogger sets the logger used for assembly and texture swap messages.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(logger zerolog.Logger) SceneBuilderOption {
	return func(s *scene) {
		s.logger = logger
	}
}

// WithAspect sets the initial camera aspect ratio. Non-positive values are ignored.
//
// Parameters:
//   - aspect: width divided by height
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAspect(aspect float32) SceneBuilderOption {
	return func(s *scene) {
		if aspect > 0 {
			s.aspect = aspect
		}
	}
}

// WithStars sets the star count and cube half-extent. Non-positive values keep the defaults.
//
// Parameters:
//   - count: number of stars
//   - halfExtent: half the side of the cube the stars are sampled in
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithStars(count int, halfExtent float32) SceneBuilderOption {
	return func(s *scene) {
		if count > 0 {
			s.starCount = count
		}
		if halfExtent > 0 {
			s.starExtent = halfExtent
		}
	}
}

// WithRand sets the random source for star placement, for reproducible fields.
//
// Parameters:
//   - rng: the random source
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRand(rng *rand.Rand) SceneBuilderOption {
	return func(s *scene) {
		s.rng = rng
	}
}

// WithGlowOptions passes options through to the glow texture generator.
//
// Parameters:
//   - options: glow builder options
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithGlowOptions(options ...texture.GlowBuilderOption) SceneBuilderOption {
	return func(s *scene) {
		s.glowOptions = append(s.glowOptions, options...)
	}
}
