package animation

import "github.com/rs/zerolog"

// RenderLoopBuilderOption is a function that configures a renderLoop during construction.
type RenderLoopBuilderOption func(*renderLoop)

// WithLogger sets the logger for start and pause transitions.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - RenderLoopBuilderOption: a function that applies the logger option
func WithLogger(logger zerolog.Logger) RenderLoopBuilderOption {
	return func(l *renderLoop) {
		l.logger = logger
	}
}

// DriverBuilderOption is a function that configures a driver during construction.
type DriverBuilderOption func(*driver)

// WithPlanetSpin sets the planet's yaw increment per frame in radians.
//
// Parameters:
//   - radians: yaw added each frame
//
// Returns:
//   - DriverBuilderOption: a function that applies the spin option
func WithPlanetSpin(radians float32) DriverBuilderOption {
	return func(d *driver) {
		d.planetSpin = radians
	}
}

// WithStarSpin sets the star field's yaw increment per frame in radians.
//
// Parameters:
//   - radians: yaw added each frame, usually small and negative
//
// Returns:
//   - DriverBuilderOption: a function that applies the spin option
func WithStarSpin(radians float32) DriverBuilderOption {
	return func(d *driver) {
		d.starSpin = radians
	}
}

// WithSensitivity sets how far a pointer offset tilts the scene.
//
// Parameters:
//   - s: radians of tilt per unit of pointer offset
//
// Returns:
//   - DriverBuilderOption: a function that applies the sensitivity option
func WithSensitivity(s float32) DriverBuilderOption {
	return func(d *driver) {
		d.sensitivity = s
	}
}

// WithDamping sets the fraction of the remaining tilt closed per frame. Values outside
// (0, 1) are ignored.
//
// Parameters:
//   - factor: damping factor
//
// Returns:
//   - DriverBuilderOption: a function that applies the damping option
func WithDamping(factor float32) DriverBuilderOption {
	return func(d *driver) {
		if factor > 0 && factor < 1 {
			d.damping = factor
		}
	}
}
