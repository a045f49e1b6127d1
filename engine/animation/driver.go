package animation

import (
	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/input"
	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
)

// Default per-frame animation constants.
const (
	DefaultPlanetSpin  float32 = 0.0015
	DefaultStarSpin    float32 = -0.0002
	DefaultSensitivity float32 = 0.1
	DefaultDamping     float32 = 0.05
)

// Renderer draws a scene. Implemented by renderer.Renderer.
type Renderer interface {
	Render(s scene.Scene) error
}

// Driver advances the scene by one frame and renders it.
type Driver interface {
	// Step spins the planet and stars, eases the scene tilt toward the pointer target and
	// renders. Returns the renderer's error, if any; the animation state is advanced either way.
	//
	// Returns:
	//   - error: the render error or nil
	Step() error
}

type driver struct {
	scene       scene.Scene
	pointer     input.PointerTracker
	renderer    Renderer
	planetSpin  float32
	starSpin    float32
	sensitivity float32
	damping     float32
}

var _ Driver = &driver{}

// NewDriver creates a Driver over the scene. A nil renderer skips drawing; a nil pointer
// keeps the tilt target neutral.
//
// Parameters:
//   - s: the scene to animate
//   - pointer: source of the parallax target
//   - r: the renderer
//   - options: variadic list of DriverBuilderOption functions
//
// Returns:
//   - Driver: the new driver
func NewDriver(s scene.Scene, pointer input.PointerTracker, r Renderer, options ...DriverBuilderOption) Driver {
	d := &driver{
		scene:       s,
		pointer:     pointer,
		renderer:    r,
		planetSpin:  DefaultPlanetSpin,
		starSpin:    DefaultStarSpin,
		sensitivity: DefaultSensitivity,
		damping:     DefaultDamping,
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

func (d *driver) Step() error {
	d.scene.Planet().AddRotation(0, d.planetSpin, 0)
	d.scene.Stars().AddRotation(0, d.starSpin, 0)

	var px, py float32
	if d.pointer != nil {
		px, py = d.pointer.Offset()
	}
	targetPitch := py * d.sensitivity
	targetYaw := px * d.sensitivity

	pitch, yaw := d.scene.Rotation()
	d.scene.SetRotation(
		common.Damp(pitch, targetPitch, d.damping),
		common.Damp(yaw, targetYaw, d.damping),
	)

	if d.renderer == nil {
		return nil
	}
	return d.renderer.Render(d.scene)
}
