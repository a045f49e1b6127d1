package viewport

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/game_object"
	"github.com/rs/zerolog"
)

// DefaultBreakpoint is the width in pixels below which the compact profile applies.
const DefaultBreakpoint = 768

// Profile is a set of absolute scales applied to the planet and glow sprite.
type Profile struct {
	Name        string
	PlanetScale float32
	SpriteScale float32
}

var (
	// CompactProfile is used for narrow viewports.
	CompactProfile = Profile{Name: "compact", PlanetScale: 0.8, SpriteScale: 15}

	// FullProfile is used at or above the breakpoint.
	FullProfile = Profile{Name: "full", PlanetScale: 1.0, SpriteScale: 25}
)

// Target is what a resize touches: the drawing surface, the camera and the two objects
// whose scale depends on the viewport width.
type Target interface {
	// Resize resizes the drawing surface.
	Resize(width, height int)

	// Camera returns the camera whose aspect follows the viewport.
	Camera() camera.Camera

	// Planet returns the planet object.
	Planet() game_object.GameObject

	// Sprite returns the glow sprite object.
	Sprite() game_object.GameObject
}

// Responder keeps the surface, projection and presentation profile in step with the
// viewport size.
type Responder interface {
	// Resize applies a new viewport size: surface, camera aspect, projection, then profile.
	// Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	Resize(width, height int)

	// Profile returns the profile chosen by the last Resize, or the zero Profile before any.
	//
	// Returns:
	//   - Profile: the active profile
	Profile() Profile

	// Size returns the last applied viewport size.
	//
	// Returns:
	//   - width, height: pixels
	Size() (width, height int)
}

type responder struct {
	target     Target
	breakpoint int
	compact    Profile
	full       Profile
	logger     zerolog.Logger

	mu      sync.Mutex
	width   int
	height  int
	profile Profile
}

var _ Responder = &responder{}

// NewResponder creates a Responder for target. Nothing is applied until the first Resize.
//
// Parameters:
//   - target: the surface, camera and objects to update
//   - options: variadic list of ResponderBuilderOption functions
//
// Returns:
//   - Responder: the new responder
func NewResponder(target Target, options ...ResponderBuilderOption) Responder {
	r := &responder{
		target:     target,
		breakpoint: DefaultBreakpoint,
		compact:    CompactProfile,
		full:       FullProfile,
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *responder) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.target.Resize(width, height)

	cam := r.target.Camera()
	cam.SetAspect(float32(width) / float32(height))
	cam.UpdateProjection()

	p := r.full
	if width < r.breakpoint {
		p = r.compact
	}
	r.target.Planet().SetUniformScale(p.PlanetScale)
	r.target.Sprite().SetUniformScale(p.SpriteScale)

	if p.Name != r.profile.Name {
		r.logger.Debug().Str("profile", p.Name).Int("width", width).Msg("viewport profile changed")
	}
	r.width, r.height, r.profile = width, height, p
}

func (r *responder) Profile() Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profile
}

func (r *responder) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}
