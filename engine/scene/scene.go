package scene

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/game_object"
	"github.com/Carmen-Shannon/oxy-planet/engine/light"
	"github.com/Carmen-Shannon/oxy-planet/engine/model"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-planet/engine/starfield"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Pipeline keys carried by the scene's materials. The renderer builds one pipeline per key.
const (
	PipelinePlanet = "planet"
	PipelineSprite = "sprite"
	PipelineStars  = "stars"
)

// Scene owns every renderable of the planet view: camera, lights, planet, glow sprite and
// star field, plus the whole-scene parallax rotation.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Lights returns the ambient, directional and point lights in that order.
	Lights() []light.Light

	// Ambient returns the ambient light.
	Ambient() light.Light

	// LightBlock packs the lights for the GPU.
	//
	// Returns:
	//   - light.GPULightBlock: the packed light uniform
	LightBlock() light.GPULightBlock

	// Planet returns the planet object.
	Planet() game_object.GameObject

	// Sprite returns the glow sprite object.
	Sprite() game_object.GameObject

	// Stars returns the star field object.
	Stars() game_object.GameObject

	// StarField returns the immutable star positions.
	StarField() starfield.StarField

	// Objects returns every drawable in draw order: stars, planet, then the additive sprite.
	//
	// Returns:
	//   - []game_object.GameObject: the drawables
	Objects() []game_object.GameObject

	// Rotation returns the whole-scene parallax tilt.
	//
	// Returns:
	//   - pitch: rotation about X in radians
	//   - yaw: rotation about Y in radians
	Rotation() (pitch, yaw float32)

	// SetRotation sets the whole-scene parallax tilt.
	//
	// Parameters:
	//   - pitch: rotation about X in radians
	//   - yaw: rotation about Y in radians
	SetRotation(pitch, yaw float32)

	// WorldMatrix composes the scene rotation with obj's model matrix.
	//
	// Parameters:
	//   - obj: an object of this scene
	//
	// Returns:
	//   - [16]float32: column-major world matrix
	WorldMatrix(obj game_object.GameObject) [16]float32

	// PlaceholderMaterial returns the flat material the planet starts with.
	PlaceholderMaterial() material.Material

	// SetPlanetMaterial replaces the planet's material in a single assignment. The mesh and
	// transform are untouched.
	//
	// Parameters:
	//   - m: the new material, ignored when nil
	SetPlanetMaterial(m material.Material)

	// RequestPlanetTexture loads locator in the background and, on success, swaps in a textured
	// material built from the placeholder's lighting terms. The swap is handed to post so it
	// runs on the caller's loop. An empty locator or a nil loader does nothing. Failures are
	// logged and leave the placeholder in place.
	//
	// Parameters:
	//   - loader: the texture loader
	//   - locator: URL or file path of the planet texture
	//   - post: schedules a function on the loop context; nil applies the swap directly
	RequestPlanetTexture(loader texture.Loader, locator string, post func(func()))
}

// scene is the implementation of the Scene interface.
type scene struct {
	name   string
	logger zerolog.Logger

	// construction parameters
	aspect       float32
	starCount    int
	starExtent   float32
	rng          *rand.Rand
	glowOptions  []texture.GlowBuilderOption
	planetRadius float32
	spritePos    [3]float32
	spriteScale  float32

	cam         camera.Camera
	ambient     light.Light
	directional light.Light
	point       light.Light
	planet      game_object.GameObject
	sprite      game_object.GameObject
	stars       game_object.GameObject
	field       starfield.StarField
	placeholder material.Material

	mu    sync.RWMutex
	pitch float32
	yaw   float32
}

// Compile-time check that scene implements Scene
var _ Scene = &scene{}

// NewScene assembles the planet scene in dependency order: camera, lights, planet, glow
// sprite, star field.
//
// Parameters:
//   - options: variadic list of SceneBuilderOption functions
//
// Returns:
//   - Scene: the assembled scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		name:         "planet",
		logger:       zerolog.Nop(),
		aspect:       16.0 / 9.0,
		starCount:    starfield.DefaultCount,
		starExtent:   starfield.DefaultHalfExtent,
		planetRadius: 1.6,
		spritePos:    [3]float32{30, 18, -90},
		spriteScale:  25,
	}
	for _, opt := range options {
		opt(s)
	}

	s.cam = camera.NewCamera(
		camera.WithPosition(0, 0, 5),
		camera.WithTarget(0, 0, 0),
		camera.WithFov(mgl32.DegToRad(75)),
		camera.WithAspect(s.aspect),
		camera.WithNear(0.1),
		camera.WithFar(1000),
	)

	s.ambient = light.NewLight(light.LightTypeAmbient,
		light.WithColor(0.25, 0.25, 0.31),
		light.WithIntensity(0.4),
	)
	s.directional = light.NewLight(light.LightTypeDirectional,
		light.WithDirection(-1, -0.5, -1),
		light.WithColor(1, 1, 1),
		light.WithIntensity(1.5),
	)
	s.point = light.NewLight(light.LightTypePoint,
		light.WithPosition(3, 2, 4),
		light.WithColor(0.35, 0.6, 1.0),
		light.WithIntensity(2),
		light.WithRange(20),
	)

	s.placeholder = material.NewMaterial(
		material.WithName("planet_placeholder"),
		material.WithColor(0.17, 0.42, 0.69),
		material.WithEmissive(0.04, 0.1, 0.2),
		material.WithSpecular(0.2, 0.2, 0.2),
		material.WithShininess(25),
		material.WithPipelineKey(PipelinePlanet),
	)
	s.planet = game_object.NewGameObject(
		game_object.WithName("planet"),
		game_object.WithModel(model.NewSphere("planet", s.planetRadius, 64, 64)),
		game_object.WithMaterial(s.placeholder),
	)

	s.sprite = game_object.NewGameObject(
		game_object.WithName("glow"),
		game_object.WithModel(model.NewQuad("glow")),
		game_object.WithMaterial(material.NewMaterial(
			material.WithName("glow"),
			material.WithTexture(texture.Glow(s.glowOptions...)),
			material.WithBlend(material.BlendAdditive),
			material.WithPipelineKey(PipelineSprite),
		)),
		game_object.WithBillboard(true),
		game_object.WithPosition(s.spritePos[0], s.spritePos[1], s.spritePos[2]),
		game_object.WithScale(s.spriteScale, s.spriteScale, s.spriteScale),
	)

	s.field = starfield.Generate(s.starCount, s.starExtent, s.rng)
	s.stars = game_object.NewGameObject(
		game_object.WithName("stars"),
		game_object.WithModel(model.NewModel(model.WithName("stars"), model.WithPoints(s.field.Positions()))),
		game_object.WithMaterial(material.NewMaterial(
			material.WithName("stars"),
			material.WithColor(1, 1, 1),
			material.WithPipelineKey(PipelineStars),
		)),
	)

	s.logger.Debug().
		Int("stars", s.field.Len()).
		Float32("aspect", s.aspect).
		Msg("scene assembled")
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Lights() []light.Light {
	return []light.Light{s.ambient, s.directional, s.point}
}

func (s *scene) Ambient() light.Light {
	return s.ambient
}

func (s *scene) LightBlock() light.GPULightBlock {
	return light.Pack(s.Lights())
}

func (s *scene) Planet() game_object.GameObject {
	return s.planet
}

func (s *scene) Sprite() game_object.GameObject {
	return s.sprite
}

func (s *scene) Stars() game_object.GameObject {
	return s.stars
}

func (s *scene) StarField() starfield.StarField {
	return s.field
}

func (s *scene) Objects() []game_object.GameObject {
	return []game_object.GameObject{s.stars, s.planet, s.sprite}
}

func (s *scene) Rotation() (pitch, yaw float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pitch, s.yaw
}

func (s *scene) SetRotation(pitch, yaw float32) {
	s.mu.Lock()
	s.pitch, s.yaw = pitch, yaw
	s.mu.Unlock()
}

func (s *scene) WorldMatrix(obj game_object.GameObject) [16]float32 {
	pitch, yaw := s.Rotation()
	var root, out [16]float32
	common.BuildModelMatrix(root[:], [3]float32{}, [3]float32{pitch, yaw, 0}, [3]float32{1, 1, 1})
	local := obj.ModelMatrix()
	common.Mul4(out[:], root[:], local[:])
	return out
}

func (s *scene) PlaceholderMaterial() material.Material {
	return s.placeholder
}

func (s *scene) SetPlanetMaterial(m material.Material) {
	if m == nil {
		return
	}
	s.planet.SetMaterial(m)
}

func (s *scene) RequestPlanetTexture(loader texture.Loader, locator string, post func(func())) {
	locator = strings.TrimSpace(locator)
	if loader == nil || locator == "" {
		return
	}

	placeholder := s.placeholder
	loader.LoadAsync(locator, func(tex common.TextureStagingData, err error) {
		if err != nil {
			s.logger.Warn().Err(err).Str("locator", locator).Msg("planet texture unavailable, keeping placeholder")
			return
		}
		textured := material.WithTextureFrom(placeholder, tex, material.WithName("planet_textured"))
		apply := func() {
			s.SetPlanetMaterial(textured)
			s.logger.Info().
				Str("locator", locator).
				Uint32("width", tex.Width).
				Uint32("height", tex.Height).
				Msg("planet texture applied")
		}
		if post == nil {
			apply()
			return
		}
		post(apply)
	})
}
