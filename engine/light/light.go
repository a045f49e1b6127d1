package light

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeAmbient lights every surface uniformly regardless of position or normal.
	LightTypeAmbient LightType = iota

	// LightTypeDirectional has a direction but no position, like a distant sun.
	// No distance attenuation.
	LightTypeDirectional

	// LightTypePoint emits in all directions from a position and fades to zero at its range.
	LightTypePoint
)

// String returns a short name for logging.
func (t LightType) String() string {
	switch t {
	case LightTypeAmbient:
		return "ambient"
	case LightTypeDirectional:
		return "directional"
	case LightTypePoint:
		return "point"
	default:
		return "unknown"
	}
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType  LightType
	position   [3]float32
	direction  [3]float32
	color      [3]float32
	intensity  float32
	lightRange float32
	enabled    bool
}

// Light is a light source in the scene rig.
//
// Properties that do not apply to a type (position for ambient and directional lights,
// direction for ambient and point lights, range for anything but point lights) are stored
// but ignored when the light is packed for the GPU.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: ambient, directional or point
	Type() LightType

	// Position returns the world-space position of a point light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Direction returns the normalised direction the light travels in.
	//
	// Returns:
	//   - [3]float32: direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Range returns the distance at which a point light's contribution reaches zero.
	//
	// Returns:
	//   - float32: the range
	Range() float32

	// Enabled reports whether the light contributes to shading.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetPosition moves a point light.
	//
	// Parameters:
	//   - x, y, z: new position
	SetPosition(x, y, z float32)

	// SetIntensity changes the intensity multiplier.
	//
	// Parameters:
	//   - intensity: the new intensity
	SetIntensity(intensity float32)

	// SetEnabled enables or disables the light.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a Light of the given type with defaults and applies the options.
//
// Parameters:
//   - lightType: the kind of light to create
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:  lightType,
		direction:  [3]float32{0, -1, 0},
		color:      [3]float32{1, 1, 1},
		intensity:  1.0,
		lightRange: 10.0,
		enabled:    true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Range() float32 {
	return l.lightRange
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
