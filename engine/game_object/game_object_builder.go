package game_object

import (
	"github.com/Carmen-Shannon/oxy-planet/engine/model"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/material"
)

// GameObjectBuilderOption is a function that configures a gameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithName sets the debug name.
//
// Parameters:
//   - name: the object name
//
// Returns:
//   - GameObjectBuilderOption: a function that applies the name option
func WithName(name string) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.name = name
	}
}

// WithEnabled sets whether the object starts enabled.
//
// Parameters:
//   - enabled: true to draw
//
// Returns:
//   - GameObjectBuilderOption: a function that applies the enabled option
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.enabled.Store(enabled)
	}
}

// WithBillboard marks the object as a camera-facing sprite.
//
// Parameters:
//   - billboard: true for sprites
//
// Returns:
//   - GameObjectBuilderOption: a function that applies the billboard option
func WithBillboard(billboard bool) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.billboard = billboard
	}
}

// WithModel sets the mesh.
//
// Parameters:
//   - m: the mesh
//
// Returns:
//   - GameObjectBuilderOption: a function that applies the model option
func WithModel(m model.Model) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.mdl = m
	}
}

// WithMaterial sets the initial material.
//
// Parameters:
//   - m: the material
//
// Returns:
//   - GameObjectBuilderOption: a function that applies the material option
func WithMaterial(m material.Material) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.mat = m
	}
}

// WithPosition sets the initial world position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: a function that applies the position option
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the initial Euler rotation in radians.
//
// Parameters:
//   - rx, ry, rz: pitch, yaw, roll
//
// Returns:
//   - GameObjectBuilderOption: a function that applies the rotation option
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the initial per-axis scale.
//
// Parameters:
//   - sx, sy, sz: scale components
//
// Returns:
//   - GameObjectBuilderOption: a function that applies the scale option
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.scale = [3]float32{sx, sy, sz}
	}
}
