package shader

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies the pipeline stage a shader is compiled for.
type ShaderType int

const (
	// ShaderTypeVertex is a vertex stage shader.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is a fragment stage shader.
	ShaderTypeFragment
)

// String returns the lowercase stage name.
func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// shader is the implementation of the Shader interface.
type shader struct {
	mu *sync.RWMutex

	key        string
	shaderType ShaderType
	source     string
	entryPoint string

	module *wgpu.ShaderModuleDescriptor

	// reflection results, parsed once at construction
	vertexLayouts              []wgpu.VertexBufferLayout
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	bindingVarNames            map[int]map[int]string
}

// Shader is a single WGSL stage together with the layout information reflected from its
// source. The renderer uses the reflected vertex layouts and bind group layouts to build
// pipelines without hand-written descriptors.
type Shader interface {
	// Key returns the unique identifier of the shader.
	//
	// Returns:
	//   - string: the shader key
	Key() string

	// ShaderType returns the stage the shader is compiled for.
	//
	// Returns:
	//   - ShaderType: vertex or fragment
	ShaderType() ShaderType

	// Source returns the WGSL source code.
	//
	// Returns:
	//   - string: the source
	Source() string

	// EntryPoint returns the name of the entry function for this stage.
	//
	// Returns:
	//   - string: the entry point function name
	EntryPoint() string

	// VertexLayouts returns the vertex buffer layouts reflected from vertex input structs.
	// Always empty for fragment shaders.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: one layout per vertex input struct, in declaration order
	VertexLayouts() []wgpu.VertexBufferLayout

	// BindGroupLayoutDescriptor returns the reflected layout for one bind group.
	//
	// Parameters:
	//   - group: the @group index
	//
	// Returns:
	//   - wgpu.BindGroupLayoutDescriptor: the layout, empty if the group is not declared
	BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor

	// BindGroupLayoutDescriptors returns every reflected bind group layout keyed by group.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: the layouts
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupVarName returns the WGSL variable name declared at group and binding.
	//
	// Parameters:
	//   - group: the @group index
	//   - binding: the @binding index
	//
	// Returns:
	//   - string: the variable name, or empty when nothing is declared there
	BindGroupVarName(group, binding int) string

	// BindingFromVarName looks up the binding index of a named variable in a group.
	//
	// Parameters:
	//   - group: the @group index
	//   - varName: the WGSL variable name
	//
	// Returns:
	//   - int: the binding index
	//   - bool: false when the name is not declared in the group
	BindingFromVarName(group int, varName string) (int, bool)

	// Module returns the shader module descriptor ready for device.CreateShaderModule.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the descriptor
	Module() *wgpu.ShaderModuleDescriptor
}

var _ Shader = &shader{}

// NewShader reflects a WGSL source for the given stage. The source must contain an entry
// point annotated for that stage.
//
// Parameters:
//   - key: unique identifier, also used as the module label
//   - shaderType: the stage to compile for
//   - source: WGSL source code
//
// Returns:
//   - Shader: the reflected shader
//   - error: an error if the source has no entry point for the stage
func NewShader(key string, shaderType ShaderType, source string) (Shader, error) {
	s := &shader{
		mu:         &sync.RWMutex{},
		key:        key,
		shaderType: shaderType,
		source:     source,
	}
	if err := s.parseSource(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewShaderFromAsset reflects one of the WGSL files compiled into the binary.
//
// Parameters:
//   - key: unique identifier
//   - shaderType: the stage to compile for
//   - name: file name under assets/, e.g. "planet.wgsl"
//
// Returns:
//   - Shader: the reflected shader
//   - error: an error if the asset does not exist or has no entry point for the stage
func NewShaderFromAsset(key string, shaderType ShaderType, name string) (Shader, error) {
	source, err := Asset(name)
	if err != nil {
		return nil, err
	}
	return NewShader(key, shaderType, source)
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vertexLayouts
}

func (s *shader) BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bindGroupLayoutDescriptors[group]
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bindGroupLayoutDescriptors
}

func (s *shader) BindGroupVarName(group, binding int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bindingVarNames[group][binding]
}

func (s *shader) BindingFromVarName(group int, varName string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for binding, name := range s.bindingVarNames[group] {
		if name == varName {
			return binding, true
		}
	}
	return 0, false
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

// parseSource builds the module descriptor and runs reflection appropriate for the stage.
func (s *shader) parseSource() error {
	s.entryPoint = parseEntryPoint(s.source, s.shaderType)
	if s.entryPoint == "" {
		return fmt.Errorf("shader %q: no %s entry point found", s.key, s.shaderType)
	}
	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}

	visibility := wgpu.ShaderStageFragment
	if s.shaderType == ShaderTypeVertex {
		visibility = wgpu.ShaderStageVertex
		s.vertexLayouts = parseVertexLayouts(s.source)
	}
	s.bindGroupLayoutDescriptors, s.bindingVarNames = parseBindGroupLayouts(s.source, visibility)
	return nil
}
