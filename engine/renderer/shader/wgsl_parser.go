package shader

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// vertexAttrFormats maps the WGSL types allowed in a vertex input struct to wgpu formats.
var vertexAttrFormats = map[string]vertexAttrFormat{
	"f32":       {wgpu.VertexFormatFloat32, 4},
	"vec2f":     {wgpu.VertexFormatFloat32x2, 8},
	"vec2<f32>": {wgpu.VertexFormatFloat32x2, 8},
	"vec3f":     {wgpu.VertexFormatFloat32x3, 12},
	"vec3<f32>": {wgpu.VertexFormatFloat32x3, 12},
	"vec4f":     {wgpu.VertexFormatFloat32x4, 16},
	"vec4<f32>": {wgpu.VertexFormatFloat32x4, 16},
	"u32":       {wgpu.VertexFormatUint32, 4},
	"vec2u":     {wgpu.VertexFormatUint32x2, 8},
	"vec2<u32>": {wgpu.VertexFormatUint32x2, 8},
	"vec4u":     {wgpu.VertexFormatUint32x4, 16},
	"vec4<u32>": {wgpu.VertexFormatUint32x4, 16},
}

// textureViewDimensions maps sampled texture base types to their view dimension.
var textureViewDimensions = map[string]wgpu.TextureViewDimension{
	"texture_2d":       wgpu.TextureViewDimension2D,
	"texture_2d_array": wgpu.TextureViewDimension2DArray,
	"texture_cube":     wgpu.TextureViewDimensionCube,
}

// textureSampleTypes maps a sampled texture's component type to its wgpu sample type.
var textureSampleTypes = map[string]wgpu.TextureSampleType{
	"f32": wgpu.TextureSampleTypeFloat,
	"i32": wgpu.TextureSampleTypeSint,
	"u32": wgpu.TextureSampleTypeUint,
}

var (
	// structRegex captures a struct's name and body.
	structRegex = regexp.MustCompile(`struct\s+(\w+)\s*\{([^}]*)\}`)

	// locationAttrRegex captures N from @location(N).
	locationAttrRegex = regexp.MustCompile(`@location\((\d+)\)`)

	// builtinAttrRegex matches any @builtin(...) attribute.
	builtinAttrRegex = regexp.MustCompile(`@builtin\(\w+\)`)

	// memberRegex captures the name and type of a struct member after any attributes.
	memberRegex = regexp.MustCompile(`^(?:@\w+\([^)]*\)\s*)*(\w+)\s*:\s*(.+)$`)

	// entryPointRegexes capture the function name following a stage attribute.
	entryPointRegexes = map[ShaderType]*regexp.Regexp{
		ShaderTypeVertex:   regexp.MustCompile(`(?s)@vertex\b.*?\bfn\s+(\w+)`),
		ShaderTypeFragment: regexp.MustCompile(`(?s)@fragment\b.*?\bfn\s+(\w+)`),
	}

	// resourceRegex captures group, binding, address space, name and type of a resource
	// declaration such as `@group(0) @binding(1) var<uniform> lights: LightBlock;`.
	resourceRegex = regexp.MustCompile(`@group\((\d+)\)\s*@binding\((\d+)\)\s*var(?:<([^>]*)>)?\s+(\w+)\s*:\s*([^;]+?)\s*;`)
)

// parseVertexLayouts builds a vertex buffer layout for every struct whose members all carry
// @location and none carry @builtin. Structs with a member type that cannot be a vertex
// attribute are skipped.
//
// Parameters:
//   - source: WGSL source
//
// Returns:
//   - []wgpu.VertexBufferLayout: layouts in declaration order
func parseVertexLayouts(source string) []wgpu.VertexBufferLayout {
	var layouts []wgpu.VertexBufferLayout
	for _, decl := range parseStructs(stripComments(source)) {
		if !isVertexInput(decl) {
			continue
		}
		if layout, ok := vertexLayoutFor(decl); ok {
			layouts = append(layouts, layout)
		}
	}
	return layouts
}

// parseBindGroupLayouts reflects every @group/@binding resource into a layout entry and
// groups them by @group. Uniform and storage buffers get MinBindingSize from the computed
// size of their bound type so buffers can be allocated straight from the layout.
//
// Parameters:
//   - source: WGSL source
//   - visibility: the stage flag applied to every entry
//
// Returns:
//   - map[int]wgpu.BindGroupLayoutDescriptor: layouts keyed by group, entries sorted by binding
//   - map[int]map[int]string: declared variable names keyed by group then binding
func parseBindGroupLayouts(source string, visibility wgpu.ShaderStage) (map[int]wgpu.BindGroupLayoutDescriptor, map[int]map[int]string) {
	cleaned := stripComments(source)
	sizes := structLayouts(parseStructs(cleaned))

	entries := make(map[int][]wgpu.BindGroupLayoutEntry)
	names := make(map[int]map[int]string)
	for _, m := range resourceRegex.FindAllStringSubmatch(cleaned, -1) {
		group, _ := strconv.Atoi(m[1])
		binding, _ := strconv.Atoi(m[2])
		space := strings.TrimSpace(m[3])
		typeName := strings.TrimSpace(m[5])

		entry := layoutEntryFor(uint32(binding), visibility, space, typeName)
		if entry.Buffer.Type != wgpu.BufferBindingTypeUndefined {
			if tl, ok := layoutOf(typeName, sizes); ok {
				entry.Buffer.MinBindingSize = tl.size
			}
		}
		entries[group] = append(entries[group], entry)

		if names[group] == nil {
			names[group] = make(map[int]string)
		}
		names[group][binding] = strings.TrimSpace(m[4])
	}

	descriptors := make(map[int]wgpu.BindGroupLayoutDescriptor, len(entries))
	for group, list := range entries {
		sort.Slice(list, func(i, j int) bool { return list[i].Binding < list[j].Binding })
		descriptors[group] = wgpu.BindGroupLayoutDescriptor{Entries: list}
	}
	return descriptors, names
}

// parseEntryPoint returns the name of the first function annotated for the stage, or ""
// when there is none.
//
// Parameters:
//   - source: WGSL source
//   - shaderType: the stage to look for
//
// Returns:
//   - string: the entry point name
func parseEntryPoint(source string, shaderType ShaderType) string {
	re, ok := entryPointRegexes[shaderType]
	if !ok {
		return ""
	}
	if m := re.FindStringSubmatch(stripComments(source)); m != nil {
		return m[1]
	}
	return ""
}

// parseStructs extracts every struct declaration from comment-free source.
func parseStructs(source string) []structDecl {
	matches := structRegex.FindAllStringSubmatch(source, -1)
	decls := make([]structDecl, 0, len(matches))
	for _, m := range matches {
		decls = append(decls, structDecl{name: m[1], fields: parseMembers(m[2])})
	}
	return decls
}

// parseMembers splits a struct body into members, keeping commas inside <...> intact.
func parseMembers(body string) []structField {
	var fields []structField
	for _, part := range splitTopLevel(body) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := memberRegex.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		f := structField{
			name:     m[1],
			typeName: strings.TrimSpace(m[2]),
			location: -1,
			builtin:  builtinAttrRegex.MatchString(part),
		}
		if loc := locationAttrRegex.FindStringSubmatch(part); loc != nil {
			f.location, _ = strconv.Atoi(loc[1])
		}
		fields = append(fields, f)
	}
	return fields
}
