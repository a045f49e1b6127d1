package shader

import (
	"strconv"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// primitiveLayouts holds size and alignment of the built-in host-shareable types.
// See https://www.w3.org/TR/WGSL/#alignment-and-size.
var primitiveLayouts = map[string]typeLayout{
	"f32":         {4, 4},
	"i32":         {4, 4},
	"u32":         {4, 4},
	"vec2f":       {8, 8},
	"vec2<f32>":   {8, 8},
	"vec3f":       {12, 16},
	"vec3<f32>":   {12, 16},
	"vec4f":       {16, 16},
	"vec4<f32>":   {16, 16},
	"vec2u":       {8, 8},
	"vec2<u32>":   {8, 8},
	"vec3u":       {12, 16},
	"vec3<u32>":   {12, 16},
	"vec4u":       {16, 16},
	"vec4<u32>":   {16, 16},
	"mat3x3f":     {48, 16},
	"mat3x3<f32>": {48, 16},
	"mat4x4f":     {64, 16},
	"mat4x4<f32>": {64, 16},
}

// alignUp rounds v up to a multiple of align, which must be a power of two.
func alignUp(align, v uint64) uint64 {
	if align == 0 {
		return v
	}
	return (v + align - 1) &^ (align - 1)
}

// layoutOf resolves the layout of a type name against primitives and already-sized structs.
// Fixed-size arrays are supported; runtime-sized arrays resolve to one element stride.
func layoutOf(typeName string, known map[string]typeLayout) (typeLayout, bool) {
	if tl, ok := primitiveLayouts[typeName]; ok {
		return tl, true
	}
	if tl, ok := known[typeName]; ok {
		return tl, true
	}
	if !strings.HasPrefix(typeName, "array<") || !strings.HasSuffix(typeName, ">") {
		return typeLayout{}, false
	}

	elemType, count, sized := strings.Cut(typeName[len("array<"):len(typeName)-1], ",")
	elem, ok := layoutOf(strings.TrimSpace(elemType), known)
	if !ok {
		return typeLayout{}, false
	}
	stride := alignUp(elem.align, elem.size)
	if !sized {
		return typeLayout{stride, elem.align}, true
	}
	n, err := strconv.ParseUint(strings.TrimSpace(count), 10, 64)
	if err != nil {
		return typeLayout{}, false
	}
	return typeLayout{n * stride, elem.align}, true
}

// structLayout sizes a struct by placing each member at its aligned offset and rounding the
// total up to the largest member alignment. Builtin members are ignored.
func structLayout(decl structDecl, known map[string]typeLayout) (typeLayout, bool) {
	var offset uint64
	maxAlign := uint64(1)
	for _, f := range decl.fields {
		if f.builtin {
			continue
		}
		tl, ok := layoutOf(f.typeName, known)
		if !ok {
			return typeLayout{}, false
		}
		offset = alignUp(tl.align, offset) + tl.size
		maxAlign = max(maxAlign, tl.align)
	}
	return typeLayout{alignUp(maxAlign, offset), maxAlign}, true
}

// structLayouts sizes every struct, repeating until no more can be resolved so that
// structs may be declared after the structs that contain them.
func structLayouts(decls []structDecl) map[string]typeLayout {
	resolved := make(map[string]typeLayout, len(decls))
	pending := decls
	for len(pending) > 0 {
		var next []structDecl
		for _, d := range pending {
			if tl, ok := structLayout(d, resolved); ok {
				resolved[d.name] = tl
			} else {
				next = append(next, d)
			}
		}
		if len(next) == len(pending) {
			break
		}
		pending = next
	}
	return resolved
}

// layoutEntryFor classifies a resource declaration into a bind group layout entry.
//
// Parameters:
//   - binding: the @binding index
//   - visibility: the stage flag
//   - space: the address space between var< and >, empty for handle types
//   - typeName: the declared type
//
// Returns:
//   - wgpu.BindGroupLayoutEntry: the populated entry
func layoutEntryFor(binding uint32, visibility wgpu.ShaderStage, space, typeName string) wgpu.BindGroupLayoutEntry {
	entry := wgpu.BindGroupLayoutEntry{Binding: binding, Visibility: visibility}

	switch {
	case space == "uniform":
		entry.Buffer.Type = wgpu.BufferBindingTypeUniform
	case strings.HasPrefix(space, "storage"):
		entry.Buffer.Type = wgpu.BufferBindingTypeReadOnlyStorage
		if strings.Contains(space, "read_write") {
			entry.Buffer.Type = wgpu.BufferBindingTypeStorage
		}
	case typeName == "sampler":
		entry.Sampler.Type = wgpu.SamplerBindingTypeFiltering
	case strings.HasPrefix(typeName, "texture_"):
		base, param, _ := strings.Cut(typeName, "<")
		param = strings.TrimSpace(strings.TrimSuffix(param, ">"))
		entry.Texture.ViewDimension = textureViewDimensions[base]
		entry.Texture.SampleType = textureSampleTypes[param]
	}
	return entry
}

// isVertexInput reports whether every member of decl is a @location attribute.
func isVertexInput(decl structDecl) bool {
	if len(decl.fields) == 0 {
		return false
	}
	for _, f := range decl.fields {
		if f.builtin || f.location < 0 {
			return false
		}
	}
	return true
}

// vertexLayoutFor packs the members of a vertex input struct tightly in declaration order.
func vertexLayoutFor(decl structDecl) (wgpu.VertexBufferLayout, bool) {
	attrs := make([]wgpu.VertexAttribute, 0, len(decl.fields))
	var offset uint64
	for _, f := range decl.fields {
		vf, ok := vertexAttrFormats[f.typeName]
		if !ok {
			return wgpu.VertexBufferLayout{}, false
		}
		attrs = append(attrs, wgpu.VertexAttribute{
			Format:         vf.format,
			Offset:         offset,
			ShaderLocation: uint32(f.location),
		})
		offset += vf.size
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}, true
}

// stripComments removes // line comments and nestable /* */ block comments.
func stripComments(source string) string {
	var sb strings.Builder
	sb.Grow(len(source))
	depth := 0
	for i := 0; i < len(source); i++ {
		if i+1 < len(source) {
			switch source[i : i+2] {
			case "/*":
				depth++
				i++
				continue
			case "*/":
				if depth > 0 {
					depth--
					i++
					continue
				}
			case "//":
				if depth == 0 {
					for i < len(source) && source[i] != '\n' {
						i++
					}
					if i < len(source) {
						sb.WriteByte('\n')
					}
					continue
				}
			}
		}
		if depth == 0 {
			sb.WriteByte(source[i])
		}
	}
	return sb.String()
}

// splitTopLevel splits a struct body on commas outside angle brackets, so that
// array<T, N> stays a single member.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
