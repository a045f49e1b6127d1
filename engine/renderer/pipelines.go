package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

// DefaultPipelines builds the three pipelines a planet scene draws with:
//   - planet: lit triangle list, depth tested and written
//   - sprite: additive camera-facing quad, depth tested but not written
//   - stars: unlit point list
//
// Returns:
//   - []pipeline.Pipeline: the pipeline descriptions, not yet registered on a GPU
//   - error: an error if a shader asset fails to parse
func DefaultPipelines() ([]pipeline.Pipeline, error) {
	planetVS, planetFS, err := shaderPair(scene.PipelinePlanet, "planet.wgsl")
	if err != nil {
		return nil, err
	}
	spriteVS, spriteFS, err := shaderPair(scene.PipelineSprite, "sprite.wgsl")
	if err != nil {
		return nil, err
	}
	starsVS, starsFS, err := shaderPair(scene.PipelineStars, "stars.wgsl")
	if err != nil {
		return nil, err
	}

	return []pipeline.Pipeline{
		pipeline.NewPipeline(scene.PipelinePlanet,
			pipeline.WithVertexShader(planetVS),
			pipeline.WithFragmentShader(planetFS),
		),
		pipeline.NewPipeline(scene.PipelineSprite,
			pipeline.WithVertexShader(spriteVS),
			pipeline.WithFragmentShader(spriteFS),
			pipeline.WithAdditiveBlend(),
			pipeline.WithDepthWriteEnabled(false),
		),
		pipeline.NewPipeline(scene.PipelineStars,
			pipeline.WithVertexShader(starsVS),
			pipeline.WithFragmentShader(starsFS),
			pipeline.WithTopology(wgpu.PrimitiveTopologyPointList),
		),
	}, nil
}

// shaderPair reflects the vertex and fragment stages of one asset.
func shaderPair(key, asset string) (shader.Shader, shader.Shader, error) {
	vs, err := shader.NewShaderFromAsset(key+"_vs", shader.ShaderTypeVertex, asset)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline %q: %w", key, err)
	}
	fs, err := shader.NewShaderFromAsset(key+"_fs", shader.ShaderTypeFragment, asset)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline %q: %w", key, err)
	}
	return vs, fs, nil
}
