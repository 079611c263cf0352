package shaders

import (
	"fmt"

	"github.com/ericroy/fplbase/assert"
	"github.com/ericroy/fplbase/logging"
	"github.com/ericroy/fplbase/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxTexturesPerShader is the number of 'texture_unit_N' sampler uniforms
// a program may declare. Each present sampler is bound to texture unit N
const MaxTexturesPerShader = 8

// Shader owns a linked GPU program plus its two stage objects and caches
// the locations of a fixed set of well-known uniforms. A cached location
// of -1 means the uniform is not present in the program and is skipped
// on Set.
type Shader struct {
	Program uint32
	Vs      uint32
	Ps      uint32

	UniformModelViewProjection int32
	UniformModel               int32
	UniformColor               int32
	UniformLightPos            int32
	UniformCameraPos           int32
	UniformTime                int32
	UniformBoneTransforms      int32

	// Basename is the shader source path without a stage extension
	Basename string
	Defines  []string

	rend *renderer.Renderer
}

// Init adopts existing GPU handles and resets all cached uniform locations
func (s *Shader) Init(program, vs, ps uint32, defines []string, rend *renderer.Renderer) {

	s.Program = program
	s.Vs = vs
	s.Ps = ps
	s.UniformModelViewProjection = -1
	s.UniformModel = -1
	s.UniformColor = -1
	s.UniformLightPos = -1
	s.UniformCameraPos = -1
	s.UniformTime = -1
	s.UniformBoneTransforms = -1
	s.Defines = defines
	s.rend = rend
}

func (s *Shader) IsValid() bool {
	return s.Program != 0
}

// Reload synchronously reads, preprocesses and recompiles both stages.
// On a source loading failure the current program is left untouched and
// false is returned, with the error recorded on the renderer
func (s *Shader) Reload(basename string, defines []string) bool {

	s.Basename = basename
	s.Defines = defines

	pair, err := LoadSourcePair(basename, defines)
	if err != nil {

		logging.ErrLog.Println("Failed to load shader '", basename, "'. Err: ", err)
		s.rend.SetLastError(err.Error())
		return false
	}

	if err := s.Recompile(pair); err != nil {
		return false
	}

	return true
}

// Load reads and preprocesses both stage sources into an owned pair.
// It performs no GPU work, so it may run off the GL thread; the returned
// pair must be handed to Finalize on the GL thread
func (s *Shader) Load() (*ShaderSourcePair, error) {

	pair, err := LoadSourcePair(s.Basename, s.Defines)
	if err != nil {

		logging.ErrLog.Println("Failed to load shader '", s.Basename, "'. Err: ", err)
		s.rend.SetLastError(err.Error())
		return nil, err
	}

	return pair, nil
}

// Finalize consumes a pair produced by Load and performs the GPU
// compilation and link. Must run on the GL-owning thread. A nil pair is
// a no-op so a failed Load can be finalized safely
func (s *Shader) Finalize(pair *ShaderSourcePair) error {

	if pair == nil {
		return nil
	}

	return s.Recompile(pair)
}

// Recompile builds a fresh program from the pair and swaps it in. The
// previous program is only released after the new one compiled and linked,
// so a failed recompile never destroys a valid shader
func (s *Shader) Recompile(pair *ShaderSourcePair) error {

	program, vs, ps, err := CompileAndLink(pair.VertexShader, pair.FragmentShader)
	if err != nil {

		s.rend.SetLastError(err.Error())
		return err
	}

	s.Reset(program, vs, ps)
	s.InitializeUniforms()
	return nil
}

// Reset releases the current GPU objects and adopts new ones
func (s *Shader) Reset(program, vs, ps uint32) {

	s.Clear()
	s.Program = program
	s.Vs = vs
	s.Ps = ps
}

// Clear deletes the stage and program objects. Safe to call more than once
func (s *Shader) Clear() {

	if s.Vs != 0 {
		gl.DeleteShader(s.Vs)
		s.Vs = 0
	}

	if s.Ps != 0 {
		gl.DeleteShader(s.Ps)
		s.Ps = 0
	}

	if s.Program != 0 {
		gl.DeleteProgram(s.Program)
		s.Program = 0
	}
}

// FindUniform returns the location of a uniform by name, or -1 when the
// linked program doesn't declare it
func (s *Shader) FindUniform(uniformName string) int32 {

	gl.UseProgram(s.Program)
	return gl.GetUniformLocation(s.Program, gl.Str(uniformName+"\x00"))
}

// SetUniform pushes a 1/2/3/4 component float vector, or a 4x4 column-major
// matrix when len(values) == 16. Any other component count is a bug in the
// caller
func SetUniform(uniformLoc int32, values []float32) {

	switch len(values) {
	case 1:
		gl.Uniform1f(uniformLoc, values[0])
	case 2:
		gl.Uniform2fv(uniformLoc, 1, &values[0])
	case 3:
		gl.Uniform3fv(uniformLoc, 1, &values[0])
	case 4:
		gl.Uniform4fv(uniformLoc, 1, &values[0])
	case 16:
		gl.UniformMatrix4fv(uniformLoc, 1, false, &values[0])
	default:
		assert.T(false, "SetUniform got %d components; must be 1, 2, 3, 4 or 16", len(values))
	}
}

// InitializeUniforms looks up and caches the locations of the well-known
// uniforms. Uniforms absent from the program stay at -1. Present
// texture_unit_N samplers are immediately bound to texture unit N
func (s *Shader) InitializeUniforms() {

	gl.UseProgram(s.Program)

	s.UniformModelViewProjection = gl.GetUniformLocation(s.Program, gl.Str("model_view_projection\x00"))
	s.UniformModel = gl.GetUniformLocation(s.Program, gl.Str("model\x00"))

	s.UniformColor = gl.GetUniformLocation(s.Program, gl.Str("color\x00"))

	s.UniformLightPos = gl.GetUniformLocation(s.Program, gl.Str("light_pos\x00"))
	s.UniformCameraPos = gl.GetUniformLocation(s.Program, gl.Str("camera_pos\x00"))

	s.UniformTime = gl.GetUniformLocation(s.Program, gl.Str("time\x00"))

	// An array of vec4's, three of which compose the affine transform
	// of one bone
	s.UniformBoneTransforms = gl.GetUniformLocation(s.Program, gl.Str("bone_transforms\x00"))

	for i := 0; i < MaxTexturesPerShader; i++ {

		loc := gl.GetUniformLocation(s.Program, gl.Str(fmt.Sprintf("texture_unit_%d\x00", i)))
		if loc >= 0 {
			gl.Uniform1i(loc, int32(i))
		}
	}
}

// Set activates the program and pushes the current renderer state into
// every uniform the program declares
func (s *Shader) Set(rend *renderer.Renderer) {

	gl.UseProgram(s.Program)

	if s.UniformModelViewProjection >= 0 {
		gl.UniformMatrix4fv(s.UniformModelViewProjection, 1, false, &rend.ModelViewProjection.Data[0][0])
	}

	if s.UniformModel >= 0 {
		gl.UniformMatrix4fv(s.UniformModel, 1, false, &rend.Model.Data[0][0])
	}

	if s.UniformColor >= 0 {
		gl.Uniform4fv(s.UniformColor, 1, &rend.Color.Data[0])
	}

	if s.UniformLightPos >= 0 {
		gl.Uniform3fv(s.UniformLightPos, 1, &rend.LightPos.Data[0])
	}

	if s.UniformCameraPos >= 0 {
		gl.Uniform3fv(s.UniformCameraPos, 1, &rend.CameraPos.Data[0])
	}

	if s.UniformTime >= 0 {
		gl.Uniform1f(s.UniformTime, float32(rend.Time))
	}

	if s.UniformBoneTransforms >= 0 && rend.NumBones > 0 {
		gl.Uniform4fv(s.UniformBoneTransforms, boneUniformCount(rend), &rend.BoneTransforms[0].Data[0])
	}
}

// boneUniformCount returns the number of vec4 elements the bone transform
// upload covers, asserting the renderer actually holds that many
func boneUniformCount(rend *renderer.Renderer) int32 {

	needed := int(rend.NumBones) * renderer.NumVec4InBoneTransform
	assert.T(len(rend.BoneTransforms) >= needed, "Renderer reports %d bones needing %d vec4s but BoneTransforms holds %d", rend.NumBones, needed, len(rend.BoneTransforms))

	return rend.NumBones * renderer.NumVec4InBoneTransform
}
