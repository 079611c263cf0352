package materials

import (
	"github.com/ericroy/fplbase/assert"
	"github.com/ericroy/fplbase/renderer"
	"github.com/ericroy/fplbase/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	lastMatId uint32
)

type BlendMode int

const (
	BlendMode_Off BlendMode = iota
	BlendMode_Alpha
	BlendMode_Add
	BlendMode_Multiply
	BlendMode_PreMultipliedAlpha
)

func (b BlendMode) Apply() {

	switch b {
	case BlendMode_Off:
		gl.Disable(gl.BLEND)

	case BlendMode_Alpha:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	case BlendMode_Add:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE)

	case BlendMode_Multiply:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.DST_COLOR, gl.ZERO)

	case BlendMode_PreMultipliedAlpha:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	default:
		assert.T(false, "Unexpected BlendMode value '%v'", b)
	}
}

// Material is the per-index-chunk render state applied right before that
// chunk draws: a list of GL texture handles bound to consecutive texture
// units, plus the blend state. Materials reference textures, they never
// own them.
type Material struct {
	Id   uint32
	Name string

	// Textures[i] is bound to texture unit i, matching the shader's
	// texture_unit_i sampler
	Textures []uint32
	Blend    BlendMode
}

// Set binds the material's textures and blend state into the GL context
func (m *Material) Set(rend *renderer.Renderer) {

	for i := 0; i < len(m.Textures); i++ {

		gl.ActiveTexture(uint32(gl.TEXTURE0 + i))
		gl.BindTexture(gl.TEXTURE_2D, m.Textures[i])
	}

	m.Blend.Apply()
}

func getNewMatId() uint32 {
	lastMatId++
	return lastMatId
}

func NewMaterial(matName string, textures ...uint32) Material {

	assert.T(len(textures) <= shaders.MaxTexturesPerShader, "Material '%s' wants %d textures but shaders support at most %d", matName, len(textures), shaders.MaxTexturesPerShader)

	return Material{
		Id:       getNewMatId(),
		Name:     matName,
		Textures: textures,
	}
}
