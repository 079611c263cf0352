// The renderer package holds the shared render state that shaders and
// meshes read at draw time: current camera, transforms, lighting, elapsed
// time, skinning bones and the capability tier of the active GL context.
package renderer

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// FeatureLevel is the capability tier of the active GPU/driver combination.
// Vertex array objects and instanced drawing require FeatureLevel30.
type FeatureLevel int32

const (
	FeatureLevel20 FeatureLevel = iota
	FeatureLevel30
)

func (f FeatureLevel) String() string {

	switch f {
	case FeatureLevel20:
		return "FeatureLevel20"
	case FeatureLevel30:
		return "FeatureLevel30"
	default:
		return "Unknown"
	}
}

type Viewport struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// NumVec4InBoneTransform is the number of vec4 rows composing one bone's
// affine transform in Renderer.BoneTransforms
const NumVec4InBoneTransform = 3

type Renderer struct {
	Model               gglm.Mat4
	ModelViewProjection gglm.Mat4
	Color               gglm.Vec4
	LightPos            gglm.Vec3
	CameraPos           gglm.Vec3
	Time                float64

	// BoneTransforms holds NumVec4InBoneTransform vec4 rows per bone, the
	// i'th triple being the affine transform of the i'th skeletal bone.
	// Must be non-nil whenever NumBones > 0
	BoneTransforms []gglm.Vec4
	NumBones       int32

	FeatureLevel FeatureLevel

	lastError string
}

func NewRenderer(featureLevel FeatureLevel) *Renderer {

	return &Renderer{
		Model:               gglm.NewMat4Diag(1),
		ModelViewProjection: gglm.NewMat4Diag(1),
		Color:               gglm.NewVec4(1, 1, 1, 1),
		FeatureLevel:        featureLevel,
	}
}

func (r *Renderer) SetViewport(v Viewport) {
	gl.Viewport(v.X, v.Y, v.Width, v.Height)
}

// SupportsVertexArrays reports whether meshes should record their attribute
// bindings into a VAO at load time
func (r *Renderer) SupportsVertexArrays() bool {
	return r.FeatureLevel >= FeatureLevel30
}

// SupportsInstancing reports whether instanced draws are available
func (r *Renderer) SupportsInstancing() bool {
	return r.FeatureLevel >= FeatureLevel30
}

// SetLastError records the most recent shader load/compile error message
func (r *Renderer) SetLastError(msg string) {
	r.lastError = msg
}

func (r *Renderer) LastError() string {
	return r.lastError
}
