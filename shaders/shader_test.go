package shaders

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/ericroy/fplbase/renderer"
	"github.com/stretchr/testify/assert"
)

func TestShaderInitResetsUniformLocations(t *testing.T) {

	rend := renderer.NewRenderer(renderer.FeatureLevel30)

	s := Shader{
		UniformModelViewProjection: 3,
		UniformColor:               7,
	}
	s.Init(0, 0, 0, []string{"LIT"}, rend)

	assert.Equal(t, int32(-1), s.UniformModelViewProjection)
	assert.Equal(t, int32(-1), s.UniformModel)
	assert.Equal(t, int32(-1), s.UniformColor)
	assert.Equal(t, int32(-1), s.UniformLightPos)
	assert.Equal(t, int32(-1), s.UniformCameraPos)
	assert.Equal(t, int32(-1), s.UniformTime)
	assert.Equal(t, int32(-1), s.UniformBoneTransforms)

	assert.Equal(t, []string{"LIT"}, s.Defines)
	assert.False(t, s.IsValid())
}

func TestBoneUniformCount(t *testing.T) {

	rend := renderer.NewRenderer(renderer.FeatureLevel30)
	rend.NumBones = 2
	rend.BoneTransforms = make([]gglm.Vec4, 2*renderer.NumVec4InBoneTransform)

	assert.Equal(t, int32(6), boneUniformCount(rend))

	// A bone count promising more vec4s than BoneTransforms holds would
	// read past the slice on upload
	rend.NumBones = 3
	assert.Panics(t, func() { boneUniformCount(rend) })

	rend.NumBones = 1
	rend.BoneTransforms = nil
	assert.Panics(t, func() { boneUniformCount(rend) })
}

func TestShaderFinalizeNilPairIsNoOp(t *testing.T) {

	s := Shader{}
	s.Init(0, 0, 0, nil, renderer.NewRenderer(renderer.FeatureLevel20))

	// A failed Load hands over a nil pair; Finalize must tolerate it
	assert.NoError(t, s.Finalize(nil))
	assert.False(t, s.IsValid())
}
