package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureLevelGating(t *testing.T) {

	r := NewRenderer(FeatureLevel20)
	assert.False(t, r.SupportsVertexArrays())
	assert.False(t, r.SupportsInstancing())

	r = NewRenderer(FeatureLevel30)
	assert.True(t, r.SupportsVertexArrays())
	assert.True(t, r.SupportsInstancing())
}

func TestLastError(t *testing.T) {

	r := NewRenderer(FeatureLevel30)
	assert.Equal(t, "", r.LastError())

	r.SetLastError("compile failed")
	assert.Equal(t, "compile failed", r.LastError())
}

func TestNewRendererDefaults(t *testing.T) {

	r := NewRenderer(FeatureLevel30)

	// Identity transforms and opaque white color
	assert.Equal(t, float32(1), r.Model.Data[0][0])
	assert.Equal(t, float32(0), r.Model.Data[0][1])
	assert.Equal(t, float32(1), r.ModelViewProjection.Data[3][3])
	assert.Equal(t, [4]float32{1, 1, 1, 1}, r.Color.Data)

	assert.Equal(t, int32(0), r.NumBones)
	assert.Nil(t, r.BoneTransforms)
}
