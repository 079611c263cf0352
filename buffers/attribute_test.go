package buffers

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeTable(t *testing.T) {

	tests := []struct {
		attr       Attribute
		slot       uint32
		compCount  int32
		glType     uint32
		normalized bool
		size       int32
	}{
		{AttrPosition3f, SlotPosition, 3, gl.FLOAT, false, 12},
		{AttrNormal3f, SlotNormal, 3, gl.FLOAT, false, 12},
		{AttrTangent4f, SlotTangent, 4, gl.FLOAT, false, 16},
		{AttrTexCoord2f, SlotTexCoord, 2, gl.FLOAT, false, 8},
		{AttrTexCoordAlt2f, SlotTexCoordAlt, 2, gl.FLOAT, false, 8},
		{AttrColor4ub, SlotColor, 4, gl.UNSIGNED_BYTE, true, 4},
		{AttrBoneIndices4ub, SlotBoneIndices, 4, gl.UNSIGNED_BYTE, false, 4},
		{AttrBoneWeights4ub, SlotBoneWeights, 4, gl.UNSIGNED_BYTE, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.attr.String(), func(t *testing.T) {

			assert.Equal(t, tt.slot, tt.attr.Slot())
			assert.Equal(t, tt.compCount, tt.attr.CompCount())
			assert.Equal(t, tt.glType, tt.attr.GLType())
			assert.Equal(t, tt.normalized, tt.attr.Normalized())
			assert.Equal(t, tt.size, tt.attr.Size())
		})
	}
}

func TestStride(t *testing.T) {

	format := []Attribute{AttrPosition3f, AttrTexCoord2f, AttrEnd}
	assert.Equal(t, int32(20), Stride(format))

	skinned := []Attribute{AttrPosition3f, AttrNormal3f, AttrTangent4f, AttrTexCoord2f, AttrBoneIndices4ub, AttrBoneWeights4ub, AttrEnd}
	assert.Equal(t, int32(56), Stride(skinned))

	// Attributes after the end marker are ignored
	assert.Equal(t, int32(12), Stride([]Attribute{AttrPosition3f, AttrEnd, AttrTexCoord2f}))
}

func TestStrideUnterminatedPanics(t *testing.T) {
	assert.Panics(t, func() { Stride([]Attribute{AttrPosition3f, AttrTexCoord2f}) })
}

func TestOffsetOf(t *testing.T) {

	format := []Attribute{AttrPosition3f, AttrTexCoord2f, AttrEnd}

	require.Equal(t, int32(0), OffsetOf(format, AttrPosition3f))
	require.Equal(t, int32(12), OffsetOf(format, AttrTexCoord2f))

	skinned := []Attribute{AttrPosition3f, AttrNormal3f, AttrColor4ub, AttrBoneWeights4ub, AttrEnd}
	assert.Equal(t, int32(24), OffsetOf(skinned, AttrColor4ub))
	assert.Equal(t, int32(28), OffsetOf(skinned, AttrBoneWeights4ub))
}

func TestOffsetOfMissingAttributePanics(t *testing.T) {
	assert.Panics(t, func() { OffsetOf([]Attribute{AttrPosition3f, AttrEnd}, AttrNormal3f) })
}

func TestHasAttribute(t *testing.T) {

	format := []Attribute{AttrPosition3f, AttrColor4ub, AttrEnd}

	assert.True(t, HasAttribute(format, AttrPosition3f))
	assert.True(t, HasAttribute(format, AttrColor4ub))
	assert.False(t, HasAttribute(format, AttrNormal3f))

	// Nothing past the end marker counts
	assert.False(t, HasAttribute([]Attribute{AttrPosition3f, AttrEnd, AttrColor4ub}, AttrColor4ub))
}
