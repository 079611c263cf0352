package meshes

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/ericroy/fplbase/buffers"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appendTestVertex lays one vertex out as [position3f, texcoord2f],
// matching a 20 byte stride
func appendTestVertex(data []byte, x, y, z, u, v float32) []byte {

	for _, f := range []float32{x, y, z, u, v} {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
	}

	return data
}

func TestComputeBounds(t *testing.T) {

	format := []buffers.Attribute{buffers.AttrPosition3f, buffers.AttrTexCoord2f, buffers.AttrEnd}
	stride := buffers.Stride(format)
	require.Equal(t, int32(20), stride)

	var data []byte
	data = appendTestVertex(data, 1, -2, 5, 0, 0)
	data = appendTestVertex(data, -4, 7, 0.5, 1, 0)
	data = appendTestVertex(data, 2, 0, -3, 0, 1)

	minPos, maxPos := computeBounds(data, 3, stride, buffers.OffsetOf(format, buffers.AttrPosition3f))

	assert.Equal(t, float32(-4), minPos.X())
	assert.Equal(t, float32(-2), minPos.Y())
	assert.Equal(t, float32(-3), minPos.Z())

	assert.Equal(t, float32(2), maxPos.X())
	assert.Equal(t, float32(7), maxPos.Y())
	assert.Equal(t, float32(5), maxPos.Z())
}

func TestComputeBoundsSingleVertex(t *testing.T) {

	var data []byte
	data = appendTestVertex(data, 3, 4, 5, 0, 0)

	minPos, maxPos := computeBounds(data, 1, 20, 0)
	assert.Equal(t, minPos, maxPos)
	assert.Equal(t, float32(3), minPos.X())
	assert.Equal(t, float32(4), minPos.Y())
	assert.Equal(t, float32(5), minPos.Z())
}

func TestComputeBoundsPositionNotFirst(t *testing.T) {

	// [color4ub, position3f]: position sits at byte offset 4
	format := []buffers.Attribute{buffers.AttrColor4ub, buffers.AttrPosition3f, buffers.AttrEnd}
	stride := buffers.Stride(format)
	require.Equal(t, int32(16), stride)

	var data []byte
	for _, p := range [][3]float32{{0, 0, 0}, {-1, 8, 2}, {5, -6, 1}} {

		data = append(data, 255, 255, 255, 255)
		for _, f := range p {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
		}
	}

	minPos, maxPos := computeBounds(data, 3, stride, buffers.OffsetOf(format, buffers.AttrPosition3f))

	assert.Equal(t, float32(-1), minPos.X())
	assert.Equal(t, float32(-6), minPos.Y())
	assert.Equal(t, float32(0), minPos.Z())

	assert.Equal(t, float32(5), maxPos.X())
	assert.Equal(t, float32(8), maxPos.Y())
	assert.Equal(t, float32(2), maxPos.Z())
}

func TestReadVec3(t *testing.T) {

	var data []byte
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(1.5))
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(-2.25))
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(10))

	v := readVec3(data, 0)
	assert.Equal(t, float32(1.5), v.X())
	assert.Equal(t, float32(-2.25), v.Y())
	assert.Equal(t, float32(10), v.Z())
}

func TestRenderArrayRejectsBadInput(t *testing.T) {

	format := []buffers.Attribute{buffers.AttrPosition3f, buffers.AttrEnd}

	var data []byte
	data = appendTestVertex(data, 0, 0, 0, 0, 0)

	assert.Panics(t, func() { RenderArray(Primitive_Triangles, 0, format, 12, data) })

	// Two 12 byte vertices promised but only 20 bytes provided
	assert.Panics(t, func() { RenderArray(Primitive_Triangles, 2, format, 12, data) })
}

func TestRenderArrayIndexedRejectsBadInput(t *testing.T) {

	format := []buffers.Attribute{buffers.AttrPosition3f, buffers.AttrEnd}

	var data []byte
	data = appendTestVertex(data, 0, 0, 0, 0, 0)

	assert.Panics(t, func() { RenderArrayIndexed(Primitive_Triangles, nil, format, 12, data) })
	assert.Panics(t, func() { RenderArrayIndexed(Primitive_Triangles, []uint16{0, 1, 2}, format, 12, nil) })
}

func TestPrimitiveToGL(t *testing.T) {

	assert.Equal(t, uint32(gl.TRIANGLES), Primitive_Triangles.ToGL())
	assert.Equal(t, uint32(gl.TRIANGLE_STRIP), Primitive_TriangleStrip.ToGL())
	assert.Equal(t, uint32(gl.TRIANGLE_FAN), Primitive_TriangleFan.ToGL())
	assert.Equal(t, uint32(gl.LINES), Primitive_Lines.ToGL())
	assert.Equal(t, uint32(gl.POINTS), Primitive_Points.ToGL())
}
