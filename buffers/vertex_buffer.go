package buffers

import (
	"github.com/ericroy/fplbase/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexBuffer wraps a GPU vertex buffer holding interleaved vertex data.
// Stride is the byte size of one vertex as given by the vertex format.
type VertexBuffer struct {
	Id     uint32
	Stride int32
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.Id)
}

func (vb *VertexBuffer) UnBind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (vb *VertexBuffer) IsValid() bool {
	return vb.Id != 0
}

// SetData uploads raw interleaved vertex bytes into the bound buffer
func (vb *VertexBuffer) SetData(data []byte, usage BufUsage) {

	vb.Bind()

	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, gl.Ptr(nil), usage.ToGL())
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(&data[0]), usage.ToGL())
	}
}

// Delete releases the GPU buffer. Safe to call more than once
func (vb *VertexBuffer) Delete() {

	if vb.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &vb.Id)
	vb.Id = 0
}

func NewVertexBuffer(stride int32) VertexBuffer {

	vb := VertexBuffer{Stride: stride}

	gl.GenBuffers(1, &vb.Id)
	if vb.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	return vb
}
