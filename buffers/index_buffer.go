package buffers

import (
	"github.com/ericroy/fplbase/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// IndexBuffer wraps a GPU element buffer. ElemType records whether the
// elements are 16 or 32 bit wide (gl.UNSIGNED_SHORT or gl.UNSIGNED_INT).
type IndexBuffer struct {
	Id uint32
	// Count is the number of elements in the index buffer. Updated in SetData16/SetData32
	Count    int32
	ElemType uint32
}

func (ib *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.Id)
}

func (ib *IndexBuffer) UnBind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

func (ib *IndexBuffer) IsValid() bool {
	return ib.Id != 0
}

func (ib *IndexBuffer) SetData16(values []uint16) {

	ib.Bind()
	ib.Count = int32(len(values))
	ib.ElemType = gl.UNSIGNED_SHORT

	if len(values) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, gl.Ptr(nil), BufUsage_Static_Draw.ToGL())
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(values)*2, gl.Ptr(&values[0]), BufUsage_Static_Draw.ToGL())
	}
}

func (ib *IndexBuffer) SetData32(values []uint32) {

	ib.Bind()
	ib.Count = int32(len(values))
	ib.ElemType = gl.UNSIGNED_INT

	if len(values) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, gl.Ptr(nil), BufUsage_Static_Draw.ToGL())
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(values)*4, gl.Ptr(&values[0]), BufUsage_Static_Draw.ToGL())
	}
}

// Delete releases the GPU buffer. Safe to call more than once
func (ib *IndexBuffer) Delete() {

	if ib.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &ib.Id)
	ib.Id = 0
	ib.Count = 0
}

func NewIndexBuffer() IndexBuffer {

	ib := IndexBuffer{}

	gl.GenBuffers(1, &ib.Id)
	if ib.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL buffer")
	}

	return ib
}
