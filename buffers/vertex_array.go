package buffers

import (
	"github.com/ericroy/fplbase/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray wraps a GPU vertex array object recording attribute bindings,
// so a draw only needs to bind the VAO instead of re-issuing pointers.
type VertexArray struct {
	Id uint32
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

func (va *VertexArray) IsValid() bool {
	return va.Id != 0
}

// Fill records the attribute bindings of vbo's data, laid out per format,
// into the VAO. Leaves the VAO unbound so following buffer setup doesn't
// accidentally attach to it
func (va *VertexArray) Fill(vbo *VertexBuffer, format []Attribute) {

	va.Bind()
	vbo.Bind()
	SetAttributes(format, vbo.Stride)
	va.UnBind()
}

// Delete releases the VAO. Safe to call more than once
func (va *VertexArray) Delete() {

	if va.Id == 0 {
		return
	}

	gl.DeleteVertexArrays(1, &va.Id)
	va.Id = 0
}

func NewVertexArray() VertexArray {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL vertex array object")
	}

	return vao
}

// SetAttributes enables and points the fixed slot of every attribute in
// format at the currently bound vertex buffer, using byte offsets within
// a vertex of the given stride
func SetAttributes(format []Attribute, stride int32) {

	offset := int32(0)
	for _, a := range format {

		if a == AttrEnd {
			return
		}

		gl.EnableVertexAttribArray(a.Slot())
		gl.VertexAttribPointerWithOffset(a.Slot(), a.CompCount(), a.GLType(), a.Normalized(), stride, uintptr(offset))
		offset += a.Size()
	}
}

// UnsetAttributes disables every slot SetAttributes enabled for format.
// Must traverse the same format the matching Set call did
func UnsetAttributes(format []Attribute) {

	for _, a := range format {

		if a == AttrEnd {
			return
		}

		gl.DisableVertexAttribArray(a.Slot())
	}
}
