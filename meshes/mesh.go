package meshes

import (
	"encoding/binary"
	"math"

	"github.com/bloeys/gglm/gglm"
	"github.com/ericroy/fplbase/assert"
	"github.com/ericroy/fplbase/buffers"
	"github.com/ericroy/fplbase/materials"
	"github.com/ericroy/fplbase/renderer"
	"github.com/ericroy/fplbase/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Primitive int32

const (
	Primitive_Triangles Primitive = iota
	Primitive_TriangleStrip
	Primitive_TriangleFan
	Primitive_Lines
	Primitive_Points
)

func (p Primitive) ToGL() uint32 {

	switch p {
	case Primitive_Lines:
		return gl.LINES
	case Primitive_Points:
		return gl.POINTS
	case Primitive_TriangleStrip:
		return gl.TRIANGLE_STRIP
	case Primitive_TriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

// IndexChunk is one sub-draw of a mesh: a GPU index buffer plus the
// material applied right before it draws. The material is referenced,
// never owned.
type IndexChunk struct {
	Ibo buffers.IndexBuffer
	Mat *materials.Material
}

// Mesh owns a GPU vertex buffer uploaded once at load time, an optional
// VAO recording its attribute bindings, and zero or more index chunks
// drawn in insertion order.
type Mesh struct {
	Name string

	Vbo buffers.VertexBuffer
	Vao buffers.VertexArray

	Format      []buffers.Attribute
	NumVertices int32
	Primitive   Primitive

	// Axis aligned bounding box of the position channel
	MinPosition gglm.Vec3
	MaxPosition gglm.Vec3

	Chunks []IndexChunk
}

func NewMesh(name string, primitive Primitive) Mesh {
	return Mesh{Name: name, Primitive: primitive}
}

func (m *Mesh) IsValid() bool {
	return m.Vbo.IsValid()
}

// VertexSize returns the byte size of one vertex
func (m *Mesh) VertexSize() int32 {
	return m.Vbo.Stride
}

// LoadFromMemory uploads vertexCount interleaved vertices of vertexSize
// bytes each as an immutable GPU vertex buffer. When the feature level
// allows, the attribute bindings implied by format are recorded into a VAO
// so draws only need to bind it. minPosition/maxPosition supply the
// bounding box; pass nil for both to have it computed by scanning the
// position channel
func (m *Mesh) LoadFromMemory(rend *renderer.Renderer, vertexData []byte, vertexCount int32, vertexSize int32, format []buffers.Attribute, minPosition, maxPosition *gglm.Vec3) {

	assert.T(vertexCount > 0, "Mesh '%s' loaded with zero vertices", m.Name)
	assert.T(vertexSize >= buffers.Stride(format), "Mesh '%s' vertex size %d is smaller than the format stride %d", m.Name, vertexSize, buffers.Stride(format))
	assert.T(int(vertexCount)*int(vertexSize) == len(vertexData), "Mesh '%s' got %d bytes of vertex data but %d vertices of %d bytes each were promised", m.Name, len(vertexData), vertexCount, vertexSize)

	m.Format = append([]buffers.Attribute{}, format...)
	m.NumVertices = vertexCount

	m.Vbo = buffers.NewVertexBuffer(vertexSize)
	m.Vbo.SetData(vertexData, buffers.BufUsage_Static_Draw)

	if rend.SupportsVertexArrays() {

		m.Vao = buffers.NewVertexArray()
		m.Vao.Fill(&m.Vbo, m.Format)
	}

	if minPosition != nil && maxPosition != nil {
		m.MinPosition = *minPosition
		m.MaxPosition = *maxPosition
	} else {
		m.MinPosition, m.MaxPosition = computeBounds(vertexData, vertexCount, vertexSize, buffers.OffsetOf(m.Format, buffers.AttrPosition3f))
	}
}

// AddIndices16 appends one index chunk backed by a 16-bit static index
// buffer. Chunk insertion order is draw order
func (m *Mesh) AddIndices16(indices []uint16, mat *materials.Material) {

	ibo := buffers.NewIndexBuffer()
	ibo.SetData16(indices)
	m.Chunks = append(m.Chunks, IndexChunk{Ibo: ibo, Mat: mat})
}

// AddIndices32 appends one index chunk backed by a 32-bit static index buffer
func (m *Mesh) AddIndices32(indices []uint32, mat *materials.Material) {

	ibo := buffers.NewIndexBuffer()
	ibo.SetData32(indices)
	m.Chunks = append(m.Chunks, IndexChunk{Ibo: ibo, Mat: mat})
}

// Render binds the mesh's attribute state and issues one indexed draw per
// chunk in insertion order, each chunk first applying its material unless
// ignoreMaterial is set. A mesh without chunks issues a single non-indexed
// draw over all vertices. instances > 1 requires FeatureLevel30
func (m *Mesh) Render(rend *renderer.Renderer, ignoreMaterial bool, instances int32) {

	m.bindAttributes()

	if len(m.Chunks) > 0 {

		for i := 0; i < len(m.Chunks); i++ {

			chunk := &m.Chunks[i]
			if !ignoreMaterial && chunk.Mat != nil {
				chunk.Mat.Set(rend)
			}

			chunk.Ibo.Bind()
			m.drawElement(rend, chunk.Ibo.Count, chunk.Ibo.ElemType, instances)
		}

	} else {
		gl.DrawArrays(m.Primitive.ToGL(), 0, m.NumVertices)
	}

	m.unbindAttributes()
}

// RenderStereo draws the mesh twice per chunk (or twice in total when the
// mesh has no chunks), re-applying per-eye camera position, MVP and
// viewport and rebinding the shader's uniforms between the two passes
func (m *Mesh) RenderStereo(rend *renderer.Renderer, shader *shaders.Shader, viewports [2]renderer.Viewport, mvps [2]gglm.Mat4, cameraPositions [2]gglm.Vec3, ignoreMaterial bool, instances int32) {

	m.bindAttributes()

	prepStereo := func(eye int) {
		rend.CameraPos = cameraPositions[eye]
		rend.ModelViewProjection = mvps[eye]
		rend.SetViewport(viewports[eye])
		shader.Set(rend)
	}

	if len(m.Chunks) > 0 {

		for i := 0; i < len(m.Chunks); i++ {

			chunk := &m.Chunks[i]
			if !ignoreMaterial && chunk.Mat != nil {
				chunk.Mat.Set(rend)
			}

			chunk.Ibo.Bind()
			for eye := 0; eye < 2; eye++ {
				prepStereo(eye)
				m.drawElement(rend, chunk.Ibo.Count, chunk.Ibo.ElemType, instances)
			}
		}

	} else {

		for eye := 0; eye < 2; eye++ {
			prepStereo(eye)
			gl.DrawArrays(m.Primitive.ToGL(), 0, m.NumVertices)
		}
	}

	m.unbindAttributes()
}

// ClearPlatformDependent releases the vertex buffer, VAO and every chunk's
// index buffer. Safe to call more than once; must be called before the
// mesh is dropped
func (m *Mesh) ClearPlatformDependent() {

	m.Vbo.Delete()
	m.Vao.Delete()

	for i := 0; i < len(m.Chunks); i++ {
		m.Chunks[i].Ibo.Delete()
	}
}

func (m *Mesh) bindAttributes() {

	if m.Vao.IsValid() {
		m.Vao.Bind()
	} else {
		m.Vbo.Bind()
		buffers.SetAttributes(m.Format, m.Vbo.Stride)
	}
}

func (m *Mesh) unbindAttributes() {

	if m.Vao.IsValid() {
		m.Vao.UnBind()
	} else {
		buffers.UnsetAttributes(m.Format)
	}
}

func (m *Mesh) drawElement(rend *renderer.Renderer, count int32, elemType uint32, instances int32) {

	if instances <= 1 {
		gl.DrawElements(m.Primitive.ToGL(), count, elemType, gl.PtrOffset(0))
	} else {
		assert.T(rend.SupportsInstancing(), "Instanced draw of mesh '%s' needs %v but the context is %v", m.Name, renderer.FeatureLevel30, rend.FeatureLevel)
		gl.DrawElementsInstanced(m.Primitive.ToGL(), count, elemType, gl.PtrOffset(0), instances)
	}
}

// Scratch GL objects backing the immediate path, created lazily on first
// use and shared by every RenderArray call. Core profile contexts have no
// default VAO and no client-side vertex arrays, so caller memory is
// streamed through a transient buffer instead of pointed at directly.
var (
	scratchVao buffers.VertexArray
	scratchVbo buffers.VertexBuffer
	scratchIbo buffers.IndexBuffer
)

func bindScratch(format []buffers.Attribute, vertexSize int32, vertices []byte) {

	if !scratchVao.IsValid() {

		scratchVao = buffers.NewVertexArray()
		scratchVbo = buffers.NewVertexBuffer(vertexSize)
		scratchIbo = buffers.NewIndexBuffer()
	}

	scratchVao.Bind()
	scratchVbo.Stride = vertexSize
	scratchVbo.SetData(vertices, buffers.BufUsage_Stream_Draw)
	buffers.SetAttributes(format, vertexSize)
}

func unbindScratch(format []buffers.Attribute) {

	buffers.UnsetAttributes(format)
	scratchVao.UnBind()
}

// RenderArray is the immediate path for ephemeral or debug geometry: the
// caller's vertex bytes are uploaded into a shared stream-draw scratch
// buffer, one non-indexed draw is issued and the attributes are unset again
func RenderArray(primitive Primitive, vertexCount int32, format []buffers.Attribute, vertexSize int32, vertices []byte) {

	assert.T(vertexCount > 0, "RenderArray called with zero vertices")
	assert.T(int(vertexCount)*int(vertexSize) <= len(vertices), "RenderArray got %d bytes of vertex data but %d vertices of %d bytes each were promised", len(vertices), vertexCount, vertexSize)

	bindScratch(format, vertexSize, vertices)
	gl.DrawArrays(primitive.ToGL(), 0, vertexCount)
	unbindScratch(format)
}

// RenderArrayIndexed is RenderArray with a caller-owned 16-bit index list
func RenderArrayIndexed(primitive Primitive, indices []uint16, format []buffers.Attribute, vertexSize int32, vertices []byte) {

	assert.T(len(indices) > 0, "RenderArrayIndexed called with zero indices")
	assert.T(len(vertices) > 0, "RenderArrayIndexed called with zero vertex bytes")

	bindScratch(format, vertexSize, vertices)
	scratchIbo.SetData16(indices)
	gl.DrawElements(primitive.ToGL(), int32(len(indices)), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	unbindScratch(format)
}

// computeBounds scans the position channel of every vertex and returns the
// per-axis minimum and maximum
func computeBounds(vertexData []byte, vertexCount, vertexSize, posOffset int32) (minPos, maxPos gglm.Vec3) {

	minPos = readVec3(vertexData, posOffset)
	maxPos = minPos

	for v := int32(1); v < vertexCount; v++ {

		p := readVec3(vertexData, v*vertexSize+posOffset)
		for i := 0; i < 3; i++ {
			minPos.Data[i] = min(minPos.Data[i], p.Data[i])
			maxPos.Data[i] = max(maxPos.Data[i], p.Data[i])
		}
	}

	return minPos, maxPos
}

func readVec3(data []byte, offset int32) gglm.Vec3 {

	return gglm.NewVec3(
		math.Float32frombits(binary.LittleEndian.Uint32(data[offset:])),
		math.Float32frombits(binary.LittleEndian.Uint32(data[offset+4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(data[offset+8:])),
	)
}
