package meshes

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/ericroy/fplbase/assert"
	"github.com/ericroy/fplbase/buffers"
	"github.com/ericroy/fplbase/materials"
	"github.com/ericroy/fplbase/renderer"
)

// ImportFormat is the vertex format every imported model is interleaved
// into. Models missing tangents or texcoords get zero-filled channels so
// the layout stays fixed
var ImportFormat = []buffers.Attribute{
	buffers.AttrPosition3f,
	buffers.AttrNormal3f,
	buffers.AttrTangent4f,
	buffers.AttrTexCoord2f,
	buffers.AttrEnd,
}

// DefaultMeshLoadFlags are the flags always applied when importing a model
// regardless of what post process flags are passed in.
//
// Defaults to: asig.PostProcessTriangulate | asig.PostProcessCalcTangentSpace
var DefaultMeshLoadFlags asig.PostProcess = asig.PostProcessTriangulate | asig.PostProcessCalcTangentSpace

// NewMeshFromFile imports a model file, interleaves its vertex channels
// into ImportFormat and produces one index chunk per scene mesh, sharing a
// single vertex buffer. The material reference is attached to every chunk
func NewMeshFromFile(name, modelPath string, rend *renderer.Renderer, mat *materials.Material, postProcessFlags asig.PostProcess) (Mesh, error) {

	finalPostProcessFlags := DefaultMeshLoadFlags | postProcessFlags

	scene, release, err := asig.ImportFile(modelPath, finalPostProcessFlags)
	if err != nil {
		return Mesh{}, errors.New("Failed to load model. Err: " + err.Error())
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return Mesh{}, errors.New("No meshes found in file: " + modelPath)
	}

	mesh := NewMesh(name, Primitive_Triangles)
	stride := buffers.Stride(ImportFormat)

	vertexData := make([]byte, 0, len(scene.Meshes[0].Vertices)*int(stride))
	chunkIndices := make([][]uint32, 0, len(scene.Meshes))
	baseVertex := uint32(0)

	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]

		if len(sceneMesh.Tangents) == 0 {
			sceneMesh.Tangents = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		if len(sceneMesh.TexCoords[0]) == 0 {
			sceneMesh.TexCoords[0] = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		for v := 0; v < len(sceneMesh.Vertices); v++ {

			vertexData = appendVec3(vertexData, sceneMesh.Vertices[v])
			vertexData = appendVec3(vertexData, sceneMesh.Normals[v])

			// Tangent handedness is not provided, assume right handed
			vertexData = appendVec3(vertexData, sceneMesh.Tangents[v])
			vertexData = appendFloat(vertexData, 1)

			vertexData = appendFloat(vertexData, sceneMesh.TexCoords[0][v].X())
			vertexData = appendFloat(vertexData, sceneMesh.TexCoords[0][v].Y())
		}

		chunkIndices = append(chunkIndices, flattenFaces(sceneMesh.Faces, baseVertex))
		baseVertex += uint32(len(sceneMesh.Vertices))
	}

	mesh.LoadFromMemory(rend, vertexData, int32(baseVertex), stride, ImportFormat, nil, nil)

	for i := 0; i < len(chunkIndices); i++ {
		mesh.AddIndices32(chunkIndices[i], mat)
	}

	return mesh, nil
}

// flattenFaces turns triangulated faces into a flat index list, offsetting
// every index by the first vertex of the owning scene mesh so all chunks
// can share one vertex buffer
func flattenFaces(faces []asig.Face, baseVertex uint32) []uint32 {

	assert.T(len(faces[0].Indices) == 3, "Face doesn't have 3 indices. Index count: %v\n", len(faces[0].Indices))

	uints := make([]uint32, len(faces)*3)
	for i := 0; i < len(faces); i++ {
		uints[i*3+0] = baseVertex + uint32(faces[i].Indices[0])
		uints[i*3+1] = baseVertex + uint32(faces[i].Indices[1])
		uints[i*3+2] = baseVertex + uint32(faces[i].Indices[2])
	}

	return uints
}

func appendFloat(data []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
}

func appendVec3(data []byte, v gglm.Vec3) []byte {

	data = appendFloat(data, v.X())
	data = appendFloat(data, v.Y())
	return appendFloat(data, v.Z())
}
