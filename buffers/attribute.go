package buffers

import (
	"github.com/ericroy/fplbase/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute is one semantic channel of per-vertex data (e.g. a position or
// a normal). A vertex format is an ordered sequence of attributes terminated
// by AttrEnd; the sequence determines the per-vertex byte layout.
type Attribute uint8

const (
	AttrEnd Attribute = iota

	AttrPosition3f
	AttrNormal3f
	AttrTangent4f
	AttrTexCoord2f
	AttrTexCoordAlt2f
	AttrColor4ub
	AttrBoneIndices4ub
	AttrBoneWeights4ub
)

// Fixed shader attribute slots. Every attribute always lands in the same
// slot no matter where it appears in a format, so unbinding can traverse
// any format and hit exactly the slots that binding enabled.
const (
	SlotPosition    uint32 = 0
	SlotNormal      uint32 = 1
	SlotTangent     uint32 = 2
	SlotTexCoord    uint32 = 3
	SlotTexCoordAlt uint32 = 4
	SlotColor       uint32 = 5
	SlotBoneIndices uint32 = 6
	SlotBoneWeights uint32 = 7
)

func (a Attribute) Slot() uint32 {

	switch a {
	case AttrPosition3f:
		return SlotPosition
	case AttrNormal3f:
		return SlotNormal
	case AttrTangent4f:
		return SlotTangent
	case AttrTexCoord2f:
		return SlotTexCoord
	case AttrTexCoordAlt2f:
		return SlotTexCoordAlt
	case AttrColor4ub:
		return SlotColor
	case AttrBoneIndices4ub:
		return SlotBoneIndices
	case AttrBoneWeights4ub:
		return SlotBoneWeights

	default:
		assert.T(false, "Attribute '%d' has no slot", a)
		return 0
	}
}

// CompCount returns the number of scalar components in the attribute
func (a Attribute) CompCount() int32 {

	switch a {
	case AttrNormal3f:
		fallthrough
	case AttrPosition3f:
		return 3

	case AttrTexCoord2f:
		fallthrough
	case AttrTexCoordAlt2f:
		return 2

	case AttrTangent4f:
		fallthrough
	case AttrColor4ub:
		fallthrough
	case AttrBoneIndices4ub:
		fallthrough
	case AttrBoneWeights4ub:
		return 4

	default:
		assert.T(false, "Unknown attribute '%d'", a)
		return 0
	}
}

func (a Attribute) GLType() uint32 {

	switch a {
	case AttrPosition3f:
		fallthrough
	case AttrNormal3f:
		fallthrough
	case AttrTangent4f:
		fallthrough
	case AttrTexCoord2f:
		fallthrough
	case AttrTexCoordAlt2f:
		return gl.FLOAT

	case AttrColor4ub:
		fallthrough
	case AttrBoneIndices4ub:
		fallthrough
	case AttrBoneWeights4ub:
		return gl.UNSIGNED_BYTE

	default:
		assert.T(false, "Unknown attribute '%d'", a)
		return 0
	}
}

// Normalized reports whether the attribute's integer data is mapped
// to [0,1] when read by the shader
func (a Attribute) Normalized() bool {

	switch a {
	case AttrColor4ub:
		fallthrough
	case AttrBoneWeights4ub:
		return true

	default:
		return false
	}
}

// Size returns the total size of the attribute in bytes
func (a Attribute) Size() int32 {

	switch a {
	case AttrPosition3f:
		fallthrough
	case AttrNormal3f:
		return 3 * 4

	case AttrTangent4f:
		return 4 * 4

	case AttrTexCoord2f:
		fallthrough
	case AttrTexCoordAlt2f:
		return 2 * 4

	case AttrColor4ub:
		fallthrough
	case AttrBoneIndices4ub:
		fallthrough
	case AttrBoneWeights4ub:
		return 4

	default:
		assert.T(false, "Unknown attribute '%d'", a)
		return 0
	}
}

func (a Attribute) String() string {

	switch a {
	case AttrEnd:
		return "End"
	case AttrPosition3f:
		return "Position3f"
	case AttrNormal3f:
		return "Normal3f"
	case AttrTangent4f:
		return "Tangent4f"
	case AttrTexCoord2f:
		return "TexCoord2f"
	case AttrTexCoordAlt2f:
		return "TexCoordAlt2f"
	case AttrColor4ub:
		return "Color4ub"
	case AttrBoneIndices4ub:
		return "BoneIndices4ub"
	case AttrBoneWeights4ub:
		return "BoneWeights4ub"

	default:
		return "Unknown"
	}
}

// Stride returns the byte size of one vertex in the given format
func Stride(format []Attribute) int32 {

	stride := int32(0)
	for _, a := range format {

		if a == AttrEnd {
			return stride
		}

		stride += a.Size()
	}

	assert.T(false, "Vertex format %v is not terminated by AttrEnd", format)
	return stride
}

// OffsetOf returns the byte offset of the first occurrence of attr within
// one vertex of the given format
func OffsetOf(format []Attribute, attr Attribute) int32 {

	offset := int32(0)
	for _, a := range format {

		if a == attr {
			return offset
		}

		if a == AttrEnd {
			break
		}

		offset += a.Size()
	}

	assert.T(false, "Attribute %v not found in vertex format %v", attr, format)
	return 0
}

// HasAttribute reports whether attr appears in format before the AttrEnd marker
func HasAttribute(format []Attribute, attr Attribute) bool {

	for _, a := range format {

		if a == AttrEnd {
			return false
		}

		if a == attr {
			return true
		}
	}

	return false
}
