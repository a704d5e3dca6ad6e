package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxlight/engine/voxel"
)

// Mesh is an interleaved, non-indexed triangle list ready to be uploaded.
type Mesh struct {
	vertices    []float32
	vertexCount int
	format      AttrFormat
}

// NewMesh copies vertices, so the caller may reuse its buffer.
func NewMesh(vertices []float32, vertexCount int, format AttrFormat) *Mesh {
	data := make([]float32, len(vertices))
	copy(data, vertices)
	return &Mesh{
		vertices:    data,
		vertexCount: vertexCount,
		format:      format,
	}
}

func (m *Mesh) VertexData() []float32 {
	return m.vertices
}

func (m *Mesh) VertexCount() int {
	return m.vertexCount
}

func (m *Mesh) TriangleCount() int {
	return m.vertexCount / 3
}

func (m *Mesh) Format() AttrFormat {
	return m.format
}

func (m *Mesh) IsEmpty() bool {
	return m.vertexCount == 0
}

// ChunkVertex is one decoded vertex of a mesh in ChunkVertexFormat.
type ChunkVertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
	Light    mgl32.Vec4
}

func (m *Mesh) Vertex(i int) ChunkVertex {
	v := m.vertices[i*VertexSize : (i+1)*VertexSize]
	return ChunkVertex{
		Position: mgl32.Vec3{v[0], v[1], v[2]},
		UV:       mgl32.Vec2{v[3], v[4]},
		Light:    mgl32.Vec4{v[5], v[6], v[7], v[8]},
	}
}

// ChunkMesh pairs a mesh with the chunk it was built from.
type ChunkMesh struct {
	Chunk *voxel.Chunk
	Mesh  *Mesh
}
