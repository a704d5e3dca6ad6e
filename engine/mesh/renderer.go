package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxlight/engine/util"
	"github.com/memmaker/voxlight/engine/voxel"
)

// VertexSize is the number of float32 values per vertex in ChunkVertexFormat.
const VertexSize = 9

const verticesPerFace = 6

// faceDef describes one cube face: the outward normal and two in-plane axes with
// a x b == normal, plus the world axes the texture u and v follow.
type faceDef struct {
	normal voxel.Int3
	a, b   voxel.Int3
	uAxis  int
	uSign  int32
	vAxis  int
	vSign  int32
}

var faceDefs = [6]faceDef{
	{normal: voxel.Int3{X: 1}, a: voxel.Int3{Y: 1}, b: voxel.Int3{Z: 1}, uAxis: 2, uSign: -1, vAxis: 1, vSign: 1},
	{normal: voxel.Int3{X: -1}, a: voxel.Int3{Z: 1}, b: voxel.Int3{Y: 1}, uAxis: 2, uSign: 1, vAxis: 1, vSign: 1},
	{normal: voxel.Int3{Y: 1}, a: voxel.Int3{Z: 1}, b: voxel.Int3{X: 1}, uAxis: 0, uSign: 1, vAxis: 2, vSign: -1},
	{normal: voxel.Int3{Y: -1}, a: voxel.Int3{X: 1}, b: voxel.Int3{Z: 1}, uAxis: 0, uSign: 1, vAxis: 2, vSign: 1},
	{normal: voxel.Int3{Z: 1}, a: voxel.Int3{X: 1}, b: voxel.Int3{Y: 1}, uAxis: 0, uSign: 1, vAxis: 1, vSign: 1},
	{normal: voxel.Int3{Z: -1}, a: voxel.Int3{Y: 1}, b: voxel.Int3{X: 1}, uAxis: 0, uSign: -1, vAxis: 1, vSign: 1},
}

// quad corners in (a, b) signs, counter-clockwise seen from outside
var cornerSigns = [4][2]int32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

var triangleCorners = [verticesPerFace]int{0, 1, 2, 0, 2, 3}

func component(v voxel.Int3, axis int) int32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// VoxelRenderer turns one chunk plus its loaded neighbors into a lit triangle mesh.
// The vertex buffer is kept between calls, so a renderer must not be shared by goroutines.
type VoxelRenderer struct {
	buffer       []float32
	textureIndex func(id byte) byte
}

// NewVoxelRenderer preallocates room for capacity visible faces.
func NewVoxelRenderer(capacity int) *VoxelRenderer {
	return &VoxelRenderer{
		buffer:       make([]float32, 0, capacity*VertexSize*verticesPerFace),
		textureIndex: func(id byte) byte { return id },
	}
}

// UseBlockTextures looks up atlas tiles in the registry instead of using the voxel id.
func (r *VoxelRenderer) UseBlockTextures(blocks *voxel.BlockRegistry) {
	r.textureIndex = blocks.TextureIndex
}

// Render builds the mesh of chunk. neighbors supplies the voxels and light beyond the chunk
// border; its center slot is always taken to be chunk. A nil neighborhood treats everything
// outside the chunk as unloaded.
func (r *VoxelRenderer) Render(chunk *voxel.Chunk, neighbors *voxel.Neighborhood) *Mesh {
	var n voxel.Neighborhood
	if neighbors != nil {
		n = *neighbors
	}
	n[voxel.NeighborIndex(0, 0, 0)] = chunk

	r.buffer = r.buffer[:0]
	for y := int32(0); y < voxel.CHUNK_SIZE; y++ {
		for z := int32(0); z < voxel.CHUNK_SIZE; z++ {
			for x := int32(0); x < voxel.CHUNK_SIZE; x++ {
				id := chunk.GetLocalBlock(x, y, z)
				if id == voxel.EMPTY {
					continue
				}
				uv := CalculateTileUV(r.textureIndex(id))
				pos := voxel.Int3{X: x, Y: y, Z: z}
				for i := range faceDefs {
					f := &faceDefs[i]
					out := pos.Add(f.normal)
					if beyond, loaded := n.Voxel(out.X, out.Y, out.Z); loaded && beyond != voxel.EMPTY {
						continue
					}
					r.appendFace(&n, f, pos, uv)
				}
			}
		}
	}
	return NewMesh(r.buffer, len(r.buffer)/VertexSize, ChunkVertexFormat)
}

func (r *VoxelRenderer) appendFace(n *voxel.Neighborhood, f *faceDef, pos voxel.Int3, uv TileUV) {
	out := pos.Add(f.normal)
	var center [voxel.ChannelCount]float32
	for ch := range center {
		center[ch] = float32(n.Light(out.X, out.Y, out.Z, ch)) / float32(voxel.MaxLight)
	}

	base := pos.ToVec3().Add(f.normal.ToVec3().Mul(0.5))
	var positions [4]mgl32.Vec3
	var texCoords [4]mgl32.Vec2
	var lights [4]mgl32.Vec4
	for k, signs := range cornerSigns {
		offA := f.a.Mul(signs[0])
		offB := f.b.Mul(signs[1])
		side := offA.Add(offB)
		positions[k] = base.Add(side.ToVec3().Mul(0.5))

		u, v := uv.U1, uv.V1
		if component(side, f.uAxis)*f.uSign > 0 {
			u = uv.U2
		}
		if component(side, f.vAxis)*f.vSign > 0 {
			v = uv.V2
		}
		texCoords[k] = mgl32.Vec2{u, v}

		pa, pb, pab := out.Add(offA), out.Add(offB), out.Add(side)
		for ch := range center {
			sum := float32(n.Light(pa.X, pa.Y, pa.Z, ch)) +
				center[ch]*30 +
				float32(n.Light(pab.X, pab.Y, pab.Z, ch)) +
				float32(n.Light(pb.X, pb.Y, pb.Z, ch))
			lights[k][ch] = sum / 5 / float32(voxel.MaxLight)
		}
	}

	for _, k := range triangleCorners {
		p, t, l := positions[k], texCoords[k], lights[k]
		r.buffer = append(r.buffer, p[0], p[1], p[2], t[0], t[1], l[0], l[1], l[2], l[3])
	}
}

// RenderModified rebuilds every modified chunk of the world and clears its flag.
func (r *VoxelRenderer) RenderModified(world *voxel.Map) []ChunkMesh {
	var meshes []ChunkMesh
	faces := 0
	for _, chunk := range world.ModifiedChunks() {
		m := r.Render(chunk, world.Neighborhood(chunk))
		chunk.ClearModified()
		faces += m.VertexCount() / verticesPerFace
		meshes = append(meshes, ChunkMesh{Chunk: chunk, Mesh: m})
	}
	util.LogMeshDebug(fmt.Sprintf("[VoxelRenderer] Rebuilt %d chunks, %d faces", len(meshes), faces))
	return meshes
}
