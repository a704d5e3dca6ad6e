package voxel

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxlight/engine/util"
)

// Map is the world container. Chunks are addressed by chunk coordinates, which may be negative.
type Map struct {
	chunks map[Int3]*Chunk
}

func NewEmptyMap() *Map {
	return &Map{chunks: make(map[Int3]*Chunk)}
}

// NewMap creates a world with the chunks [0,width) x [0,height) x [0,depth) already loaded.
func NewMap(width, height, depth int32) *Map {
	m := &Map{chunks: make(map[Int3]*Chunk, width*height*depth)}
	for y := int32(0); y < height; y++ {
		for z := int32(0); z < depth; z++ {
			for x := int32(0); x < width; x++ {
				m.NewChunk(x, y, z)
			}
		}
	}
	util.LogVoxelDebug(fmt.Sprintf("[Map] Created %dx%dx%d chunks", width, height, depth))
	return m
}

func (m *Map) NewChunk(cX, cY, cZ int32) *Chunk {
	chunk := NewChunk(cX, cY, cZ)
	m.SetChunk(chunk)
	return chunk
}

func (m *Map) SetChunk(c *Chunk) {
	m.chunks[c.Position()] = c
}

func (m *Map) GetChunk(x, y, z int32) *Chunk {
	return m.chunks[Int3{x, y, z}]
}

func (m *Map) ChunkExists(x, y, z int32) bool {
	return m.GetChunk(x, y, z) != nil
}

func (m *Map) ChunkCount() int {
	return len(m.chunks)
}

// GetChunkByVoxel returns the chunk holding the world voxel, or nil when it is not loaded.
func (m *Map) GetChunkByVoxel(x, y, z int32) *Chunk {
	chunkPos, _ := ToChunkPos(x, y, z)
	return m.chunks[chunkPos]
}

// GetVoxel reports false for voxels outside the loaded world.
func (m *Map) GetVoxel(x, y, z int32) (byte, bool) {
	chunkPos, local := ToChunkPos(x, y, z)
	chunk := m.chunks[chunkPos]
	if chunk == nil {
		return EMPTY, false
	}
	return chunk.data[blockIndex(local.X, local.Y, local.Z)], true
}

func (m *Map) IsSolidBlockAt(x, y, z int32) bool {
	id, ok := m.GetVoxel(x, y, z)
	return ok && id != EMPTY
}

// GetLight is dark outside the loaded world.
func (m *Map) GetLight(x, y, z int32, channel int) uint8 {
	chunkPos, local := ToChunkPos(x, y, z)
	chunk := m.chunks[chunkPos]
	if chunk == nil {
		return 0
	}
	return chunk.lights.Get(local.X, local.Y, local.Z, channel)
}

// SetLight writes one channel and marks every chunk whose mesh samples the voxel as modified.
// Writes outside the loaded world are dropped and reported as false.
func (m *Map) SetLight(x, y, z int32, channel int, value uint8) bool {
	chunkPos, local := ToChunkPos(x, y, z)
	chunk := m.chunks[chunkPos]
	if chunk == nil {
		return false
	}
	chunk.lights.Set(local.X, local.Y, local.Z, channel, value)
	m.markAround(chunkPos, local)
	return true
}

// Set changes a voxel id. The caller is responsible for feeding the edit to the light solvers.
func (m *Map) Set(x, y, z int32, id byte) bool {
	chunkPos, local := ToChunkPos(x, y, z)
	chunk := m.chunks[chunkPos]
	if chunk == nil {
		return false
	}
	chunk.SetLocalBlock(local.X, local.Y, local.Z, id)
	m.markAround(chunkPos, local)
	return true
}

func (m *Map) markAround(chunkPos, local Int3) {
	var lo, hi [3]int32
	for axis, l := range [3]int32{local.X, local.Y, local.Z} {
		if l == 0 {
			lo[axis] = -1
		} else if l == CHUNK_SIZE-1 {
			hi[axis] = 1
		}
	}
	for dy := lo[1]; dy <= hi[1]; dy++ {
		for dz := lo[2]; dz <= hi[2]; dz++ {
			for dx := lo[0]; dx <= hi[0]; dx++ {
				if chunk := m.chunks[chunkPos.Add(Int3{dx, dy, dz})]; chunk != nil {
					chunk.modified = true
				}
			}
		}
	}
}

// Chunks returns all loaded chunks ordered by y, z, x.
func (m *Map) Chunks() []*Chunk {
	result := make([]*Chunk, 0, len(m.chunks))
	for _, chunk := range m.chunks {
		result = append(result, chunk)
	}
	sortChunks(result)
	return result
}

func (m *Map) ModifiedChunks() []*Chunk {
	var result []*Chunk
	for _, chunk := range m.chunks {
		if chunk.modified {
			result = append(result, chunk)
		}
	}
	sortChunks(result)
	return result
}

func sortChunks(chunks []*Chunk) {
	sort.Slice(chunks, func(i, j int) bool {
		a, b := chunks[i].Position(), chunks[j].Position()
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
}

// Bounds returns the voxel range covered by loaded chunks, min inclusive and max exclusive.
func (m *Map) Bounds() (min, max Int3, ok bool) {
	first := true
	for pos := range m.chunks {
		lo := pos.Mul(CHUNK_SIZE)
		hi := lo.Add(Int3{CHUNK_SIZE, CHUNK_SIZE, CHUNK_SIZE})
		if first {
			min, max, first = lo, hi, false
			continue
		}
		min = Int3{min32(min.X, lo.X), min32(min.Y, lo.Y), min32(min.Z, lo.Z)}
		max = Int3{max32(max.X, hi.X), max32(max.Y, hi.Y), max32(max.Z, hi.Z)}
	}
	return min, max, !first
}

// Neighborhood collects the chunk and the 26 chunks sharing a face, edge or corner with it.
func (m *Map) Neighborhood(c *Chunk) *Neighborhood {
	var n Neighborhood
	center := c.Position()
	for dy := int32(-1); dy <= 1; dy++ {
		for dz := int32(-1); dz <= 1; dz++ {
			for dx := int32(-1); dx <= 1; dx++ {
				n[NeighborIndex(dx, dy, dz)] = m.chunks[center.Add(Int3{dx, dy, dz})]
			}
		}
	}
	n[NeighborIndex(0, 0, 0)] = c
	return &n
}

func (m *Map) GetBlockFromPosition(position mgl32.Vec3) (byte, bool) {
	grid := ToGridInt3(position)
	return m.GetVoxel(grid.X, grid.Y, grid.Z)
}

func ToGridInt3(pos mgl32.Vec3) Int3 {
	return Int3{floor32(pos.X()), floor32(pos.Y()), floor32(pos.Z())}
}

func floor32(f float32) int32 {
	i := int32(f)
	if float32(i) > f {
		i--
	}
	return i
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
