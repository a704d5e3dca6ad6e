package voxel

// Neighborhood is a flattened 3x3x3 block of chunks around a center chunk, indexed by
// NeighborIndex. A nil slot is a chunk that is not loaded.
type Neighborhood [27]*Chunk

// NeighborIndex maps chunk offsets in [-1, 1] to a slot, y major then z then x.
func NeighborIndex(dx, dy, dz int32) int {
	return int(((dy+1)*3+(dz+1))*3 + (dx + 1))
}

func (n *Neighborhood) Center() *Chunk {
	return n[NeighborIndex(0, 0, 0)]
}

// resolve finds the chunk and local offset for coordinates relative to the center chunk.
// Coordinates may reach one chunk beyond the center in every direction.
func (n *Neighborhood) resolve(x, y, z int32) (*Chunk, int32) {
	cx, cy, cz := FloorDiv(x, CHUNK_SIZE), FloorDiv(y, CHUNK_SIZE), FloorDiv(z, CHUNK_SIZE)
	if cx < -1 || cx > 1 || cy < -1 || cy > 1 || cz < -1 || cz > 1 {
		return nil, 0
	}
	chunk := n[NeighborIndex(cx, cy, cz)]
	if chunk == nil {
		return nil, 0
	}
	return chunk, blockIndex(FloorMod(x, CHUNK_SIZE), FloorMod(y, CHUNK_SIZE), FloorMod(z, CHUNK_SIZE))
}

// Voxel reads an id relative to the center chunk; loaded is false beyond loaded chunks.
func (n *Neighborhood) Voxel(x, y, z int32) (id byte, loaded bool) {
	chunk, index := n.resolve(x, y, z)
	if chunk == nil {
		return EMPTY, false
	}
	return chunk.data[index], true
}

// Light reads one channel relative to the center chunk; unloaded space is dark.
func (n *Neighborhood) Light(x, y, z int32, channel int) uint8 {
	chunk, index := n.resolve(x, y, z)
	if chunk == nil {
		return 0
	}
	return uint8((chunk.lights.data[index] >> (channel << 2)) & 0xF)
}
