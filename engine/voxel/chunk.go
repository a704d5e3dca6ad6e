package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Chunk is a CHUNK_SIZE cube of voxel ids stored in (y, z, x) order together with its light.
type Chunk struct {
	data      []byte
	lights    *LightMap
	chunkPosX int32
	chunkPosY int32
	chunkPosZ int32
	modified  bool
}

func NewChunk(x, y, z int32) *Chunk {
	return &Chunk{
		data:      make([]byte, CHUNK_SIZE_CUBED),
		lights:    NewLightMap(),
		chunkPosX: x,
		chunkPosY: y,
		chunkPosZ: z,
		modified:  true,
	}
}

func blockIndex(x, y, z int32) int32 {
	return (y*CHUNK_SIZE+z)*CHUNK_SIZE + x
}

func (c *Chunk) Contains(x, y, z int32) bool {
	return x >= 0 && x < CHUNK_SIZE && y >= 0 && y < CHUNK_SIZE && z >= 0 && z < CHUNK_SIZE
}

// GetLocalBlock reads a voxel id by local coordinates. Out of range reads are air.
func (c *Chunk) GetLocalBlock(x, y, z int32) byte {
	if !c.Contains(x, y, z) {
		return EMPTY
	}
	return c.data[blockIndex(x, y, z)]
}

func (c *Chunk) SetLocalBlock(x, y, z int32, id byte) {
	c.data[blockIndex(x, y, z)] = id
	c.modified = true
}

func (c *Chunk) IsBlockAt(x, y, z int32) bool {
	return c.data[blockIndex(x, y, z)] != EMPTY
}

// Fill sets every voxel of the chunk to id.
func (c *Chunk) Fill(id byte) {
	for i := range c.data {
		c.data[i] = id
	}
	c.modified = true
}

func (c *Chunk) IsEmpty() bool {
	for _, id := range c.data {
		if id != EMPTY {
			return false
		}
	}
	return true
}

func (c *Chunk) Lights() *LightMap {
	return c.lights
}

func (c *Chunk) IsModified() bool {
	return c.modified
}

func (c *Chunk) SetModified() {
	c.modified = true
}

func (c *Chunk) ClearModified() {
	c.modified = false
}

func (c *Chunk) Position() Int3 {
	return Int3{c.chunkPosX, c.chunkPosY, c.chunkPosZ}
}

// Origin is the world coordinate of the chunk's local (0, 0, 0).
func (c *Chunk) Origin() Int3 {
	return c.Position().Mul(CHUNK_SIZE)
}

func (c *Chunk) GetMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(float32(c.chunkPosX*CHUNK_SIZE), float32(c.chunkPosY*CHUNK_SIZE), float32(c.chunkPosZ*CHUNK_SIZE))
}

func (c *Chunk) AABBMin() mgl32.Vec3 {
	return c.Origin().ToVec3()
}

func (c *Chunk) AABBMax() mgl32.Vec3 {
	return c.Origin().Add(Int3{CHUNK_SIZE, CHUNK_SIZE, CHUNK_SIZE}).ToVec3()
}
