package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRaycastHitsFirstSolidVoxel(t *testing.T) {
	m := NewMap(2, 1, 1)
	m.Set(20, 4, 4, StoneID)
	m.Set(24, 4, 4, StoneID)

	hit := m.Raycast(mgl32.Vec3{2.5, 4.5, 4.5}, mgl32.Vec3{30.5, 4.5, 4.5})
	assert.True(t, hit.Hit)
	assert.Equal(t, Int3{20, 4, 4}, hit.Position)
	assert.Equal(t, Int3{19, 4, 4}, hit.Previous)
	assert.Equal(t, XN, hit.Face)
	assert.InDelta(t, 17.5, hit.Distance, 1e-4)
	assert.InDelta(t, 20.0, hit.Point.X(), 1e-4)

	back := m.Raycast(mgl32.Vec3{30.5, 4.5, 4.5}, mgl32.Vec3{2.5, 4.5, 4.5})
	assert.Equal(t, Int3{24, 4, 4}, back.Position)
	assert.Equal(t, XP, back.Face)
}

func TestRaycastMisses(t *testing.T) {
	m := NewMap(1, 1, 1)
	m.Set(10, 10, 10, StoneID)
	assert.False(t, m.Raycast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{9.5, 0.5, 0.5}).Hit)
	assert.False(t, m.Raycast(mgl32.Vec3{0.5, 10.5, 10.5}, mgl32.Vec3{9.2, 10.5, 10.5}).Hit, "segment ends before the voxel")
}

func TestRaycastDiagonal(t *testing.T) {
	m := NewMap(1, 1, 1)
	m.Set(5, 5, 5, DirtID)
	hit := m.Raycast(mgl32.Vec3{1.5, 1.6, 1.7}, mgl32.Vec3{8.5, 8.6, 8.7})
	assert.True(t, hit.Hit)
	assert.Equal(t, Int3{5, 5, 5}, hit.Position)
	assert.Equal(t, int32(1), ManhattanDistance3(hit.Position, hit.Previous))
}

func TestSurfaceAt(t *testing.T) {
	m := NewMap(1, 2, 1)
	m.NewChunk(0, -1, 0)
	m.Set(3, -5, 3, StoneID)
	m.Set(3, 12, 3, GrassID)

	pos, ok := m.SurfaceAt(3, 3)
	assert.True(t, ok)
	assert.Equal(t, Int3{3, 12, 3}, pos)

	pos, ok = m.SurfaceAt(4, 3)
	assert.False(t, ok)

	_, ok = NewEmptyMap().SurfaceAt(0, 0)
	assert.False(t, ok)
}
