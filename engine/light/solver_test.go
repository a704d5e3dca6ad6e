package light

import (
	"testing"

	"github.com/memmaker/voxlight/engine/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(world *voxel.Map, channel int) map[voxel.Int3]uint8 {
	result := make(map[voxel.Int3]uint8)
	min, max, _ := world.Bounds()
	for y := min.Y; y < max.Y; y++ {
		for z := min.Z; z < max.Z; z++ {
			for x := min.X; x < max.X; x++ {
				if l := world.GetLight(x, y, z, channel); l > 0 {
					result[voxel.Int3{X: x, Y: y, Z: z}] = l
				}
			}
		}
	}
	return result
}

func TestSolverOpenSpaceFalloff(t *testing.T) {
	world := voxel.NewMap(2, 1, 1)
	solver := NewSolver(voxel.ChannelR)
	source := voxel.Int3{X: 15, Y: 8, Z: 8}
	solver.Add(world, source.X, source.Y, source.Z, 15)
	solver.Solve(world)

	min, max, _ := world.Bounds()
	for y := min.Y; y < max.Y; y++ {
		for z := min.Z; z < max.Z; z++ {
			for x := min.X; x < max.X; x++ {
				d := voxel.ManhattanDistance3(source, voxel.Int3{X: x, Y: y, Z: z})
				expected := uint8(0)
				if d < 15 {
					expected = uint8(15 - d)
				}
				require.Equal(t, expected, world.GetLight(x, y, z, voxel.ChannelR), "at (%d,%d,%d)", x, y, z)
			}
		}
	}
	assert.Equal(t, uint8(0), world.GetLight(source.X, source.Y, source.Z, voxel.ChannelG))
	adds, removes := solver.Pending()
	assert.Zero(t, adds)
	assert.Zero(t, removes)
}

func TestSolverIgnoresWeakSources(t *testing.T) {
	world := voxel.NewMap(1, 1, 1)
	solver := NewSolver(voxel.ChannelB)
	solver.Add(world, 3, 3, 3, 1)
	solver.Add(world, 4, 4, 4, 0)
	solver.Solve(world)
	assert.Empty(t, snapshot(world, voxel.ChannelB))
}

func TestSolverStopsAtSolidVoxels(t *testing.T) {
	world := voxel.NewMap(1, 1, 1)
	for y := int32(0); y < voxel.CHUNK_SIZE; y++ {
		for z := int32(0); z < voxel.CHUNK_SIZE; z++ {
			world.Set(8, y, z, voxel.StoneID)
		}
	}
	solver := NewSolver(voxel.ChannelR)
	solver.Add(world, 4, 4, 4, 15)
	solver.Solve(world)

	assert.Equal(t, uint8(12), world.GetLight(7, 4, 4, voxel.ChannelR))
	assert.Equal(t, uint8(0), world.GetLight(8, 4, 4, voxel.ChannelR), "solid voxels stay dark")
	assert.Equal(t, uint8(0), world.GetLight(9, 4, 4, voxel.ChannelR), "the wall is closed")
}

func TestSolverAttenuation(t *testing.T) {
	world := voxel.NewMap(2, 1, 2)
	world.Set(10, 5, 10, voxel.StoneID)
	world.Set(11, 5, 10, voxel.StoneID)
	world.Set(12, 6, 10, voxel.StoneID)
	solver := NewSolver(voxel.ChannelG)
	sources := map[voxel.Int3]bool{{X: 11, Y: 6, Z: 10}: true, {X: 20, Y: 3, Z: 17}: true}
	for pos := range sources {
		solver.Add(world, pos.X, pos.Y, pos.Z, 13)
	}
	solver.Solve(world)

	for pos, level := range snapshot(world, voxel.ChannelG) {
		brighter := false
		for _, offset := range voxel.Neighbors6 {
			n := pos.Add(offset)
			id, loaded := world.GetVoxel(n.X, n.Y, n.Z)
			if !loaded || id != voxel.EMPTY {
				continue
			}
			neighbor := world.GetLight(n.X, n.Y, n.Z, voxel.ChannelG)
			assert.LessOrEqual(t, int(level), int(neighbor)+1, "light drops at most one per step at %v", pos)
			if neighbor == level+1 {
				brighter = true
			}
		}
		if !sources[pos] {
			assert.True(t, brighter, "%v must be lit by a brighter neighbor", pos)
		}
	}
}

func TestSolveIsIdempotent(t *testing.T) {
	world := voxel.NewMap(2, 2, 1)
	world.Set(16, 10, 5, voxel.StoneID)
	solver := NewSolver(voxel.ChannelR)
	solver.Add(world, 12, 10, 5, 15)
	solver.Add(world, 20, 14, 8, 9)
	solver.Solve(world)
	before := snapshot(world, voxel.ChannelR)

	solver.Solve(world)
	assert.Equal(t, before, snapshot(world, voxel.ChannelR))

	for pos := range before {
		solver.AddExisting(world, pos.X, pos.Y, pos.Z)
	}
	solver.Solve(world)
	assert.Equal(t, before, snapshot(world, voxel.ChannelR))
}

func TestAddRemoveRoundTrip(t *testing.T) {
	world := voxel.NewMap(2, 1, 2)
	world.NewChunk(-1, 0, 0)
	solver := NewSolver(voxel.ChannelB)
	solver.Add(world, 0, 7, 7, 15)
	solver.Solve(world)
	require.NotEmpty(t, snapshot(world, voxel.ChannelB))
	assert.Equal(t, uint8(14), world.GetLight(-1, 7, 7, voxel.ChannelB))

	solver.Remove(world, 0, 7, 7)
	solver.Solve(world)
	assert.Empty(t, snapshot(world, voxel.ChannelB))
	_, removes := solver.Processed()
	assert.Greater(t, removes, 1)
}

func TestRemoveKeepsOtherSources(t *testing.T) {
	world := voxel.NewMap(2, 1, 1)
	solver := NewSolver(voxel.ChannelR)
	solver.Add(world, 4, 4, 4, 15)
	solver.Add(world, 22, 4, 4, 12)
	solver.Solve(world)

	solver.Remove(world, 4, 4, 4)
	solver.Solve(world)
	expected := ReferenceField(world, []Source{{Pos: voxel.Int3{X: 22, Y: 4, Z: 4}, Level: 12}})
	for pos, level := range snapshot(world, voxel.ChannelR) {
		assert.Equal(t, expected[pos], level, "at %v", pos)
	}
	assert.Len(t, snapshot(world, voxel.ChannelR), len(expected))
}

func TestRemoveOfDarkVoxelIsNoop(t *testing.T) {
	world := voxel.NewMap(1, 1, 1)
	solver := NewSolver(voxel.ChannelS)
	solver.Remove(world, 1, 1, 1)
	solver.Remove(world, -40, 1, 1)
	_, removes := solver.Pending()
	assert.Zero(t, removes)
}

// buildBoundaryWorld spreads walls and sources over chunks with negative coordinates, so the
// light has to cross chunk borders in every direction.
func buildBoundaryWorld() (*voxel.Map, []Source) {
	world := voxel.NewEmptyMap()
	for cy := int32(-1); cy <= 0; cy++ {
		for cz := int32(-1); cz <= 0; cz++ {
			for cx := int32(-1); cx <= 1; cx++ {
				world.NewChunk(cx, cy, cz)
			}
		}
	}
	for y := int32(-16); y < 16; y++ {
		for z := int32(-16); z < 12; z++ {
			world.Set(0, y, z, voxel.StoneID)
		}
		world.Set(-5, y, -1, voxel.StoneID)
		world.Set(-5, y, 0, voxel.StoneID)
	}
	world.Set(10, -1, -1, voxel.GlassID)
	sources := []Source{
		{Pos: voxel.Int3{X: -3, Y: -2, Z: -1}, Level: 15},
		{Pos: voxel.Int3{X: 5, Y: 3, Z: 2}, Level: 11},
		{Pos: voxel.Int3{X: -15, Y: -15, Z: -15}, Level: 7},
	}
	return world, sources
}

func TestSolverMatchesReferenceAcrossChunkBorders(t *testing.T) {
	world, sources := buildBoundaryWorld()
	solver := NewSolver(voxel.ChannelR)
	for _, s := range sources {
		solver.Add(world, s.Pos.X, s.Pos.Y, s.Pos.Z, s.Level)
	}
	solver.Solve(world)

	min, max, _ := world.Bounds()
	assert.Empty(t, Verify(world, voxel.ChannelR, sources, min, max))
	assert.Equal(t, uint8(14), world.GetLight(-3, -1, -1, voxel.ChannelR))
	assert.Equal(t, uint8(0), world.GetLight(0, -2, -1, voxel.ChannelR))
}

func TestVerifyReportsMismatches(t *testing.T) {
	world, sources := buildBoundaryWorld()
	world.SetLight(-10, 3, 3, voxel.ChannelR, 4)
	min, max, _ := world.Bounds()
	mismatches := Verify(world, voxel.ChannelR, nil, min, max)
	require.Len(t, mismatches, 1)
	assert.Equal(t, voxel.Int3{X: -10, Y: 3, Z: 3}, mismatches[0].Pos)
	assert.Equal(t, uint8(4), mismatches[0].Actual)
	assert.Equal(t, uint8(0), mismatches[0].Expected)
	assert.NotEmpty(t, Verify(world, voxel.ChannelR, sources, min, max), "sources were never solved")
}

// execute with: go test -bench=. -test.benchmem
func BenchmarkSolverAddRemove(b *testing.B) {
	world := voxel.NewMap(3, 3, 3)
	solver := NewSolver(voxel.ChannelR)
	for i := 0; i < b.N; i++ {
		solver.Add(world, 24, 24, 24, 15)
		solver.Solve(world)
		solver.Remove(world, 24, 24, 24)
		solver.Solve(world)
	}
}
