package light

import (
	"fmt"

	"github.com/memmaker/voxlight/engine/path"
	"github.com/memmaker/voxlight/engine/voxel"
)

type Source struct {
	Pos   voxel.Int3
	Level uint8
}

type Mismatch struct {
	Pos      voxel.Int3
	Expected uint8
	Actual   uint8
}

func (m Mismatch) String() string {
	return fmt.Sprintf("(%d,%d,%d) expected %d, got %d", m.Pos.X, m.Pos.Y, m.Pos.Z, m.Expected, m.Actual)
}

// passableGraph links air voxels of a world with unit cost.
type passableGraph struct {
	world World
}

func (g passableGraph) GetNeighbors(node voxel.Int3) []voxel.Int3 {
	result := make([]voxel.Int3, 0, 6)
	for _, offset := range voxel.Neighbors6 {
		n := node.Add(offset)
		if id, loaded := g.world.GetVoxel(n.X, n.Y, n.Z); loaded && id == voxel.EMPTY {
			result = append(result, n)
		}
	}
	return result
}

func (g passableGraph) GetCost(voxel.Int3, voxel.Int3) int {
	return 1
}

// ReferenceField computes the settled light field of a channel from scratch: every voxel
// holds the largest level - distance over all sources, where distance is the shortest walk
// through air. Voxels missing from the result are dark.
func ReferenceField(world World, sources []Source) map[voxel.Int3]uint8 {
	field := make(map[voxel.Int3]uint8)
	for _, source := range sources {
		if source.Level <= 1 {
			continue
		}
		dist, _ := path.Dijkstra[voxel.Int3](source.Pos, int(source.Level)-1, passableGraph{world: world})
		for pos, d := range dist {
			level := source.Level - uint8(d)
			if level > field[pos] {
				field[pos] = level
			}
		}
	}
	return field
}

// EmitterSources lists every emitting block of the world as a source for one colour channel.
func EmitterSources(world *voxel.Map, blocks *voxel.BlockRegistry, channel int) []Source {
	var sources []Source
	for _, chunk := range world.Chunks() {
		origin := chunk.Origin()
		for y := int32(0); y < voxel.CHUNK_SIZE; y++ {
			for z := int32(0); z < voxel.CHUNK_SIZE; z++ {
				for x := int32(0); x < voxel.CHUNK_SIZE; x++ {
					level := blocks.Emission(chunk.GetLocalBlock(x, y, z))[channel]
					if level > 0 {
						sources = append(sources, Source{Pos: origin.Add(voxel.Int3{X: x, Y: y, Z: z}), Level: level})
					}
				}
			}
		}
	}
	return sources
}

// Verify compares one channel of the world in the box [min, max) against ReferenceField.
func Verify(world World, channel int, sources []Source, min, max voxel.Int3) []Mismatch {
	expected := ReferenceField(world, sources)
	var mismatches []Mismatch
	for y := min.Y; y < max.Y; y++ {
		for z := min.Z; z < max.Z; z++ {
			for x := min.X; x < max.X; x++ {
				pos := voxel.Int3{X: x, Y: y, Z: z}
				actual := world.GetLight(x, y, z, channel)
				if actual != expected[pos] {
					mismatches = append(mismatches, Mismatch{Pos: pos, Expected: expected[pos], Actual: actual})
				}
			}
		}
	}
	return mismatches
}
