package voxel

import (
	"fmt"
	"math"

	"github.com/memmaker/voxlight/engine/util"
	"github.com/ojrac/opensimplex-go"
)

const defaultNoiseScale = 48.0

// Generator fills worlds with heightmap terrain. The same seed always yields the same terrain.
type Generator struct {
	noise      opensimplex.Noise
	BaseHeight int32
	Amplitude  float64
	Scale      float64
}

func NewGenerator(seed int64, baseHeight int32, amplitude float64) *Generator {
	return &Generator{
		noise:      opensimplex.New(seed),
		BaseHeight: baseHeight,
		Amplitude:  amplitude,
		Scale:      defaultNoiseScale,
	}
}

// HeightAt returns the first air y of a column; the grass voxel sits just below it.
func (g *Generator) HeightAt(x, z int32) int32 {
	n := g.noise.Eval2(float64(x)/g.Scale, float64(z)/g.Scale)
	return g.BaseHeight + int32(math.Round(n*g.Amplitude))
}

// Fill writes terrain into every loaded column: stone up to height-3, then dirt with grass on top.
func (g *Generator) Fill(m *Map) int {
	min, max, ok := m.Bounds()
	if !ok {
		return 0
	}
	written := 0
	for z := min.Z; z < max.Z; z++ {
		for x := min.X; x < max.X; x++ {
			height := g.HeightAt(x, z)
			top := min32(height, max.Y)
			for y := min.Y; y < top; y++ {
				id := StoneID
				if y == height-1 {
					id = GrassID
				} else if y >= height-3 {
					id = DirtID
				}
				if m.Set(x, y, z, id) {
					written++
				}
			}
		}
	}
	util.LogVoxelInfo(fmt.Sprintf("[Generator] Filled %d voxels", written))
	return written
}
