package light

import (
	"fmt"

	"github.com/memmaker/voxlight/engine/util"
	"github.com/memmaker/voxlight/engine/voxel"
)

// Lighting runs the four channel solvers for world loading and block edits.
type Lighting struct {
	solvers [voxel.ChannelCount]*Solver
	blocks  *voxel.BlockRegistry
}

func NewLighting(blocks *voxel.BlockRegistry) *Lighting {
	l := &Lighting{blocks: blocks}
	for channel := range l.solvers {
		l.solvers[channel] = NewSolver(channel)
	}
	return l
}

func (l *Lighting) Solver(channel int) *Solver {
	return l.solvers[channel]
}

func (l *Lighting) SolveAll(world World) {
	for _, solver := range l.solvers {
		solver.Solve(world)
	}
	l.logProcessed()
}

func (l *Lighting) solveColors(world World) {
	for _, solver := range l.solvers[:voxel.ChannelS] {
		solver.Solve(world)
	}
}

// AddSource places a free standing light that is not backed by an emitting block.
func (l *Lighting) AddSource(world World, x, y, z int32, rgb [3]uint8) {
	for channel, level := range rgb {
		l.solvers[channel].Add(world, x, y, z, level)
	}
}

// OnWorldLoaded lights a freshly generated or loaded world: every emitting block becomes a
// source and open columns receive full sky light from the top of the loaded volume down.
func (l *Lighting) OnWorldLoaded(world *voxel.Map) {
	sources := 0
	for _, chunk := range world.Chunks() {
		origin := chunk.Origin()
		for y := int32(0); y < voxel.CHUNK_SIZE; y++ {
			for z := int32(0); z < voxel.CHUNK_SIZE; z++ {
				for x := int32(0); x < voxel.CHUNK_SIZE; x++ {
					block := l.blocks.Get(chunk.GetLocalBlock(x, y, z))
					if block == nil || !block.IsEmitter() {
						continue
					}
					l.AddSource(world, origin.X+x, origin.Y+y, origin.Z+z, block.Emission)
					sources++
				}
			}
		}
	}

	min, max, ok := world.Bounds()
	if !ok {
		return
	}
	skyLit := 0
	visitSkyColumns(world, min, max, func(x, y, z int32) {
		world.SetLight(x, y, z, voxel.ChannelS, voxel.MaxLight)
		skyLit++
	})
	sky := l.solvers[voxel.ChannelS]
	visitSkyColumns(world, min, max, func(x, y, z int32) {
		for _, offset := range voxel.Neighbors6 {
			nx, ny, nz := x+offset.X, y+offset.Y, z+offset.Z
			id, loaded := world.GetVoxel(nx, ny, nz)
			if loaded && id == voxel.EMPTY && world.GetLight(nx, ny, nz, voxel.ChannelS) == 0 {
				sky.AddExisting(world, x, y, z)
				return
			}
		}
	})

	l.SolveAll(world)
	util.LogLightInfo(fmt.Sprintf("[Lighting] World lit: %d emitters, %d sky voxels", sources, skyLit))
}

// visitSkyColumns walks every column from the top of the loaded volume down to the first
// solid voxel. Missing chunks count as open sky.
func visitSkyColumns(world *voxel.Map, min, max voxel.Int3, visit func(x, y, z int32)) {
	for z := min.Z; z < max.Z; z++ {
		for x := min.X; x < max.X; x++ {
			for y := max.Y - 1; y >= min.Y; y-- {
				id, loaded := world.GetVoxel(x, y, z)
				if !loaded {
					continue
				}
				if id != voxel.EMPTY {
					break
				}
				visit(x, y, z)
			}
		}
	}
}

// SetBlock changes a voxel and repairs the light around it.
func (l *Lighting) SetBlock(world *voxel.Map, x, y, z int32, id byte) bool {
	if !world.Set(x, y, z, id) {
		return false
	}
	l.OnBlockSet(world, x, y, z, id)
	return true
}

// OnBlockSet repairs the light after the voxel at (x, y, z) was changed to id.
func (l *Lighting) OnBlockSet(world World, x, y, z int32, id byte) {
	if id == voxel.EMPTY {
		l.onBlockBroken(world, x, y, z)
		return
	}
	l.onBlockPlaced(world, x, y, z, id)
}

func (l *Lighting) onBlockBroken(world World, x, y, z int32) {
	for _, solver := range l.solvers[:voxel.ChannelS] {
		solver.Remove(world, x, y, z)
	}
	l.solveColors(world)

	sky := l.solvers[voxel.ChannelS]
	_, aboveLoaded := world.GetVoxel(x, y+1, z)
	if !aboveLoaded || world.GetLight(x, y+1, z, voxel.ChannelS) == voxel.MaxLight {
		for i := y; ; i-- {
			id, loaded := world.GetVoxel(x, i, z)
			if !loaded || id != voxel.EMPTY {
				break
			}
			sky.Add(world, x, i, z, voxel.MaxLight)
		}
	}

	for _, offset := range voxel.Neighbors6 {
		for _, solver := range l.solvers {
			solver.AddExisting(world, x+offset.X, y+offset.Y, z+offset.Z)
		}
	}
	l.SolveAll(world)
}

func (l *Lighting) onBlockPlaced(world World, x, y, z int32, id byte) {
	for _, solver := range l.solvers {
		solver.Remove(world, x, y, z)
	}
	sky := l.solvers[voxel.ChannelS]
	for i := y - 1; ; i-- {
		sky.Remove(world, x, i, z)
		below, loaded := world.GetVoxel(x, i-1, z)
		if !loaded || below != voxel.EMPTY {
			break
		}
	}
	l.SolveAll(world)

	emission := l.blocks.Emission(id)
	if emission != [3]uint8{} {
		l.AddSource(world, x, y, z, emission)
		l.solveColors(world)
	}
}

func (l *Lighting) logProcessed() {
	if util.GLOBAL_LOG_LEVEL < util.LogLevelDebug {
		return
	}
	for _, solver := range l.solvers {
		adds, removes := solver.Processed()
		util.LogLightDebug(fmt.Sprintf("[Lighting] channel %d: %d additions, %d removals", solver.Channel(), adds, removes))
	}
}
