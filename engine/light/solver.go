package light

import (
	"github.com/memmaker/voxlight/engine/path"
	"github.com/memmaker/voxlight/engine/voxel"
)

// World is what the solver needs from the world container. All coordinates are world voxel
// coordinates; voxels without a loaded chunk read as dark and ignore writes.
type World interface {
	GetVoxel(x, y, z int32) (byte, bool)
	GetLight(x, y, z int32, channel int) uint8
	SetLight(x, y, z int32, channel int, value uint8) bool
}

type lightEntry struct {
	x, y, z int32
	light   uint8
}

// Solver propagates a single light channel by breadth first flood fill. Removals are
// drained before additions on every Solve.
type Solver struct {
	addQueue *path.Queue[lightEntry]
	remQueue *path.Queue[lightEntry]
	channel  int

	processedAdds    int
	processedRemoves int
}

func NewSolver(channel int) *Solver {
	return &Solver{
		addQueue: path.NewQueue[lightEntry](256),
		remQueue: path.NewQueue[lightEntry](256),
		channel:  channel,
	}
}

func (s *Solver) Channel() int {
	return s.channel
}

// Pending reports the number of queued additions and removals.
func (s *Solver) Pending() (adds, removes int) {
	return s.addQueue.Len(), s.remQueue.Len()
}

// Processed reports how many queue entries the last Solve consumed.
func (s *Solver) Processed() (adds, removes int) {
	return s.processedAdds, s.processedRemoves
}

// Add makes (x, y, z) a light source of the given level. Levels of 1 or less cannot
// reach a neighbor and are ignored.
func (s *Solver) Add(world World, x, y, z int32, level uint8) {
	if level <= 1 {
		return
	}
	s.addQueue.Push(lightEntry{x: x, y: y, z: z, light: level})
	world.SetLight(x, y, z, s.channel, level)
}

// AddExisting re-queues the light already stored at (x, y, z) so it spreads again.
func (s *Solver) AddExisting(world World, x, y, z int32) {
	s.Add(world, x, y, z, world.GetLight(x, y, z, s.channel))
}

// Remove darkens (x, y, z) and queues the removal of everything it lit.
func (s *Solver) Remove(world World, x, y, z int32) {
	light := world.GetLight(x, y, z, s.channel)
	if light == 0 {
		return
	}
	s.remQueue.Push(lightEntry{x: x, y: y, z: z, light: light})
	world.SetLight(x, y, z, s.channel, 0)
}

func (s *Solver) Solve(world World) {
	s.processedAdds, s.processedRemoves = 0, 0

	for {
		entry, ok := s.remQueue.Pop()
		if !ok {
			break
		}
		s.processedRemoves++
		for _, offset := range voxel.Neighbors6 {
			x, y, z := entry.x+offset.X, entry.y+offset.Y, entry.z+offset.Z
			light := world.GetLight(x, y, z, s.channel)
			if light != 0 && light == entry.light-1 {
				s.remQueue.Push(lightEntry{x: x, y: y, z: z, light: light})
				world.SetLight(x, y, z, s.channel, 0)
			} else if light >= entry.light {
				s.addQueue.Push(lightEntry{x: x, y: y, z: z, light: light})
			}
		}
	}

	for {
		entry, ok := s.addQueue.Pop()
		if !ok {
			break
		}
		s.processedAdds++
		if entry.light <= 1 {
			continue
		}
		for _, offset := range voxel.Neighbors6 {
			x, y, z := entry.x+offset.X, entry.y+offset.Y, entry.z+offset.Z
			id, loaded := world.GetVoxel(x, y, z)
			if !loaded || id != voxel.EMPTY {
				continue
			}
			light := world.GetLight(x, y, z, s.channel)
			if light+2 <= entry.light {
				world.SetLight(x, y, z, s.channel, entry.light-1)
				s.addQueue.Push(lightEntry{x: x, y: y, z: z, light: entry.light - 1})
			}
		}
	}
}
