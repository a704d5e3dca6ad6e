package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type RayHit struct {
	Hit      bool
	Distance float64
	// Face of the hit voxel the ray entered through.
	Face     FaceType
	Point    mgl32.Vec3
	Position Int3
	// Previous is the last voxel the ray crossed before the hit, where a new block would go.
	Previous Int3
}

// Raycast walks the voxels along the segment from start to end (grid traversal after
// fenomas/fast-voxel-raycast) and stops at the first voxel for which stop returns true.
func Raycast(start, end mgl32.Vec3, stop func(x, y, z int32) bool) RayHit {
	pos := ToGridInt3(start)
	ray := end.Sub(start)
	maxLength := float64(ray.Len())
	if maxLength == 0 {
		return RayHit{Hit: stop(pos.X, pos.Y, pos.Z), Position: pos, Previous: pos, Point: start}
	}
	dir := ray.Normalize()

	var step, cell [3]int32
	var tDelta, tMax [3]float64
	cell = [3]int32{pos.X, pos.Y, pos.Z}
	for axis := 0; axis < 3; axis++ {
		d := float64(dir[axis])
		origin := float64(start[axis])
		tDelta[axis] = math.Abs(1 / d)
		tMax[axis] = math.Inf(1)
		if d > 0 {
			step[axis] = 1
			tMax[axis] = tDelta[axis] * (float64(cell[axis]+1) - origin)
		} else if d < 0 {
			step[axis] = -1
			tMax[axis] = tDelta[axis] * (origin - float64(cell[axis]))
		}
	}

	// entry faces per axis for a positive and a negative step
	entered := [3][2]FaceType{{XN, XP}, {YN, YP}, {ZN, ZP}}
	t := 0.0
	steppedAxis := -1
	for t <= maxLength {
		if stop(cell[0], cell[1], cell[2]) {
			hit := RayHit{
				Hit:      true,
				Distance: t,
				Point:    start.Add(dir.Mul(float32(t))),
				Position: Int3{cell[0], cell[1], cell[2]},
			}
			hit.Previous = hit.Position
			if steppedAxis >= 0 {
				side := 0
				if step[steppedAxis] < 0 {
					side = 1
				}
				hit.Face = entered[steppedAxis][side]
				hit.Previous = hit.Position.Add(hit.Face.Normal())
			}
			return hit
		}
		steppedAxis = 0
		if tMax[1] < tMax[steppedAxis] {
			steppedAxis = 1
		}
		if tMax[2] < tMax[steppedAxis] {
			steppedAxis = 2
		}
		cell[steppedAxis] += step[steppedAxis]
		t = tMax[steppedAxis]
		tMax[steppedAxis] += tDelta[steppedAxis]
	}
	return RayHit{}
}

// Raycast stops at the first solid voxel of the world.
func (m *Map) Raycast(start, end mgl32.Vec3) RayHit {
	return Raycast(start, end, m.IsSolidBlockAt)
}

// SurfaceAt casts a ray straight down the column from the top of the loaded world and returns
// the topmost solid voxel.
func (m *Map) SurfaceAt(x, z int32) (Int3, bool) {
	min, max, ok := m.Bounds()
	if !ok {
		return Int3{}, false
	}
	top := mgl32.Vec3{float32(x) + 0.5, float32(max.Y) - 0.5, float32(z) + 0.5}
	bottom := mgl32.Vec3{top.X(), float32(min.Y), top.Z()}
	hit := m.Raycast(top, bottom)
	return hit.Position, hit.Hit
}
