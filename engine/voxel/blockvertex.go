package voxel

type FaceType int32

const (
	XP FaceType = iota
	XN
	YP
	YN
	ZP
	ZN
)

var faceNormals = [6]Int3{
	XP: {1, 0, 0},
	XN: {-1, 0, 0},
	YP: {0, 1, 0},
	YN: {0, -1, 0},
	ZP: {0, 0, 1},
	ZN: {0, 0, -1},
}

func (f FaceType) Normal() Int3 {
	return faceNormals[f]
}

func (f FaceType) String() string {
	switch f {
	case XP:
		return "x+"
	case XN:
		return "x-"
	case YP:
		return "y+"
	case YN:
		return "y-"
	case ZP:
		return "z+"
	case ZN:
		return "z-"
	}
	return "invalid"
}
