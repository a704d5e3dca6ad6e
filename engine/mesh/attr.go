package mesh

// AttrType is the type of a vertex attribute. All attributes are made of float32 components.
type AttrType int

const (
	Float AttrType = iota
	Vec2
	Vec3
	Vec4
)

// Size returns the number of float32 components of the attribute.
func (at AttrType) Size() int {
	switch at {
	case Float:
		return 1
	case Vec2:
		return 2
	case Vec3:
		return 3
	case Vec4:
		return 4
	}
	panic("invalid attribute type")
}

type Attr struct {
	Name string
	Type AttrType
}

// AttrFormat is the ordered list of attributes interleaved in one vertex.
type AttrFormat []Attr

// Size returns the stride of one vertex in float32 components.
func (af AttrFormat) Size() int {
	total := 0
	for _, attr := range af {
		total += attr.Type.Size()
	}
	return total
}

// ChunkVertexFormat is the layout written by the VoxelRenderer.
var ChunkVertexFormat = AttrFormat{
	{Name: "position", Type: Vec3},
	{Name: "texCoord", Type: Vec2},
	{Name: "light", Type: Vec4},
}
