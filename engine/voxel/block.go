package voxel

import "fmt"

// Block is the static definition shared by every voxel with the same id.
type Block struct {
	ID           byte
	Name         string
	TextureIndex byte
	Emission     [3]uint8
	LightPassing bool
}

func (b *Block) IsAir() bool {
	return b.ID == EMPTY
}

func (b *Block) IsEmitter() bool {
	return b.Emission[0] > 0 || b.Emission[1] > 0 || b.Emission[2] > 0
}

const (
	AirID byte = iota
	DirtID
	GrassID
	StoneID
	GlassID
	RedLampID
	GreenLampID
	BlueLampID
)

type BlockRegistry struct {
	blocks [256]*Block
	byName map[string]*Block
}

func NewBlockRegistry() *BlockRegistry {
	return &BlockRegistry{byName: make(map[string]*Block)}
}

// NewDefaultBlockRegistry knows air, the terrain blocks, glass and three coloured lamps.
func NewDefaultBlockRegistry() *BlockRegistry {
	r := NewBlockRegistry()
	r.Register(&Block{ID: AirID, Name: "air", LightPassing: true})
	r.Register(&Block{ID: DirtID, Name: "dirt", TextureIndex: 2})
	r.Register(&Block{ID: GrassID, Name: "grass", TextureIndex: 4})
	r.Register(&Block{ID: StoneID, Name: "stone", TextureIndex: 1})
	r.Register(&Block{ID: GlassID, Name: "glass", TextureIndex: 5, LightPassing: true})
	r.Register(&Block{ID: RedLampID, Name: "red_lamp", TextureIndex: 3, Emission: [3]uint8{14, 2, 0}})
	r.Register(&Block{ID: GreenLampID, Name: "green_lamp", TextureIndex: 6, Emission: [3]uint8{0, 14, 0}})
	r.Register(&Block{ID: BlueLampID, Name: "blue_lamp", TextureIndex: 7, Emission: [3]uint8{0, 0, 14}})
	return r
}

func (r *BlockRegistry) Register(block *Block) {
	if existing := r.blocks[block.ID]; existing != nil {
		delete(r.byName, existing.Name)
	}
	r.blocks[block.ID] = block
	r.byName[block.Name] = block
}

// Get returns nil for ids that were never registered.
func (r *BlockRegistry) Get(id byte) *Block {
	return r.blocks[id]
}

func (r *BlockRegistry) GetByName(name string) (*Block, bool) {
	block, ok := r.byName[name]
	return block, ok
}

func (r *BlockRegistry) MustGetByName(name string) *Block {
	block, ok := r.byName[name]
	if !ok {
		panic(fmt.Sprintf("unknown block: %s", name))
	}
	return block
}

func (r *BlockRegistry) Emission(id byte) [3]uint8 {
	if block := r.blocks[id]; block != nil {
		return block.Emission
	}
	return [3]uint8{}
}

func (r *BlockRegistry) IsLightPassing(id byte) bool {
	if block := r.blocks[id]; block != nil {
		return block.LightPassing
	}
	return id == EMPTY
}

// TextureIndex falls back to the id itself for unregistered blocks.
func (r *BlockRegistry) TextureIndex(id byte) byte {
	if block := r.blocks[id]; block != nil {
		return block.TextureIndex
	}
	return id
}
