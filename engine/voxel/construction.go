package voxel

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/memmaker/voxlight/engine/util"
	"github.com/pkg/errors"
)

const maxPaletteSize = 256

/*
Construction is a block of voxels stored as a gzip compressed NBT compound:

	TAG_Compound({
	    "shape_x": TAG_Int(),
	    "shape_y": TAG_Int(),
	    "shape_z": TAG_Int(),
	    "palette": TAG_List([TAG_String(), ...]),
	    "blocks":  TAG_Byte_Array()   // palette indices, y major then z then x
	})
*/
type Construction struct {
	ShapeX  int32    `nbt:"shape_x"`
	ShapeY  int32    `nbt:"shape_y"`
	ShapeZ  int32    `nbt:"shape_z"`
	Palette []string `nbt:"palette"`
	Blocks  []byte   `nbt:"blocks"`
}

// NewConstruction creates an all-air construction of the given shape.
func NewConstruction(shapeX, shapeY, shapeZ int32) *Construction {
	return &Construction{
		ShapeX:  shapeX,
		ShapeY:  shapeY,
		ShapeZ:  shapeZ,
		Palette: []string{"air"},
		Blocks:  make([]byte, shapeX*shapeY*shapeZ),
	}
}

func (c *Construction) index(x, y, z int32) int32 {
	return (y*c.ShapeZ+z)*c.ShapeX + x
}

func (c *Construction) Contains(x, y, z int32) bool {
	return x >= 0 && x < c.ShapeX && y >= 0 && y < c.ShapeY && z >= 0 && z < c.ShapeZ
}

// BlockName returns the palette entry at the position.
func (c *Construction) BlockName(x, y, z int32) string {
	return c.Palette[c.Blocks[c.index(x, y, z)]]
}

// SetBlockName stores a block by name, growing the palette as needed.
func (c *Construction) SetBlockName(x, y, z int32, name string) error {
	if !c.Contains(x, y, z) {
		return errors.Errorf("position (%d,%d,%d) outside of construction", x, y, z)
	}
	paletteIndex := -1
	for i, entry := range c.Palette {
		if entry == name {
			paletteIndex = i
			break
		}
	}
	if paletteIndex < 0 {
		if len(c.Palette) >= maxPaletteSize {
			return errors.Errorf("palette is full, cannot add %s", name)
		}
		c.Palette = append(c.Palette, name)
		paletteIndex = len(c.Palette) - 1
	}
	c.Blocks[c.index(x, y, z)] = byte(paletteIndex)
	return nil
}

func (c *Construction) validate() error {
	if c.ShapeX < 0 || c.ShapeY < 0 || c.ShapeZ < 0 {
		return errors.Errorf("invalid shape %dx%dx%d", c.ShapeX, c.ShapeY, c.ShapeZ)
	}
	if expected := int(c.ShapeX) * int(c.ShapeY) * int(c.ShapeZ); len(c.Blocks) != expected {
		return errors.Errorf("expected %d blocks, got %d", expected, len(c.Blocks))
	}
	if len(c.Palette) > maxPaletteSize {
		return errors.Errorf("palette has %d entries, at most %d allowed", len(c.Palette), maxPaletteSize)
	}
	for i, paletteIndex := range c.Blocks {
		if int(paletteIndex) >= len(c.Palette) {
			return errors.Errorf("block %d refers to palette entry %d of %d", i, paletteIndex, len(c.Palette))
		}
	}
	return nil
}

func LoadConstruction(r io.Reader) (*Construction, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "construction is not gzip compressed")
	}
	defer gzipReader.Close()
	var c Construction
	if _, err = nbt.NewDecoder(gzipReader).Decode(&c); err != nil {
		return nil, errors.Wrap(err, "could not decode construction")
	}
	if err = c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func LoadConstructionFile(filename string) (*Construction, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "could not open construction")
	}
	defer file.Close()
	c, err := LoadConstruction(file)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", filename)
	}
	util.LogIOInfo(fmt.Sprintf("[Construction] Loaded %s (%dx%dx%d, %d palette entries)", filename, c.ShapeX, c.ShapeY, c.ShapeZ, len(c.Palette)))
	return c, nil
}

func SaveConstruction(w io.Writer, c *Construction) error {
	if err := c.validate(); err != nil {
		return err
	}
	gzipWriter := gzip.NewWriter(w)
	if err := nbt.NewEncoder(gzipWriter).Encode(c, "construction"); err != nil {
		return errors.Wrap(err, "could not encode construction")
	}
	return errors.Wrap(gzipWriter.Close(), "could not compress construction")
}

func SaveConstructionFile(filename string, c *Construction) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not create construction")
	}
	if err = SaveConstruction(file, c); err != nil {
		file.Close()
		return errors.Wrapf(err, "in %s", filename)
	}
	return file.Close()
}

// CaptureConstruction copies the box [min, min+shape) of the world. Unloaded voxels become air.
func CaptureConstruction(m *Map, blocks *BlockRegistry, min, shape Int3) (*Construction, error) {
	c := NewConstruction(shape.X, shape.Y, shape.Z)
	for y := int32(0); y < shape.Y; y++ {
		for z := int32(0); z < shape.Z; z++ {
			for x := int32(0); x < shape.X; x++ {
				id, _ := m.GetVoxel(min.X+x, min.Y+y, min.Z+z)
				if id == EMPTY {
					continue
				}
				name := fmt.Sprintf("block_%d", id)
				if block := blocks.Get(id); block != nil {
					name = block.Name
				}
				if err := c.SetBlockName(x, y, z, name); err != nil {
					return nil, err
				}
			}
		}
	}
	return c, nil
}

// Paste writes the construction into the world with its minimum corner at origin and returns
// the number of voxels written. Air entries leave the world untouched, voxels outside of loaded
// chunks are dropped and unknown block names are replaced by stone.
func (m *Map) Paste(c *Construction, origin Int3, blocks *BlockRegistry) int {
	ids := make([]byte, len(c.Palette))
	for i, name := range c.Palette {
		block, ok := blocks.GetByName(name)
		if !ok {
			util.LogVoxelWarning(fmt.Sprintf("[Construction] Unknown block '%s', using stone", name))
			block = blocks.Get(StoneID)
		}
		if block != nil {
			ids[i] = block.ID
		} else {
			ids[i] = StoneID
		}
	}
	written := 0
	for y := int32(0); y < c.ShapeY; y++ {
		for z := int32(0); z < c.ShapeZ; z++ {
			for x := int32(0); x < c.ShapeX; x++ {
				id := ids[c.Blocks[c.index(x, y, z)]]
				if id == EMPTY {
					continue
				}
				if m.Set(origin.X+x, origin.Y+y, origin.Z+z, id) {
					written++
				}
			}
		}
	}
	util.LogVoxelDebug(fmt.Sprintf("[Construction] Pasted %d voxels at (%d,%d,%d)", written, origin.X, origin.Y, origin.Z))
	return written
}
