package voxel

import (
	"bytes"
	"compress/gzip"
	"path/filepath"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConstruction(t *testing.T) *Construction {
	c := NewConstruction(3, 2, 2)
	require.NoError(t, c.SetBlockName(0, 0, 0, "stone"))
	require.NoError(t, c.SetBlockName(2, 1, 1, "red_lamp"))
	require.NoError(t, c.SetBlockName(1, 0, 1, "obsidian"))
	return c
}

func TestConstructionRoundTrip(t *testing.T) {
	c := newTestConstruction(t)
	var buf bytes.Buffer
	require.NoError(t, SaveConstruction(&buf, c))

	loaded, err := LoadConstruction(&buf)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
	assert.Equal(t, "red_lamp", loaded.BlockName(2, 1, 1))
	assert.Equal(t, "air", loaded.BlockName(1, 1, 1))
}

func TestConstructionFileRoundTrip(t *testing.T) {
	c := newTestConstruction(t)
	filename := filepath.Join(t.TempDir(), "test.construction")
	require.NoError(t, SaveConstructionFile(filename, c))

	loaded, err := LoadConstructionFile(filename)
	require.NoError(t, err)
	assert.Equal(t, c.Blocks, loaded.Blocks)
}

func TestLoadConstructionRejectsGarbage(t *testing.T) {
	_, err := LoadConstruction(bytes.NewReader([]byte("not gzip")))
	assert.Error(t, err)

	broken := newTestConstruction(t)
	broken.Blocks = broken.Blocks[:3]
	var buf bytes.Buffer
	assert.Error(t, SaveConstruction(&buf, broken))

	_, err = LoadConstructionFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoadConstructionRejectsBadPaletteIndex(t *testing.T) {
	c := newTestConstruction(t)
	c.Blocks[0] = 9
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	require.NoError(t, nbt.NewEncoder(gz).Encode(c, "construction"))
	require.NoError(t, gz.Close())

	_, err := LoadConstruction(&buf)
	assert.Error(t, err)
}

func TestMapPaste(t *testing.T) {
	blocks := NewDefaultBlockRegistry()
	m := NewMap(1, 1, 1)
	m.Set(6, 5, 5, GlassID)
	c := newTestConstruction(t)

	written := m.Paste(c, Int3{5, 5, 5}, blocks)
	assert.Equal(t, 3, written)

	id, _ := m.GetVoxel(5, 5, 5)
	assert.Equal(t, StoneID, id)
	id, _ = m.GetVoxel(7, 6, 6)
	assert.Equal(t, RedLampID, id)
	id, _ = m.GetVoxel(6, 5, 6)
	assert.Equal(t, StoneID, id, "unknown names become stone")
	id, _ = m.GetVoxel(6, 5, 5)
	assert.Equal(t, GlassID, id, "air does not overwrite")

	assert.Equal(t, 0, m.Paste(c, Int3{100, 0, 0}, blocks), "voxels outside the world are dropped")
}

func TestCaptureConstruction(t *testing.T) {
	blocks := NewDefaultBlockRegistry()
	m := NewMap(1, 1, 1)
	m.Set(1, 1, 1, DirtID)
	m.Set(2, 1, 1, BlueLampID)

	c, err := CaptureConstruction(m, blocks, Int3{1, 1, 1}, Int3{2, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"air", "dirt", "blue_lamp"}, c.Palette)
	assert.Equal(t, []byte{1, 2}, c.Blocks)
}
