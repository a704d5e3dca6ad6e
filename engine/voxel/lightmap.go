package voxel

// Light channels stored per voxel.
const (
	ChannelR = iota
	ChannelG
	ChannelB
	ChannelS
	ChannelCount
)

const MaxLight uint8 = 0xF

// LightMap packs four 4-bit light channels into one uint16 per voxel:
// R in bits 0-3, G in 4-7, B in 8-11 and sky in 12-15.
// Coordinates are chunk local and are not bounds checked.
type LightMap struct {
	data []uint16
}

func NewLightMap() *LightMap {
	return &LightMap{data: make([]uint16, CHUNK_SIZE_CUBED)}
}

func lightIndex(x, y, z int32) int32 {
	return (y*CHUNK_SIZE+z)*CHUNK_SIZE + x
}

func (l *LightMap) Get(x, y, z int32, channel int) uint8 {
	return uint8((l.data[lightIndex(x, y, z)] >> (channel << 2)) & 0xF)
}

func (l *LightMap) GetR(x, y, z int32) uint8 {
	return uint8(l.data[lightIndex(x, y, z)] & 0xF)
}

func (l *LightMap) GetG(x, y, z int32) uint8 {
	return uint8((l.data[lightIndex(x, y, z)] >> 4) & 0xF)
}

func (l *LightMap) GetB(x, y, z int32) uint8 {
	return uint8((l.data[lightIndex(x, y, z)] >> 8) & 0xF)
}

func (l *LightMap) GetS(x, y, z int32) uint8 {
	return uint8((l.data[lightIndex(x, y, z)] >> 12) & 0xF)
}

// Set overwrites one channel, leaving the other three untouched. Values above 15 are masked.
func (l *LightMap) Set(x, y, z int32, channel int, value uint8) {
	index := lightIndex(x, y, z)
	shift := uint(channel << 2)
	l.data[index] = (l.data[index] &^ (0xF << shift)) | (uint16(value&0xF) << shift)
}

func (l *LightMap) SetS(x, y, z int32, value uint8) {
	index := lightIndex(x, y, z)
	l.data[index] = (l.data[index] & 0x0FFF) | (uint16(value&0xF) << 12)
}

// Raw returns the packed word of a voxel.
func (l *LightMap) Raw(x, y, z int32) uint16 {
	return l.data[lightIndex(x, y, z)]
}

func (l *LightMap) Clear() {
	for i := range l.data {
		l.data[i] = 0
	}
}
