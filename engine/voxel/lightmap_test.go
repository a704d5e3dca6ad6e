package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLightMapChannelsAreIndependent(t *testing.T) {
	l := NewLightMap()
	l.Set(3, 4, 5, ChannelR, 1)
	l.Set(3, 4, 5, ChannelG, 2)
	l.Set(3, 4, 5, ChannelB, 3)
	l.SetS(3, 4, 5, 4)

	assert.Equal(t, uint16(0x4321), l.Raw(3, 4, 5))
	assert.Equal(t, uint8(1), l.GetR(3, 4, 5))
	assert.Equal(t, uint8(2), l.GetG(3, 4, 5))
	assert.Equal(t, uint8(3), l.GetB(3, 4, 5))
	assert.Equal(t, uint8(4), l.GetS(3, 4, 5))

	l.Set(3, 4, 5, ChannelG, 15)
	assert.Equal(t, uint16(0x43F1), l.Raw(3, 4, 5))
	l.Set(3, 4, 5, ChannelG, 0)
	assert.Equal(t, uint16(0x4301), l.Raw(3, 4, 5))
	assert.Equal(t, uint16(0), l.Raw(4, 4, 5), "neighbor voxel must stay dark")
}

func TestLightMapMasksOverflow(t *testing.T) {
	l := NewLightMap()
	l.Set(0, 0, 0, ChannelB, 0xFF)
	assert.Equal(t, uint8(15), l.GetB(0, 0, 0))
	assert.Equal(t, uint8(0), l.GetG(0, 0, 0))
	assert.Equal(t, uint8(0), l.GetS(0, 0, 0))
}

func TestLightMapGetMatchesNamedGetters(t *testing.T) {
	l := NewLightMap()
	for channel := ChannelR; channel < ChannelCount; channel++ {
		l.Set(15, 15, 15, channel, uint8(channel+7))
	}
	assert.Equal(t, l.GetR(15, 15, 15), l.Get(15, 15, 15, ChannelR))
	assert.Equal(t, l.GetG(15, 15, 15), l.Get(15, 15, 15, ChannelG))
	assert.Equal(t, l.GetB(15, 15, 15), l.Get(15, 15, 15, ChannelB))
	assert.Equal(t, l.GetS(15, 15, 15), l.Get(15, 15, 15, ChannelS))

	l.Clear()
	assert.Equal(t, uint16(0), l.Raw(15, 15, 15))
}
