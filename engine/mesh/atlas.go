package mesh

const (
	AtlasTilesPerRow = 16
	atlasTileSize    = float32(1) / AtlasTilesPerRow
)

// TileUV is the texture rectangle of one atlas tile; (U1, V1) is the lower corner.
type TileUV struct {
	U1, V1, U2, V2 float32
}

// CalculateTileUV returns the rectangle of a tile in a 16x16 atlas whose first row sits at
// the top of the texture (v grows upwards).
func CalculateTileUV(textureIndex byte) TileUV {
	u := float32(textureIndex%AtlasTilesPerRow) * atlasTileSize
	v := 1 - float32(1+textureIndex/AtlasTilesPerRow)*atlasTileSize
	return TileUV{
		U1: u,
		V1: v,
		U2: u + atlasTileSize,
		V2: v + atlasTileSize,
	}
}
