package world

import "tileworld/internal/core"

// BiomeType is the ecological class of a land tile. BiomeNone marks water
// and carved river tiles.
type BiomeType uint8

const (
	BiomeNone BiomeType = iota
	Desert
	Savanna
	TropicalRainforest
	Grassland
	Woodland
	SeasonalForest
	TemperateRainforest
	BorealForest
	Tundra
	Ice
)

var biomeNames = [...]string{
	BiomeNone:           "None",
	Desert:              "Desert",
	Savanna:             "Savanna",
	TropicalRainforest:  "TropicalRainforest",
	Grassland:           "Grassland",
	Woodland:            "Woodland",
	SeasonalForest:      "SeasonalForest",
	TemperateRainforest: "TemperateRainforest",
	BorealForest:        "BorealForest",
	Tundra:              "Tundra",
	Ice:                 "Ice",
}

func (b BiomeType) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return "Unknown"
}

// biomeTable is indexed [moisture][heat], Driest and Coldest first.
var biomeTable = [6][6]BiomeType{
	{Ice, Tundra, Grassland, Desert, Desert, Desert},
	{Ice, Tundra, Grassland, Desert, Desert, Desert},
	{Ice, Tundra, Woodland, Woodland, Savanna, Savanna},
	{Ice, Tundra, BorealForest, Woodland, Savanna, Savanna},
	{Ice, Tundra, BorealForest, SeasonalForest, TropicalRainforest, TropicalRainforest},
	{Ice, Tundra, BorealForest, TemperateRainforest, TropicalRainforest, TropicalRainforest},
}

// BiomeFor returns the biome of a land tile with the given buckets.
func BiomeFor(m MoistureType, h HeatType) BiomeType {
	return biomeTable[m][h]
}

func (w *World) assignBiomes() {
	for i := range w.tiles {
		t := &w.tiles[i]
		if !t.Collidable {
			continue
		}
		t.Biome = BiomeFor(t.MoistureType, t.HeatType)
	}
}

var directionBits = [4]uint8{
	core.Right:  BitRight,
	core.Top:    BitTop,
	core.Left:   BitLeft,
	core.Bottom: BitBottom,
}

// updateBitmasks derives the biome and height adjacency masks. Both only
// set bits on land tiles.
func (w *World) updateBitmasks() {
	for i := range w.tiles {
		t := &w.tiles[i]
		t.BiomeBitmask, t.Bitmask = 0, 0
		if !t.Collidable {
			continue
		}
		for _, d := range core.Directions {
			n := &w.tiles[w.neighbors[i][d]]
			if n.HeightType == t.HeightType {
				t.Bitmask |= directionBits[d]
			}
			if n.Collidable && n.Biome == t.Biome {
				t.BiomeBitmask |= directionBits[d]
			}
		}
	}
}
