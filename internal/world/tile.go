package world

import "slices"

// HeightType buckets a tile's elevation. The order is significant: every
// type from Sand upward is land.
type HeightType uint8

const (
	DeepWater HeightType = iota
	ShallowWater
	Shore
	Sand
	Grass
	Forest
	Rock
	Snow
	RiverBed
)

// heightLevels maps a height threshold bucket to its type. Shore is never
// produced by thresholds; it only takes part in the moisture correction.
var heightLevels = [7]HeightType{DeepWater, ShallowWater, Sand, Grass, Forest, Rock, Snow}

func (h HeightType) String() string {
	switch h {
	case DeepWater:
		return "DeepWater"
	case ShallowWater:
		return "ShallowWater"
	case Shore:
		return "Shore"
	case Sand:
		return "Sand"
	case Grass:
		return "Grass"
	case Forest:
		return "Forest"
	case Rock:
		return "Rock"
	case Snow:
		return "Snow"
	case RiverBed:
		return "River"
	}
	return "Unknown"
}

// HeatType buckets a tile's temperature.
type HeatType uint8

const (
	Coldest HeatType = iota
	Colder
	Cold
	Warm
	Warmer
	Warmest
)

func (h HeatType) String() string {
	return [...]string{"Coldest", "Colder", "Cold", "Warm", "Warmer", "Warmest"}[h]
}

// MoistureType buckets a tile's moisture.
type MoistureType uint8

const (
	Driest MoistureType = iota
	Dryer
	Dry
	Wet
	Wetter
	Wettest
)

func (m MoistureType) String() string {
	return [...]string{"Driest", "Dryer", "Dry", "Wet", "Wetter", "Wettest"}[m]
}

// Adjacency bits shared by Tile.Bitmask and Tile.BiomeBitmask.
const (
	BitTop    uint8 = 1
	BitRight  uint8 = 2
	BitBottom uint8 = 4
	BitLeft   uint8 = 8
	BitAll          = BitTop | BitRight | BitBottom | BitLeft
)

// Tile is one grid cell. Tiles live in the World arena and refer to rivers by
// ID only.
type Tile struct {
	X, Y int

	HeightValue float64
	HeightType  HeightType

	HeatValue float64
	HeatType  HeatType

	MoistureValue float64
	MoistureType  MoistureType

	Cloud1 float64
	Cloud2 float64

	Biome        BiomeType
	BiomeBitmask uint8
	// Bitmask marks cardinal neighbors sharing this tile's height type.
	Bitmask uint8

	Collidable  bool
	FloodFilled bool

	// Rivers lists the IDs of rivers passing through, in arrival order.
	Rivers    []int
	RiverSize int
}

// HasRiver reports whether river id passes through the tile.
func (t *Tile) HasRiver(id int) bool {
	return slices.Contains(t.Rivers, id)
}

func (t *Tile) addRiver(id int) {
	if !t.HasRiver(id) {
		t.Rivers = append(t.Rivers, id)
	}
}

func (t *Tile) removeRiver(id int) {
	if i := slices.Index(t.Rivers, id); i >= 0 {
		t.Rivers = slices.Delete(t.Rivers, i, i+1)
	}
	if len(t.Rivers) == 0 {
		t.Rivers = nil
	}
}
