package world

import "testing"

func TestBiomeTableCorners(t *testing.T) {
	cases := []struct {
		m    MoistureType
		h    HeatType
		want BiomeType
	}{
		{Driest, Coldest, Ice},
		{Wettest, Coldest, Ice},
		{Driest, Colder, Tundra},
		{Driest, Warmest, Desert},
		{Dry, Warmer, Savanna},
		{Wet, Cold, BorealForest},
		{Wetter, Warm, SeasonalForest},
		{Wettest, Warm, TemperateRainforest},
		{Wettest, Warmest, TropicalRainforest},
		{Dryer, Cold, Grassland},
		{Dry, Cold, Woodland},
	}
	for _, tc := range cases {
		if got := BiomeFor(tc.m, tc.h); got != tc.want {
			t.Fatalf("BiomeFor(%v, %v) = %v, want %v", tc.m, tc.h, got, tc.want)
		}
	}
}

func TestAssignBiomesSkipsWater(t *testing.T) {
	w := newTestWorld(t, smallConfig(3, 3))
	for i := range w.tiles {
		w.tiles[i].Collidable = true
		w.tiles[i].HeightType = Grass
		w.tiles[i].MoistureType = Wettest
		w.tiles[i].HeatType = Warmest
	}
	water := w.Index(1, 1)
	w.tiles[water].Collidable = false
	w.tiles[water].HeightType = ShallowWater

	w.assignBiomes()
	w.updateBitmasks()

	if w.tiles[water].Biome != BiomeNone || w.tiles[water].BiomeBitmask != 0 || w.tiles[water].Bitmask != 0 {
		t.Fatalf("water tile got biome data: %+v", w.tiles[water])
	}
	north := w.tiles[w.Index(1, 0)]
	if north.Biome != TropicalRainforest {
		t.Fatalf("unexpected biome %v", north.Biome)
	}
	// The water tile sits below; the other three neighbors share the biome.
	if want := BitAll &^ BitBottom; north.BiomeBitmask != want {
		t.Fatalf("biome bitmask %04b, want %04b", north.BiomeBitmask, want)
	}
	if want := BitAll &^ BitBottom; north.Bitmask != want {
		t.Fatalf("height bitmask %04b, want %04b", north.Bitmask, want)
	}
	corner := w.tiles[w.Index(0, 0)]
	if corner.BiomeBitmask != BitAll {
		t.Fatalf("corner biome bitmask %04b, want %04b", corner.BiomeBitmask, BitAll)
	}
}

func TestBiomeBitmaskSeparatesBiomes(t *testing.T) {
	w := newTestWorld(t, smallConfig(2, 1))
	w.tiles[0] = Tile{Collidable: true, MoistureType: Driest, HeatType: Warmest, HeightType: Sand}
	w.tiles[1] = Tile{X: 1, Collidable: true, MoistureType: Wettest, HeatType: Warmest, HeightType: Sand}

	w.assignBiomes()
	w.updateBitmasks()

	// Both tiles are their own top and bottom neighbor on a one-row grid.
	if want := BitTop | BitBottom; w.tiles[0].BiomeBitmask != want {
		t.Fatalf("desert bitmask %04b, want %04b", w.tiles[0].BiomeBitmask, want)
	}
	if w.tiles[0].Bitmask != BitAll {
		t.Fatalf("sand height bitmask %04b, want %04b", w.tiles[0].Bitmask, BitAll)
	}
}
