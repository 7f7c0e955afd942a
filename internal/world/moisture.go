package world

import "math"

// adjustMoistureMap wets the land around every carved river tile. Each ring d
// visits the two columns at horizontal offset ±d, the centre row plus d tiles
// above and below, adding falloff/distance to each visited tile.
func (w *World) adjustMoistureMap() {
	p := w.cfg.Params
	if p.MoistureRadius == 0 || p.MoistureFalloff == 0 {
		return
	}
	for i := range w.tiles {
		if w.tiles[i].HeightType != RiverBed {
			continue
		}
		x, y := w.grid.Coord(i)
		w.addMoisture(x, y, p.MoistureRadius, p.MoistureFalloff)
	}
}

func (w *World) addMoisture(x, y, radius int, k float64) {
	for d := 1; d <= radius; d++ {
		for _, sx := range [2]int{-d, d} {
			w.wet(w.grid.WrapIndex(x+sx, y), k/float64(d))
			for j := 1; j <= d; j++ {
				amount := k / math.Hypot(float64(d), float64(j))
				w.wet(w.grid.WrapIndex(x+sx, y+j), amount)
				w.wet(w.grid.WrapIndex(x+sx, y-j), amount)
			}
		}
	}
}

// wet raises both the raw accumulator and the tile value, then re-buckets
// the tile straight away.
func (w *World) wet(idx int, amount float64) {
	w.moisture.Add(idx, amount)
	t := &w.tiles[idx]
	t.MoistureValue = min(t.MoistureValue+amount, 1)
	t.MoistureType = w.moistureType(t.MoistureValue)
}
