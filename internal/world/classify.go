package world

// classifyTerrain buckets height, then applies the elevation corrections to
// the raw heat and moisture samples, re-derives their ranges and buckets them.
// Corrections read the normalized height and the height type of each tile, so
// height is always classified first.
func (w *World) classifyTerrain(f Fields) {
	p := w.cfg.Params
	w.height, w.heat, w.moisture = f.Height, f.Heat, f.Moisture

	for i := range w.tiles {
		t := &w.tiles[i]
		t.HeightValue = w.height.Normalized(i)
		t.HeightType = heightLevels[p.Height.Bucket(t.HeightValue)]
		t.Collidable = t.HeightType >= Sand
	}

	for i := range w.tiles {
		w.heat.Add(i, heatCorrection(&w.tiles[i]))
	}
	w.heat.Recompute()
	for i := range w.tiles {
		t := &w.tiles[i]
		t.HeatValue = w.heat.Normalized(i)
		t.HeatType = HeatType(min(p.Heat.Bucket(t.HeatValue), int(Warmest)))
	}

	for i := range w.tiles {
		w.moisture.Add(i, moistureCorrection(&w.tiles[i]))
	}
	w.moisture.Recompute()
	for i := range w.tiles {
		t := &w.tiles[i]
		t.MoistureValue = min(w.moisture.Normalized(i), 1)
		t.MoistureType = w.moistureType(t.MoistureValue)
	}

	if f.Cloud1 != nil {
		for i := range w.tiles {
			w.tiles[i].Cloud1 = f.Cloud1.Normalized(i)
		}
	}
	if f.Cloud2 != nil {
		for i := range w.tiles {
			w.tiles[i].Cloud2 = f.Cloud2.Normalized(i)
		}
	}
}

// heatCorrection cools high ground and warms everything else.
func heatCorrection(t *Tile) float64 {
	h := t.HeightValue
	switch t.HeightType {
	case Forest:
		return -0.1 * h
	case Rock:
		return -0.25 * h
	case Snow:
		return -0.4 * h
	default:
		return 0.1 * h
	}
}

// moistureCorrection makes water and its immediate shoreline wetter.
func moistureCorrection(t *Tile) float64 {
	h := t.HeightValue
	switch t.HeightType {
	case DeepWater:
		return 8 * h
	case ShallowWater:
		return 3 * h
	case Shore:
		return h
	case Sand:
		return 0.25 * h
	}
	return 0
}

func (w *World) moistureType(v float64) MoistureType {
	return MoistureType(min(w.cfg.Params.Moisture.Bucket(v), int(Wettest)))
}
