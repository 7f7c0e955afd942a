package world

// TileGroupType tells land regions from water regions.
type TileGroupType uint8

const (
	Water TileGroupType = iota
	Land
)

func (t TileGroupType) String() string {
	if t == Land {
		return "Land"
	}
	return "Water"
}

// TileGroup is a maximal 4-connected region of uniform collidability.
type TileGroup struct {
	Type  TileGroupType
	Tiles []int
}

// floodFill partitions the arena into land and water regions with an
// explicit stack, scanning seeds in row-major order.
func (w *World) floodFill() {
	var stack []int
	for i := range w.tiles {
		if w.tiles[i].FloodFilled {
			continue
		}
		land := w.tiles[i].Collidable
		group := &TileGroup{Type: Water}
		if land {
			group.Type = Land
		}

		stack = append(stack[:0], i)
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			t := &w.tiles[idx]
			if t.FloodFilled || t.Collidable != land {
				continue
			}
			t.FloodFilled = true
			group.Tiles = append(group.Tiles, idx)

			for _, n := range w.neighbors[idx] {
				nt := &w.tiles[n]
				if !nt.FloodFilled && nt.Collidable == land {
					stack = append(stack, n)
				}
			}
		}

		if len(group.Tiles) == 0 {
			continue
		}
		if land {
			w.lands = append(w.lands, group)
		} else {
			w.waters = append(w.waters, group)
		}
	}
}
