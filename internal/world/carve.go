package world

import pkgcore "tileworld/pkg/core"

// Segments holds the cumulative tile counts, measured from the mouth, of the
// width 4, 3, 2 and 1 stretches of a carved river. Tiles past the last count
// are carved as a single-tile channel.
type Segments [4]int

// Width returns the carve width for the tile counter steps from the mouth.
func (s Segments) Width(counter int) int {
	for i, limit := range s {
		if counter < limit {
			return 4 - i
		}
	}
	return 0
}

// footprints lists the extra offsets marked around a path tile per carve
// width. Negative dy is toward the top row.
var footprints = [5][]struct{ dx, dy int }{
	0: nil,
	1: {{0, 1}, {1, 0}, {1, 1}},
	2: {{0, 1}, {1, 0}, {1, 1}, {0, -1}, {-1, -1}, {1, -1}, {-1, 0}, {-1, 1}},
	3: {{0, 1}, {1, 0}, {1, 1}, {0, -1}, {-1, -1}, {1, -1}, {-1, 0}, {-1, 1},
		{2, 0}, {2, 1}, {0, 2}, {1, 2}},
	4: {{0, 1}, {1, 0}, {1, 1}, {0, -1}, {1, -1}, {-1, 0}, {-1, 1},
		{2, 0}, {2, 1}, {0, 2}, {1, 2}, {-1, 2}, {-2, 1}, {-2, 0}, {-2, -1},
		{-1, -1}, {-1, -2}, {0, -2}, {1, -2}, {2, -1}},
}

// digRiverGroups carves every accepted river. Within a group the river with
// the most tiles is the trunk and the rest are carved as its tributaries.
// Rivers outside any group are carved as trunks afterwards, in ID order.
func (w *World) digRiverGroups() {
	grouped := make(map[int]bool)
	for _, g := range w.riverGroups {
		trunk := w.rivers[g.Rivers[0]]
		for _, id := range g.Rivers[1:] {
			if r := w.rivers[id]; len(r.Tiles) > len(trunk.Tiles) {
				trunk = r
			}
		}
		w.digTrunk(trunk)
		grouped[trunk.ID] = true
		for _, id := range g.Rivers {
			if id == trunk.ID {
				continue
			}
			w.digTributary(w.rivers[id], trunk)
			grouped[id] = true
		}
	}
	for _, r := range w.rivers {
		if !grouped[r.ID] {
			w.digTrunk(r)
		}
	}
}

func (w *World) digTrunk(r *River) {
	size := w.rng.Range(1, 5)
	w.dig(r, graduatedSegments(w.rng, len(r.Tiles), size))
}

// digTributary carves r so it never grows wider than parent where the two
// paths first meet.
func (w *World) digTributary(r, parent *River) {
	at, interSize := 0, 0
	onParent := make(map[int]struct{}, len(parent.Tiles))
	for _, idx := range parent.Tiles {
		onParent[idx] = struct{}{}
	}
	for i, idx := range r.Tiles {
		if _, ok := onParent[idx]; ok {
			at, interSize = i, w.tiles[idx].RiverSize
			break
		}
	}

	count := len(r.Tiles) - at
	size := w.rng.Range(interSize, 5)
	seg := graduatedSegments(w.rng, len(r.Tiles), size)
	w.dig(r, clampSegments(seg, interSize, count))
}

// clampSegments limits a tributary to the parent's width at the confluence.
// count is the number of tributary tiles from the confluence to the mouth.
func clampSegments(seg Segments, interSize, count int) Segments {
	switch interSize {
	case 1:
		return Segments{0, 0, 0, count}
	case 2:
		seg[0], seg[1], seg[2] = 0, 0, count
	case 3:
		seg[0], seg[1] = 0, count
	case 4:
		seg[0] = count
	default:
		return Segments{}
	}
	return seg
}

// intRange is the subset of the RNG the segment planner needs.
type intRange interface {
	Range(min, max int) int
}

// graduatedSegments splits a river of length tiles into stretches drawn from
// successive halvings of its length. Rivers narrower than size 4, 3 and 2
// drop the widest stretches. Overruns are trimmed from the widest stretch
// first until the total fits.
func graduatedSegments(rng intRange, length, size int) Segments {
	two := length / 2
	three := two / 2
	four := three / 2
	five := four / 2

	var s Segments
	s[0] = rng.Range(five/3, five)
	if size < 4 {
		s[0] = 0
	}
	s[1] = s[0] + rng.Range(four/3, four)
	if size < 3 {
		s[0], s[1] = 0, 0
	}
	s[2] = s[1] + rng.Range(three/3, three)
	if size < 2 {
		s[0], s[1], s[2] = 0, 0, 0
	}
	s[3] = s[2] + rng.Range(two/3, two)

	for extra := s[3] - length; extra > 0; extra-- {
		for i := range s {
			if s[i] > 0 {
				for j := i; j < len(s); j++ {
					s[j]--
				}
				break
			}
		}
	}
	return s
}

// planWidths returns the carve width of every path index, source first.
func planWidths(length int, seg Segments) []int {
	widths := make([]int, length)
	for counter := 0; counter < length; counter++ {
		widths[length-1-counter] = seg.Width(counter)
	}
	return widths
}

func (w *World) dig(r *River, seg Segments) {
	for i, width := range planWidths(len(r.Tiles), seg) {
		w.digTile(r.Tiles[i], r.ID, width)
	}
}

// digTile turns idx into river terrain with the given width footprint.
func (w *World) digTile(idx, id, width int) {
	w.markRiver(idx, id)
	w.tiles[idx].RiverSize = width
	for _, off := range footprints[width] {
		w.markRiver(w.grid.Offset(idx, off.dx, off.dy), id)
	}
}

func (w *World) markRiver(idx, id int) {
	t := &w.tiles[idx]
	t.addRiver(id)
	t.HeightType = RiverBed
	t.HeightValue = 0
	t.Collidable = false
}

var _ intRange = (*pkgcore.RNG)(nil)
