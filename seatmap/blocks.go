package seatmap

import "sort"

// VacantBlocks finds all contiguous regions of empty seats according to the
// map's connectivity. Blocks are ordered by their lowest seat id and each
// block lists its seat ids in ascending order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (sm *SeatMap) VacantBlocks() [][]int {
	total := sm.width * sm.height
	seen := make([]bool, total)
	var blocks [][]int

	for y := 0; y < sm.height; y++ {
		for x := 0; x < sm.width; x++ {
			if sm.cells[y][x] == occupied {
				continue
			}
			i0 := sm.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect the block
			queue := []int{i0}
			seen[i0] = true
			var block []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				block = append(block, u)
				ux, uy := sm.Coordinate(u)
				for _, d := range sm.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !sm.InBounds(vx, vy) || sm.cells[vy][vx] == occupied {
						continue
					}
					vi := sm.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			sort.Ints(block)
			blocks = append(blocks, block)
		}
	}

	return blocks
}
