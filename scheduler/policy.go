package scheduler

import "github.com/vertexkit/topograph/region"

// Tile-size hysteresis constants.
const (
	MinTileSize     = 100
	TilesPerAxis    = 6
	ChangeThreshold = 1.8
)

// Budget policy constants.
const (
	MinBudget        = 10_000_000
	BudgetMultiplier = 10
)

// TargetTileSize derives the tile edge length a viewport dimension wants,
// before hysteresis is applied.
func TargetTileSize(viewportDim int) int {
	t := viewportDim / TilesPerAxis
	if t < MinTileSize {
		return MinTileSize
	}

	return t
}

// ShouldChangeTileSize reports whether target departs from current by more
// than ChangeThreshold in either direction. A non-positive current size
// (no tile size chosen yet) always triggers a change.
func ShouldChangeTileSize(current, target int) bool {
	if current <= 0 {
		return true
	}

	ratio := float64(target) / float64(current)
	if ratio < 1 {
		ratio = 1 / ratio
	}

	return ratio > ChangeThreshold
}

// Budget derives the pixel budget for a viewport of the given size.
func Budget(viewportWidth, viewportHeight int) int {
	b := BudgetMultiplier * viewportWidth * viewportHeight
	if b < MinBudget {
		return MinBudget
	}

	return b
}

// EnumerateVisible returns the tiles of size tw x th covering the viewport
// (vx, vy, vw, vh) within content bounds (cw, ch), padded by one tile of
// read-ahead margin on every side. scale is stamped onto every returned
// Region unchanged.
func EnumerateVisible(scale float64, vx, vy, vw, vh, cw, ch, tw, th int) ([]region.Region, error) {
	if tw <= 0 || th <= 0 || cw <= 0 || ch <= 0 {
		return nil, nil
	}

	var regions []region.Region

	startX := floorDiv(vx, tw)*tw - tw
	endX := vx + vw + tw
	for x := startX; x < endX; x += tw {
		if x < 0 || x >= cw {
			continue
		}
		width := tw
		if x+width > cw {
			width = cw - x
		}

		startY := floorDiv(vy, th)*th - th
		endY := vy + vh + th
		for y := startY; y < endY; y += th {
			if y < 0 || y >= ch {
				continue
			}
			height := th
			if y+height > ch {
				height = ch - y
			}

			r, err := region.NewRegion(scale, x, y, width, height)
			if err != nil {
				return nil, err
			}
			regions = append(regions, r)
		}
	}

	return regions, nil
}

// floorDiv is integer division rounding toward negative infinity, unlike
// Go's built-in / which truncates toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}
