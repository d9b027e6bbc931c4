package region

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for Region construction.
var (
	// ErrNonFiniteScale indicates a NaN or ±Inf scale was supplied. A NaN
	// scale would make a Region unequal to itself under Go's == operator,
	// which silently breaks its use as a map key; Inf is never a meaningful
	// zoom factor either.
	ErrNonFiniteScale = errors.New("region: scale must be finite")

	// ErrNonPositiveScale indicates scale <= 0.
	ErrNonPositiveScale = errors.New("region: scale must be positive")

	// ErrNegativeOrigin indicates a negative X or Y.
	ErrNegativeOrigin = errors.New("region: x and y must be >= 0")

	// ErrNonPositiveExtent indicates width or height <= 0.
	ErrNonPositiveExtent = errors.New("region: width and height must be > 0")
)

// Region is an immutable composite key identifying one rendered tile: a
// scale factor plus a rectangular pixel extent in content coordinates.
//
// Equality is structural over all five fields (the zero value is not a
// valid Region and is never produced by NewRegion). Scale uses Go's exact
// float64 equality — see the package comment for why callers must supply
// canonical scale values.
type Region struct {
	Scale  float64
	X      int
	Y      int
	Width  int
	Height int
}

// NewRegion validates and constructs a Region. It rejects non-finite or
// non-positive scales, negative origins, and non-positive extents, so that
// every Region that exists is safe to use as a map key and to reason about
// with Area.
func NewRegion(scale float64, x, y, width, height int) (Region, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return Region{}, ErrNonFiniteScale
	}
	if scale <= 0 {
		return Region{}, ErrNonPositiveScale
	}
	if x < 0 || y < 0 {
		return Region{}, ErrNegativeOrigin
	}
	if width <= 0 || height <= 0 {
		return Region{}, ErrNonPositiveExtent
	}

	return Region{Scale: scale, X: x, Y: y, Width: width, Height: height}, nil
}

// Area returns width * height, the pixel cost this Region contributes to a
// budget-bounded cache.
func (r Region) Area() int {
	return r.Width * r.Height
}

// String renders a Region as "scale@x,y+wxh", e.g. "2@100,200+256x256".
func (r Region) String() string {
	return fmt.Sprintf("%g@%d,%d+%dx%d", r.Scale, r.X, r.Y, r.Width, r.Height)
}
