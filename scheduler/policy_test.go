package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetTileSize_FloorsAtMinimum(t *testing.T) {
	assert.Equal(t, MinTileSize, TargetTileSize(300)) // 300/6=50 < MinTileSize
	assert.Equal(t, 200, TargetTileSize(1200))         // 1200/6=200
}

func TestShouldChangeTileSize(t *testing.T) {
	assert.True(t, ShouldChangeTileSize(0, 100), "no current size yet")
	assert.False(t, ShouldChangeTileSize(100, 150), "1.5x is under threshold")
	assert.True(t, ShouldChangeTileSize(100, 200), "2x exceeds threshold")
	assert.True(t, ShouldChangeTileSize(200, 100), "halving exceeds threshold")
}

func TestBudget_FloorsAtMinimum(t *testing.T) {
	assert.Equal(t, MinBudget, Budget(10, 10))
	assert.Equal(t, 10*1920*1080, Budget(1920, 1080))
}

func TestEnumerateVisible_CoversViewportWithMargin(t *testing.T) {
	regions, err := EnumerateVisible(1, 0, 0, 100, 100, 1000, 1000, 50, 50)
	require.NoError(t, err)

	// viewport [0,100)x[0,100) with one tile of margin on every side and
	// 50px tiles: x,y each range over {-50,0,50,100} pre-clip; -50 is
	// clipped out since it falls below content origin.
	assert.NotEmpty(t, regions)
	for _, r := range regions {
		assert.GreaterOrEqual(t, r.X, 0)
		assert.GreaterOrEqual(t, r.Y, 0)
		assert.Less(t, r.X, 1000)
		assert.Less(t, r.Y, 1000)
	}
}

func TestEnumerateVisible_ClipsAtContentBounds(t *testing.T) {
	regions, err := EnumerateVisible(1, 80, 80, 40, 40, 100, 100, 50, 50)
	require.NoError(t, err)

	for _, r := range regions {
		assert.LessOrEqual(t, r.X+r.Width, 100)
		assert.LessOrEqual(t, r.Y+r.Height, 100)
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 2, floorDiv(5, 2))
	assert.Equal(t, -3, floorDiv(-5, 2))
	assert.Equal(t, -1, floorDiv(-1, 2))
}
