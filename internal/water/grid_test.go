package water

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGrid creates a grid with default params and the given heights
// (row-major, may be shorter than the grid).
func newTestGrid(t *testing.T, size int, heights ...float64) *Grid {
	t.Helper()
	g, err := New(size, DefaultParams())
	require.NoError(t, err)
	copy(g.heights, heights)
	g.recomputeBands()
	g.recomputeNormals()
	return g
}

// assertInvariants checks shape and band/height consistency.
func assertInvariants(t *testing.T, g *Grid) {
	t.Helper()
	n := g.SideLength()
	require.GreaterOrEqual(t, n, 2)
	assert.Equal(t, n*n, g.Len())
	assert.Len(t, g.Indices(), 6*(n-1)*(n-1))
	for i := range g.Len() {
		assert.Equal(t, Classify(g.Height(i), g.Params()), g.Band(i), "band of column %d", i)
		assert.InDelta(t, 1.0, g.Normal(i).Length(), 1e-9, "normal of column %d", i)
	}
}

func TestNew(t *testing.T) {
	for _, size := range []int{2, 3, 7, 20} {
		g, err := New(size, DefaultParams())
		require.NoError(t, err)
		assertInvariants(t, g)

		for i := range g.Len() {
			c := g.Column(i)
			assert.Zero(t, c.Height)
			assert.Zero(t, c.Velocity)
			assert.Equal(t, BandBottom, c.Band)
			assert.InDelta(t, 1.0, c.Normal.Y, 1e-12)
		}
	}
}

func TestNewPositionsAndTexCoords(t *testing.T) {
	g := newTestGrid(t, 3)

	first := g.Column(0)
	assert.Equal(t, 0.5, first.Position.X)
	assert.Equal(t, 0.5, first.Position.Z)
	assert.Equal(t, [2]float64{0, 0}, first.TexCoord)

	last := g.Column(8)
	assert.Equal(t, -0.5, last.Position.X)
	assert.Equal(t, -0.5, last.Position.Z)
	assert.Equal(t, [2]float64{1, 1}, last.TexCoord)

	// Column 5 is (x=2, y=1).
	mid := g.Column(5)
	assert.Equal(t, -0.5, mid.Position.X)
	assert.Equal(t, 0.0, mid.Position.Z)
	assert.Equal(t, [2]float64{1, 0.5}, mid.TexCoord)
}

func TestNewIndices(t *testing.T) {
	g := newTestGrid(t, 2)
	assert.Equal(t, []uint32{0, 2, 1, 1, 2, 3}, g.Indices())

	g = newTestGrid(t, 3)
	// Second cell of the second row: x=1, y=1.
	assert.Equal(t, []uint32{4, 7, 5, 5, 7, 8}, g.Indices()[18:24])
}

func TestNewInvalid(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		_, err := New(size, DefaultParams())
		assert.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
	}

	_, err := New(MaxSideLength+1, DefaultParams())
	assert.ErrorIs(t, err, ErrAllocation)

	p := DefaultParams()
	p.Dampening = 0
	_, err = New(4, p)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestDestroy(t *testing.T) {
	g := newTestGrid(t, 4)
	gen := g.Generation()

	g.Destroy()
	assert.Zero(t, g.SideLength())
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Indices())
	assert.NotEqual(t, gen, g.Generation())

	// Idempotent, and the other operations become no-ops.
	gen = g.Generation()
	g.Destroy()
	assert.Equal(t, gen, g.Generation())

	g.Advance(0.1)
	assert.False(t, g.SetHeight(0, true))
	assert.ErrorIs(t, g.Resize(true), ErrDestroyed)
	assert.Zero(t, g.Energy())
}

func TestResizeGrowCopiesEdges(t *testing.T) {
	g := newTestGrid(t, 2, 0.1, 0.2, 0.3, 0.5)
	g.velocities[3] = 7
	gen := g.Generation()

	require.NoError(t, g.Resize(true))
	require.Equal(t, 3, g.SideLength())
	assertInvariants(t, g)
	assert.NotEqual(t, gen, g.Generation())

	want := []float64{
		0.1, 0.2, 0.2,
		0.3, 0.5, 0.5,
		0.3, 0.5, 0.5,
	}
	for i, h := range want {
		assert.Equal(t, h, g.Height(i), "height of column %d", i)
	}
	assert.Equal(t, 7.0, g.Velocity(4))
	assert.Equal(t, 7.0, g.Velocity(8))
	assert.Equal(t, BandTop, g.Band(8))
}

func TestResizeShrinkClampsAtTwo(t *testing.T) {
	g := newTestGrid(t, 2, 0.1, 0.2, 0.3, 0.4)
	require.NoError(t, g.Resize(false))
	assert.Equal(t, 2, g.SideLength())
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, g.heights)
	assertInvariants(t, g)
}

func TestResizeRoundTrip(t *testing.T) {
	const size = 5
	heights := make([]float64, size*size)
	for i := range heights {
		heights[i] = float64(i%7)*0.13 - 0.3
	}
	g := newTestGrid(t, size, heights...)
	for i := range g.velocities {
		g.velocities[i] = float64(i) * 0.01
	}
	velocities := append([]float64(nil), g.velocities...)

	require.NoError(t, g.Resize(true))
	require.NoError(t, g.Resize(false))

	require.Equal(t, size, g.SideLength())
	assert.Equal(t, heights, g.heights)
	assert.Equal(t, velocities, g.velocities)
	assertInvariants(t, g)
}

func TestResizeAllocationFailureKeepsGrid(t *testing.T) {
	defer func(limit int) { sideLimit = limit }(sideLimit)
	sideLimit = 3

	g := newTestGrid(t, 3, 0, 0, 0, 0, 0.5)
	gen := g.Generation()

	err := g.Resize(true)
	require.ErrorIs(t, err, ErrAllocation)

	assert.Equal(t, 3, g.SideLength())
	assert.Equal(t, gen, g.Generation())
	assert.Equal(t, 0.5, g.Height(4))
	assertInvariants(t, g)

	// Shrinking stays within the limit.
	require.NoError(t, g.Resize(false))
	assert.Equal(t, 2, g.SideLength())
}

func TestSetParams(t *testing.T) {
	g := newTestGrid(t, 2, 0.3)
	assert.Equal(t, BandMiddle, g.Band(0))

	p := DefaultParams()
	p.UpperThreshold = 0.25
	require.NoError(t, g.SetParams(p))
	assert.Equal(t, BandTop, g.Band(0))

	p.LowerThreshold = 0.5
	assert.ErrorIs(t, g.SetParams(p), ErrInvalidParams)
	assert.Equal(t, 0.25, g.Params().UpperThreshold)
}

func TestHeightRangeAndEnergy(t *testing.T) {
	g := newTestGrid(t, 2, -0.5, 0.25, 1, 0)
	lo, hi := g.HeightRange()
	assert.Equal(t, -0.5, lo)
	assert.Equal(t, 1.0, hi)
	assert.InDelta(t, 0.25+0.0625+1, g.Energy(), 1e-12)
}
