package water

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceFlatIsFixedPoint(t *testing.T) {
	g := newTestGrid(t, 3)
	g.Advance(1.0)

	for i := range g.Len() {
		assert.Zero(t, g.Height(i))
		assert.Zero(t, g.Velocity(i))
	}
	assertInvariants(t, g)
}

func TestAdvanceCenterSpreads(t *testing.T) {
	g := newTestGrid(t, 3,
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	)
	g.Advance(0.01)

	center := g.Height(4)
	assert.Less(t, center, 1.0)
	for _, i := range []int{1, 3, 5, 7} {
		assert.Greater(t, g.Height(i), 0.0, "orthogonal neighbor %d", i)
		assert.Less(t, g.Height(i), center, "orthogonal neighbor %d", i)
	}
	// Corners only see zero-height neighbors in the previous step.
	for _, i := range []int{0, 2, 6, 8} {
		assert.Zero(t, g.Height(i), "corner %d", i)
	}
	// Symmetric input, symmetric output.
	assert.Equal(t, g.Height(1), g.Height(7))
	assert.Equal(t, g.Height(3), g.Height(5))
	assertInvariants(t, g)
}

func TestAdvanceClampsCornerNeighbors(t *testing.T) {
	const dt = 0.01
	p := DefaultParams()
	g := newTestGrid(t, 3, 1)
	g.Advance(dt)

	// The two missing neighbors of corner (0, 0) replicate the corner, so
	// the Laplacian is (0 + 1 + 0 + 1 - 4) / spacing².
	spacing := p.ColumnScale / 3
	laplacian := -2 / (spacing * spacing)
	v := (p.Propagation * p.Propagation * laplacian * dt) * p.Dampening

	assert.InDelta(t, v, g.Velocity(0), 1e-12)
	assert.InDelta(t, 1+v*dt, g.Height(0), 1e-12)
}

func TestAdvanceUsesPreviousStepSnapshot(t *testing.T) {
	const dt = 0.05
	p := DefaultParams()
	g := newTestGrid(t, 3, 0, 1)
	g.Advance(dt)

	// Column 2 (x=2, y=0) reads column 1 at its pre-step height of 1 even
	// though column 1 was already advanced earlier in the same pass.
	spacing := p.ColumnScale / 3
	laplacian := (0 + 1 + 0 + 0 - 0) / (spacing * spacing)
	v := p.Propagation * p.Propagation * laplacian * dt * p.Dampening
	assert.InDelta(t, v*dt, g.Height(2), 1e-12)
}

func TestAdvanceDeterministic(t *testing.T) {
	heights := []float64{0.3, -0.1, 0, 0.7, 0.2, 0, 0, 0.45, -0.2, 0, 0.1, 0, 0, 0, 0.9, 0}
	a := newTestGrid(t, 4, heights...)
	b := newTestGrid(t, 4, heights...)

	for range 25 {
		a.Advance(1.0 / 80)
		b.Advance(1.0 / 80)
	}

	assert.Equal(t, a.heights, b.heights)
	assert.Equal(t, a.velocities, b.velocities)
	assert.Equal(t, a.normals, b.normals)
}

func TestAdvanceZeroInterval(t *testing.T) {
	g := newTestGrid(t, 3, 0, 0.5)
	g.velocities[1] = 2

	g.Advance(0)

	assert.Equal(t, 0.5, g.Height(1))
	assert.InDelta(t, 2*DefaultParams().Dampening, g.Velocity(1), 1e-12)
}

func TestAdvanceDampensEnergy(t *testing.T) {
	g := newTestGrid(t, 20)
	require.True(t, g.SetHeight(210, true))
	require.True(t, g.SetHeight(210, true))
	start := g.Energy()

	for range 800 {
		g.Advance(1.0 / 80)
	}

	assert.Less(t, g.Energy(), start)
	assertInvariants(t, g)
}

func TestAdvanceKeepsShape(t *testing.T) {
	g := newTestGrid(t, 6, 0.5, 0.5, 0.5)
	gen := g.Generation()
	for range 10 {
		g.Advance(1.0 / 80)
		assertInvariants(t, g)
	}
	assert.Equal(t, gen, g.Generation())
}
