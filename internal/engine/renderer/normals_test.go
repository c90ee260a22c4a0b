package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/ripple/internal/water"
)

func TestNormalLinesFlat(t *testing.T) {
	g, err := water.New(3, water.DefaultParams())
	require.NoError(t, err)

	var buf water.Buffer
	g.FillBuffer(&buf, water.DefaultPalette())

	lines := NormalLines(nil, &buf, 0.5)
	require.Len(t, lines, g.Len()*6)

	for i := range g.Len() {
		seg := lines[i*6 : i*6+6]
		p := g.Position(i).Float32()
		assert.Equal(t, []float32{p.X, p.Y, p.Z}, seg[:3])
		assert.InDelta(t, p.Y+0.5, seg[4], 1e-6, "flat normals point up")
		assert.Equal(t, seg[0], seg[3])
		assert.Equal(t, seg[2], seg[5])
	}
}

func TestNormalLinesReusesSlice(t *testing.T) {
	g, err := water.New(2, water.DefaultParams())
	require.NoError(t, err)

	var buf water.Buffer
	g.FillBuffer(&buf, water.DefaultPalette())

	dst := make([]float32, 0, 64)
	lines := NormalLines(dst, &buf, 1)
	assert.Len(t, lines, 24)
	assert.Equal(t, &dst[:1][0], &lines[0])

	assert.Empty(t, NormalLines(lines, &water.Buffer{}, 1))
}
