package water

// Interleaved vertex layout of Buffer.Vertices, in float32 units.
const (
	OffsetPosition = 0
	OffsetColor    = 3
	OffsetNormal   = 6
	OffsetTexCoord = 9
	VertexStride   = 11
)

// Buffer is the renderer-facing copy of a grid: one interleaved vertex per
// column (position, color, normal, texcoord) and the triangle index list.
// It is regenerated from the grid after each mutation and never feeds back
// into the simulation.
type Buffer struct {
	Vertices []float32
	Indices  []uint32
	// Generation is the grid generation the buffer was filled from. A change
	// means the vertex and index counts changed and GPU buffers must be
	// reallocated.
	Generation uint64
}

// FillBuffer writes the grid's current state into b, reusing its backing
// arrays when they are large enough.
func (g *Grid) FillBuffer(b *Buffer, palette Palette) {
	n := len(g.heights) * VertexStride
	if cap(b.Vertices) < n {
		b.Vertices = make([]float32, n)
	}
	b.Vertices = b.Vertices[:n]

	if b.Generation != g.generation || len(b.Indices) != len(g.indices) {
		b.Indices = append(b.Indices[:0], g.indices...)
		b.Generation = g.generation
	}

	for i := range g.heights {
		v := b.Vertices[i*VertexStride : (i+1)*VertexStride]

		p := g.Position(i).Float32()
		v[OffsetPosition+0] = p.X
		v[OffsetPosition+1] = p.Y
		v[OffsetPosition+2] = p.Z

		c := palette.Color(g.bands[i])
		copy(v[OffsetColor:OffsetColor+3], c[:])

		n := g.normals[i].Float32()
		v[OffsetNormal+0] = n.X
		v[OffsetNormal+1] = n.Y
		v[OffsetNormal+2] = n.Z

		uv := g.TexCoord(i)
		v[OffsetTexCoord+0] = float32(uv[0])
		v[OffsetTexCoord+1] = float32(uv[1])
	}
}
