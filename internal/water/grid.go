package water

import (
	"errors"
	"fmt"

	"github.com/Faultbox/ripple/pkg/math"
)

// MaxSideLength bounds the grid so linear indices fit the uint32 index
// buffer and a runaway grow request fails cleanly instead of exhausting
// memory.
const MaxSideLength = 4096

var (
	// ErrInvalidSize is returned when a grid is created with fewer than
	// two columns per side.
	ErrInvalidSize = errors.New("water: side length must be at least 2")
	// ErrAllocation is returned when storage for a grid cannot be obtained.
	// The grid being resized keeps its previous contents.
	ErrAllocation = errors.New("water: allocation failed")
	// ErrDestroyed is returned when resizing a grid after Destroy.
	ErrDestroyed = errors.New("water: grid destroyed")
)

// sideLimit is MaxSideLength, lowered by tests to exercise ErrAllocation.
var sideLimit = MaxSideLength

// storage is everything that is reallocated together on create and resize.
type storage struct {
	side       int
	heights    []float64
	velocities []float64
	scratch    []float64 // next-step heights, swapped with heights on commit
	bands      []Band
	normals    []math.Vec3d
	indices    []uint32
}

// Grid is a square grid of water columns stored row-major.
//
// Heights and velocities are authoritative; bands and normals are derived
// and are recomputed by every operation that changes a height. A Grid is
// not safe for concurrent use.
type Grid struct {
	storage
	params     Params
	generation uint64
}

// Column is a snapshot of one water column.
type Column struct {
	Height   float64
	Velocity float64
	Position math.Vec3d
	Band     Band
	Normal   math.Vec3d
	TexCoord [2]float64
}

// New creates a flat grid with size columns per side.
func New(size int, params Params) (*Grid, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	st, err := allocate(size)
	if err != nil {
		return nil, err
	}

	g := &Grid{storage: *st, params: params}
	g.populate()
	return g, nil
}

// allocate obtains zeroed storage for a grid of the given side length.
func allocate(side int) (st *storage, err error) {
	if side > sideLimit {
		return nil, fmt.Errorf("%w: side length %d exceeds %d", ErrAllocation, side, sideLimit)
	}

	defer func() {
		if r := recover(); r != nil {
			st = nil
			err = fmt.Errorf("%w: side length %d: %v", ErrAllocation, side, r)
		}
	}()

	n := side * side
	cells := (side - 1) * (side - 1)
	return &storage{
		side:       side,
		heights:    make([]float64, n),
		velocities: make([]float64, n),
		scratch:    make([]float64, n),
		bands:      make([]Band, n),
		normals:    make([]math.Vec3d, n),
		indices:    make([]uint32, 6*cells),
	}, nil
}

// populate fills the derived data of freshly allocated storage from its
// heights and bumps the generation so renderers re-bind their buffers.
func (g *Grid) populate() {
	g.buildIndices()
	g.recomputeBands()
	g.recomputeNormals()
	g.generation++
}

// buildIndices emits two triangles per cell: (top-left, bottom-left,
// top-right) and (top-right, bottom-left, bottom-right).
func (g *Grid) buildIndices() {
	side := g.side
	i := 0
	for y := range side - 1 {
		for x := range side - 1 {
			tl := uint32(y*side + x)
			tr := tl + 1
			bl := tl + uint32(side)
			br := bl + 1

			g.indices[i+0] = tl
			g.indices[i+1] = bl
			g.indices[i+2] = tr

			g.indices[i+3] = tr
			g.indices[i+4] = bl
			g.indices[i+5] = br
			i += 6
		}
	}
}

// Destroy releases the grid storage. Calling it again is a no-op.
func (g *Grid) Destroy() {
	if g.side == 0 {
		return
	}
	g.storage = storage{}
	g.generation++
}

// Resize grows or shrinks the grid by one column per side, never below two.
// Heights and velocities move by coordinate: new cell (x, y) takes old cell
// (min(x, old-1), min(y, old-1)), so cells beyond the old extent repeat the
// old edge. On error the grid is left unchanged.
func (g *Grid) Resize(grow bool) error {
	if g.side == 0 {
		return ErrDestroyed
	}

	oldSide := g.side
	newSide := oldSide - 1
	if grow {
		newSide = oldSide + 1
	}
	newSide = max(2, newSide)

	next, err := allocate(newSide)
	if err != nil {
		return err
	}

	for y := range newSide {
		srcRow := min(y, oldSide-1) * oldSide
		for x := range newSide {
			src := srcRow + min(x, oldSide-1)
			dst := y*newSide + x
			next.heights[dst] = g.heights[src]
			next.velocities[dst] = g.velocities[src]
		}
	}

	g.storage = *next
	g.populate()
	return nil
}

// SideLength returns the number of columns per side, 0 after Destroy.
func (g *Grid) SideLength() int { return g.side }

// Len returns the number of columns.
func (g *Grid) Len() int { return len(g.heights) }

// Indices returns the triangle-list index buffer. The slice is owned by the
// grid and is replaced on Resize.
func (g *Grid) Indices() []uint32 { return g.indices }

// Generation changes whenever the storage is reallocated.
func (g *Grid) Generation() uint64 { return g.generation }

// Params returns the active tunables.
func (g *Grid) Params() Params { return g.params }

// SetParams replaces the tunables and re-bands every column, since the
// thresholds may have moved.
func (g *Grid) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	g.params = p
	g.recomputeBands()
	return nil
}

// Height returns the height of column i.
func (g *Grid) Height(i int) float64 { return g.heights[i] }

// Velocity returns the velocity of column i.
func (g *Grid) Velocity(i int) float64 { return g.velocities[i] }

// Band returns the color band of column i.
func (g *Grid) Band(i int) Band { return g.bands[i] }

// Normal returns the unit surface normal of column i.
func (g *Grid) Normal(i int) math.Vec3d { return g.normals[i] }

// Position returns the position of column i. X and Z span a unit square
// centered at the origin, Y is the height.
func (g *Grid) Position(i int) math.Vec3d {
	x, y := i%g.side, i/g.side
	return math.Vec3d{X: g.offset(x), Y: g.heights[i], Z: g.offset(y)}
}

// TexCoord returns the texture coordinate of column i.
func (g *Grid) TexCoord(i int) [2]float64 {
	x, y := i%g.side, i/g.side
	span := float64(g.side - 1)
	return [2]float64{float64(x) / span, float64(y) / span}
}

// Column returns a snapshot of column i.
func (g *Grid) Column(i int) Column {
	return Column{
		Height:   g.heights[i],
		Velocity: g.velocities[i],
		Position: g.Position(i),
		Band:     g.bands[i],
		Normal:   g.normals[i],
		TexCoord: g.TexCoord(i),
	}
}

// offset maps a lattice coordinate to its horizontal position. Coordinates
// outside the grid extrapolate the lattice.
func (g *Grid) offset(c int) float64 {
	return 0.5 - float64(c)/float64(g.side-1)
}

// clampedIndex returns the linear index of (x, y) pinned to the grid.
func (g *Grid) clampedIndex(x, y int) int {
	x = min(max(x, 0), g.side-1)
	y = min(max(y, 0), g.side-1)
	return y*g.side + x
}

// heightAt returns the height at the clamped coordinate (x, y).
func (g *Grid) heightAt(x, y int) float64 {
	return g.heights[g.clampedIndex(x, y)]
}

func (g *Grid) recomputeBands() {
	for i, h := range g.heights {
		g.bands[i] = Classify(h, g.params)
	}
}
