package tessellate

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chazu/hemisphere/pkg/bounds"
	"github.com/chazu/hemisphere/pkg/geometry"
	"github.com/chazu/hemisphere/pkg/hemisphere"
)

// SolidVertexCount returns the number of vertices Solid emits:
// one per outer grid point plus three per cap and wall triangle.
func SolidVertexCount(p hemisphere.SolidParams) int {
	t, s := p.StackPartitions, p.SlicePartitions
	return (t+1)*(s+1) + 3*(2*t+2*s)
}

// SolidIndexCount returns the length of the index buffer Solid allocates,
// six slots per vertex.
func SolidIndexCount(p hemisphere.SolidParams) int {
	return 6 * SolidVertexCount(p)
}

// SolidWrittenIndexCount returns how many leading slots of the index
// buffer describe real triangles. The remaining slots are zero.
func SolidWrittenIndexCount(p hemisphere.SolidParams) int {
	t, s := p.StackPartitions, p.SlicePartitions
	return 3*(2*s+2*t) + 6*s*t
}

// solidLayout holds the first vertex of each surface.
type solidLayout struct {
	minCap, maxCap   int
	minWall, maxWall int
	outer            int
}

func newSolidLayout(stacks, slices int) solidLayout {
	return solidLayout{
		minCap:  0,
		maxCap:  3 * slices,
		minWall: 6 * slices,
		maxWall: 6*slices + 3*stacks,
		outer:   6*slices + 6*stacks,
	}
}

// Solid tessellates a filled sector. Cap and wall triangles each own three
// vertices (ring, axis, ring) so every surface keeps its own normals; the
// outer surface shares vertices across a regular grid. All triangles wind
// counter-clockwise seen from outside the volume.
//
// Cap normals are the polar tangent of the ring they close, wall normals
// the azimuth tangent of their column, outer normals the radial direction.
// The axis vertex of a cap or wall triangle takes the normal of the ring
// vertex that opens it.
//
// Zero azimuth or elevation spans yield zero-area triangles; they are not
// an error.
func Solid(p hemisphere.SolidParams) *geometry.Geometry {
	t, s := p.StackPartitions, p.SlicePartitions
	g := newGrid(t, s, p.AzimuthExtentDeg, p.MinElevationDeg, p.MaxElevationDeg)
	layout := newSolidLayout(t, s)
	vertexCount := SolidVertexCount(p)

	vb := newVertexBuilder(vertexCount, true)
	writeSolidVertices(vb, g, layout, p.Radius)

	indices := geometry.NewIndexBuffer(vertexCount, SolidIndexCount(p))
	writeSolidIndices(indices, layout, t, s)

	out := &geometry.Geometry{
		Indices:       indices,
		PrimitiveType: geometry.Triangles,
		Bounds:        bounds.FromPositions(vb.positions),
	}
	if p.VertexFormat.Position {
		out.Positions = vb.positions
	}
	if p.VertexFormat.Normal {
		out.Normals = vb.normals
	}
	return out
}

func writeSolidVertices(vb *vertexBuilder, g grid, layout solidLayout, radius float64) {
	fan := func(a, b, na, nb r3.Vec) {
		vb.add(r3.Scale(radius, a), na)
		vb.add(r3.Vec{}, na)
		vb.add(r3.Scale(radius, b), nb)
	}

	// The upper cap faces towards the zenith, the lower one away from it.
	vb.seek(layout.minCap)
	for k := 0; k < g.slices; k++ {
		fan(g.solidDir(0, k), g.solidDir(0, k+1),
			r3.Scale(-1, g.solidThetaTangent(0, k)),
			r3.Scale(-1, g.solidThetaTangent(0, k+1)))
	}

	vb.seek(layout.maxCap)
	t := g.stacks
	for k := 0; k < g.slices; k++ {
		fan(g.solidDir(t, k), g.solidDir(t, k+1),
			g.solidThetaTangent(t, k),
			g.solidThetaTangent(t, k+1))
	}

	vb.seek(layout.minWall)
	minWall := r3.Scale(-1, g.solidPhiTangent(0))
	for j := 0; j < g.stacks; j++ {
		fan(g.solidDir(j, 0), g.solidDir(j+1, 0), minWall, minWall)
	}

	vb.seek(layout.maxWall)
	s := g.slices
	maxWall := g.solidPhiTangent(s)
	for j := 0; j < g.stacks; j++ {
		fan(g.solidDir(j, s), g.solidDir(j+1, s), maxWall, maxWall)
	}

	vb.seek(layout.outer)
	for j := 0; j <= g.stacks; j++ {
		for k := 0; k <= g.slices; k++ {
			d := g.solidDir(j, k)
			vb.add(r3.Scale(radius, d), d)
		}
	}
}

func writeSolidIndices(indices *geometry.IndexBuffer, layout solidLayout, stacks, slices int) {
	w := indexWriter{buf: indices}

	// Fan triangles are stored as (ring, axis, ring). Mirrored surfaces
	// swap the last two indices.
	for k := 0; k < slices; k++ {
		b := layout.minCap + 3*k
		w.triangle(b, b+1, b+2)
	}
	for k := 0; k < slices; k++ {
		b := layout.maxCap + 3*k
		w.triangle(b, b+2, b+1)
	}
	for j := 0; j < stacks; j++ {
		b := layout.minWall + 3*j
		w.triangle(b, b+2, b+1)
	}
	for j := 0; j < stacks; j++ {
		b := layout.maxWall + 3*j
		w.triangle(b, b+1, b+2)
	}

	// Outer surface, two triangles per grid cell.
	row := slices + 1
	for j := 0; j < stacks; j++ {
		for k := 0; k < slices; k++ {
			first := layout.outer + j*row + k
			second := first + row
			w.triangle(first, first+1, second)
			w.triangle(second, first+1, second+1)
		}
	}
}
