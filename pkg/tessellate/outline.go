package tessellate

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chazu/hemisphere/pkg/bounds"
	"github.com/chazu/hemisphere/pkg/geometry"
	"github.com/chazu/hemisphere/pkg/hemisphere"
)

// OutlineVertexCount returns the number of vertices Outline emits, an
// inner and an outer vertex per grid point.
func OutlineVertexCount(p hemisphere.OutlineParams) int {
	return 2 * (p.StackPartitions + 1) * (p.SlicePartitions + 1)
}

// OutlineIndexCount returns the number of line indices Outline emits.
func OutlineIndexCount(p hemisphere.OutlineParams) int {
	t, s := p.StackPartitions, p.SlicePartitions
	return 2*s*t*8 + 4*(s+t)
}

// Outline tessellates the wireframe cage of a sector: an inner shell at
// MinRange and an outer shell at Radius, joined by radial connectors along
// the boundary of the grid. The result is a line list without normals.
func Outline(p hemisphere.OutlineParams) *geometry.Geometry {
	t, s := p.StackPartitions, p.SlicePartitions
	g := newGrid(t, s, p.AzimuthExtentDeg, p.MinElevationDeg, p.MaxElevationDeg)
	vertexCount := OutlineVertexCount(p)

	vb := newVertexBuilder(vertexCount, false)
	for j := 0; j <= t; j++ {
		for k := 0; k <= s; k++ {
			d := g.outlineDir(j, k)
			vb.add(r3.Scale(p.MinRange, d), r3.Vec{})
			vb.add(r3.Scale(p.Radius, d), r3.Vec{})
		}
	}

	indices := geometry.NewIndexBuffer(vertexCount, OutlineIndexCount(p))
	writeOutlineIndices(indices, t, s)

	return &geometry.Geometry{
		Positions:     vb.positions,
		Indices:       indices,
		PrimitiveType: geometry.Lines,
		Bounds:        bounds.FromPositions(vb.positions),
	}
}

// writeOutlineIndices walks every grid cell. Vertex 2*(j*(slices+1)+k) is
// the inner point of (j, k); the outer point follows it.
func writeOutlineIndices(indices *geometry.IndexBuffer, stacks, slices int) {
	w := indexWriter{buf: indices}
	row := 2 * (slices + 1)

	for j := 0; j < stacks; j++ {
		for k := 0; k < slices; k++ {
			first := 2 * (j*(slices+1) + k)
			second := first + row

			if j == 0 {
				w.line(first, first+1)
			}
			if k == 0 {
				w.line(second, second+1)
			}

			// Inner shell cell edges.
			w.line(first+2, first)
			w.line(first, second)
			w.line(second, second+2)
			w.line(second+2, first+2)

			// Outer shell cell edges.
			w.line(first+3, first+1)
			w.line(first+1, second+1)
			w.line(second+1, second+3)
			w.line(second+3, first+3)

			if k == slices-1 {
				w.line(first+3, first+2)
			}
			if j == stacks-1 {
				w.line(second+3, second+2)
			}
		}
	}
}
