package tessellate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chazu/hemisphere/pkg/geometry"
	"github.com/chazu/hemisphere/pkg/hemisphere"
	"github.com/chazu/hemisphere/pkg/tessellate"
)

func newOutline(t *testing.T, opts hemisphere.OutlineOptions) hemisphere.OutlineParams {
	t.Helper()
	p, err := hemisphere.NewOutline(opts)
	require.NoError(t, err)
	return p
}

func TestOutlineCounts(t *testing.T) {
	tests := []struct {
		stacks, slices int
	}{
		{3, 3}, {3, 8}, {9, 4}, {10, 10},
	}
	for _, tt := range tests {
		p := newOutline(t, hemisphere.OutlineOptions{
			StackPartitions: hemisphere.Int(tt.stacks),
			SlicePartitions: hemisphere.Int(tt.slices),
		})
		g := tessellate.Outline(p)

		wantVertices := 2 * (tt.stacks + 1) * (tt.slices + 1)
		wantIndices := 2*tt.slices*tt.stacks*8 + 4*(tt.slices+tt.stacks)

		assert.Equal(t, wantVertices, g.VertexCount(), "stacks=%d slices=%d", tt.stacks, tt.slices)
		assert.Equal(t, wantVertices, tessellate.OutlineVertexCount(p))
		assert.Equal(t, wantIndices, g.Indices.Len())
		assert.Equal(t, wantIndices, tessellate.OutlineIndexCount(p))
		assert.Equal(t, wantIndices/2, g.PrimitiveCount())
	}
}

func TestOutlineShape(t *testing.T) {
	p := newOutline(t, hemisphere.OutlineOptions{})
	g := tessellate.Outline(p)

	assert.Equal(t, geometry.Lines, g.PrimitiveType)
	assert.Nil(t, g.Normals)

	for i := 0; i < g.VertexCount(); i += 2 {
		inner := vertex(g.Positions, i)
		outer := vertex(g.Positions, i+1)
		assert.InDelta(t, p.MinRange, r3.Norm(inner), p.MinRange*tol, "inner vertex %d", i)
		assert.InDelta(t, p.Radius, r3.Norm(outer), p.Radius*tol, "outer vertex %d", i+1)

		// Inner and outer points share a direction.
		assert.InDelta(t, 1, r3.Dot(r3.Unit(inner), r3.Unit(outer)), 1e-12)
	}

	// The first column starts on +Y and sweeps towards +X.
	first := vertex(g.Positions, 1)
	assert.InDelta(t, 0, first.X, tol)
	assert.Greater(t, first.Y, 0.0)
	corner := vertex(g.Positions, 2*p.SlicePartitions+1)
	assert.Greater(t, corner.X, 0.0)
	assert.InDelta(t, 0, corner.Y, tol*p.Radius)
}

func TestOutlineIndicesInRange(t *testing.T) {
	p := newOutline(t, hemisphere.OutlineOptions{
		StackPartitions: hemisphere.Int(4),
		SlicePartitions: hemisphere.Int(6),
	})
	g := tessellate.Outline(p)

	n := uint32(g.VertexCount())
	for i := 0; i < g.Indices.Len(); i += 2 {
		a, b := g.Indices.At(i), g.Indices.At(i+1)
		require.Less(t, a, n)
		require.Less(t, b, n)
		assert.NotEqual(t, a, b, "segment %d is a point", i/2)
	}
}

func TestOutlineRadialConnectorsOnBoundary(t *testing.T) {
	p := newOutline(t, hemisphere.OutlineOptions{
		StackPartitions: hemisphere.Int(5),
		SlicePartitions: hemisphere.Int(7),
	})
	g := tessellate.Outline(p)
	s, st := p.SlicePartitions, p.StackPartitions

	// A radial connector joins the inner and outer vertex of one grid point.
	radial := map[uint32]int{}
	for i := 0; i < g.Indices.Len(); i += 2 {
		a, b := g.Indices.At(i), g.Indices.At(i+1)
		if a/2 == b/2 {
			radial[a/2]++
		}
	}

	assert.Len(t, radial, 2*(s+st))
	for point, count := range radial {
		j, k := int(point)/(s+1), int(point)%(s+1)
		onBoundary := j == 0 || j == st || k == 0 || k == s
		assert.True(t, onBoundary, "radial at interior point (%d,%d)", j, k)
		assert.Equal(t, 1, count, "radial at (%d,%d) emitted more than once", j, k)
	}
}

func TestOutlineBoundsContainPositions(t *testing.T) {
	p := newOutline(t, hemisphere.OutlineOptions{
		Radius:           hemisphere.Float64(800),
		MinRange:         hemisphere.Float64(40),
		AzimuthExtentDeg: hemisphere.Float64(200),
	})
	g := tessellate.Outline(p)

	slack := 1e-9 * g.Bounds.Radius
	for i := 0; i < g.VertexCount(); i++ {
		v := vertex(g.Positions, i)
		assert.True(t, g.Bounds.Contains(v, slack), "vertex %d outside bounds", i)
	}
}

func TestOutlineInvertedRangesAccepted(t *testing.T) {
	p := newOutline(t, hemisphere.OutlineOptions{
		Radius:   hemisphere.Float64(10),
		MinRange: hemisphere.Float64(50),
	})
	g := tessellate.Outline(p)

	assert.InDelta(t, 50, r3.Norm(vertex(g.Positions, 0)), 1e-9)
	assert.InDelta(t, 10, r3.Norm(vertex(g.Positions, 1)), 1e-9)
}
