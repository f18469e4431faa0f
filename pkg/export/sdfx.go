// Package export hands tessellated geometry to the github.com/deadsy/sdfx
// CAD library, for inspection in mesh tools or as STL files.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/hemisphere/pkg/geometry"
)

var (
	errNotTriangles = errors.New("geometry is not a triangle list")
	errNoPositions  = errors.New("geometry has no positions")
)

// Triangles converts a triangle-list geometry to sdfx triangles. Slots
// that repeat a vertex, such as the zero tail of a solid index buffer, and
// triangles without area are skipped.
func Triangles(g *geometry.Geometry) ([]*sdf.Triangle3, error) {
	if g.PrimitiveType != geometry.Triangles {
		return nil, fmt.Errorf("export: %w (got %s)", errNotTriangles, g.PrimitiveType)
	}
	if len(g.Positions) == 0 {
		return nil, fmt.Errorf("export: %w", errNoPositions)
	}

	n := g.Indices.Len()
	triangles := make([]*sdf.Triangle3, 0, n/3)
	for i := 0; i+2 < n; i += 3 {
		ia, ib, ic := g.Indices.At(i), g.Indices.At(i+1), g.Indices.At(i+2)
		if ia == ib || ib == ic || ia == ic {
			continue
		}

		a, b, c := vec(g.Positions, ia), vec(g.Positions, ib), vec(g.Positions, ic)
		if b.Sub(a).Cross(c.Sub(a)).Length() == 0 {
			continue
		}
		triangles = append(triangles, &sdf.Triangle3{a, b, c})
	}
	return triangles, nil
}

// BoundingBox returns the axis-aligned box of every position.
func BoundingBox(g *geometry.Geometry) sdf.Box3 {
	if len(g.Positions) < 3 {
		return sdf.Box3{}
	}

	lo := v3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := v3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i := 0; i+2 < len(g.Positions); i += 3 {
		x, y, z := g.Positions[i], g.Positions[i+1], g.Positions[i+2]
		lo = v3.Vec{X: math.Min(lo.X, x), Y: math.Min(lo.Y, y), Z: math.Min(lo.Z, z)}
		hi = v3.Vec{X: math.Max(hi.X, x), Y: math.Max(hi.Y, y), Z: math.Max(hi.Z, z)}
	}
	return sdf.Box3{Min: lo, Max: hi}
}

// SaveSTL writes a triangle-list geometry to a binary STL file.
func SaveSTL(path string, g *geometry.Geometry) error {
	triangles, err := Triangles(g)
	if err != nil {
		return err
	}
	if err := render.SaveSTL(path, triangles); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

func vec(positions []float64, i uint32) v3.Vec {
	j := int(i) * 3
	return v3.Vec{X: positions[j], Y: positions[j+1], Z: positions[j+2]}
}
