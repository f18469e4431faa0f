// Package geometry defines the renderable output of the tessellators.
// Buffers are flat: positions hold 3 float64s per vertex, normals hold
// 3 float32s per vertex, and indices describe a triangle list or a line
// list depending on the primitive type.
package geometry

import (
	"fmt"

	"github.com/chazu/hemisphere/pkg/bounds"
)

// PrimitiveType tells a renderer how to read the index buffer.
type PrimitiveType int

const (
	Triangles PrimitiveType = iota // 3 indices per primitive
	Lines                          // 2 indices per primitive
)

func (p PrimitiveType) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	default:
		return fmt.Sprintf("PrimitiveType(%d)", int(p))
	}
}

// IndicesPerPrimitive returns how many indices make up one primitive.
func (p PrimitiveType) IndicesPerPrimitive() int {
	if p == Lines {
		return 2
	}
	return 3
}

// Geometry is one tessellated mesh. It holds no reference to the
// parameters it was built from and is owned by the caller once returned.
type Geometry struct {
	Positions     []float64     `json:"positions,omitempty"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals       []float32     `json:"normals,omitempty"`   // [nx0,ny0,nz0, ...]
	Indices       *IndexBuffer  `json:"indices"`
	PrimitiveType PrimitiveType `json:"primitiveType"`
	Bounds        bounds.Sphere `json:"boundingSphere"`
}

// VertexCount returns the number of vertices. Positions take precedence;
// a geometry built without positions falls back to the normal buffer.
func (g *Geometry) VertexCount() int {
	if len(g.Positions) > 0 {
		return len(g.Positions) / 3
	}
	return len(g.Normals) / 3
}

// PrimitiveCount returns the number of triangles or line segments the
// index buffer describes.
func (g *Geometry) PrimitiveCount() int {
	if g.Indices == nil {
		return 0
	}
	return g.Indices.Len() / g.PrimitiveType.IndicesPerPrimitive()
}

// IsEmpty returns true if the geometry has no vertex data.
func (g *Geometry) IsEmpty() bool {
	return len(g.Positions) == 0 && len(g.Normals) == 0
}
