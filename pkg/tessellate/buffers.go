package tessellate

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chazu/hemisphere/pkg/geometry"
)

// vertexBuilder fills preallocated position and normal buffers. Writes
// start at the vertex set by seek, so each surface pass can place its
// vertices at a closed-form offset.
type vertexBuilder struct {
	positions []float64
	normals   []float32
	next      int
}

func newVertexBuilder(vertexCount int, withNormals bool) *vertexBuilder {
	vb := &vertexBuilder{positions: make([]float64, vertexCount*3)}
	if withNormals {
		vb.normals = make([]float32, vertexCount*3)
	}
	return vb
}

func (vb *vertexBuilder) seek(vertex int) {
	vb.next = vertex
}

func (vb *vertexBuilder) add(pos, normal r3.Vec) {
	i := vb.next * 3
	vb.positions[i] = pos.X
	vb.positions[i+1] = pos.Y
	vb.positions[i+2] = pos.Z
	if vb.normals != nil {
		vb.normals[i] = float32(normal.X)
		vb.normals[i+1] = float32(normal.Y)
		vb.normals[i+2] = float32(normal.Z)
	}
	vb.next++
}

// indexWriter appends primitives to an index buffer.
type indexWriter struct {
	buf  *geometry.IndexBuffer
	next int
}

func (w *indexWriter) triangle(a, b, c int) {
	w.buf.Set(w.next, uint32(a))
	w.buf.Set(w.next+1, uint32(b))
	w.buf.Set(w.next+2, uint32(c))
	w.next += 3
}

func (w *indexWriter) line(a, b int) {
	w.buf.Set(w.next, uint32(a))
	w.buf.Set(w.next+1, uint32(b))
	w.next += 2
}
