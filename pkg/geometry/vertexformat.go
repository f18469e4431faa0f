package geometry

// VertexFormatPackedLength is the number of slots VertexFormat occupies
// in a packed parameter buffer.
const VertexFormatPackedLength = 2

// VertexFormat selects which vertex attributes a tessellator attaches to
// its output.
type VertexFormat struct {
	Position bool `json:"position"`
	Normal   bool `json:"normal"`
}

var (
	PositionOnly      = VertexFormat{Position: true}
	PositionAndNormal = VertexFormat{Position: true, Normal: true}

	DefaultVertexFormat = PositionAndNormal
)

// Pack writes the flags into buf starting at offset, 1 for set and 0 for
// clear. buf must hold offset+VertexFormatPackedLength values.
func (f VertexFormat) Pack(buf []float64, offset int) {
	buf[offset] = flag(f.Position)
	buf[offset+1] = flag(f.Normal)
}

// UnpackVertexFormat reads flags written by Pack. Any non-zero slot is
// treated as set.
func UnpackVertexFormat(buf []float64, offset int) VertexFormat {
	return VertexFormat{
		Position: buf[offset] != 0,
		Normal:   buf[offset+1] != 0,
	}
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
