package hemisphere

import "github.com/chazu/hemisphere/pkg/geometry"

// Packed buffer lengths. A buffer handed to an Unpack function must hold
// at least offset plus this many values; shorter buffers panic.
const (
	SolidPackedLength   = geometry.VertexFormatPackedLength + 6
	OutlinePackedLength = 7
)

// PackSolid writes p into buf starting at offset in the order
// [vertex format flags..., radius, stackPartitions, slicePartitions,
// azimuthExtentDeg, minElevationDeg, maxElevationDeg].
func PackSolid(p SolidParams, buf []float64, offset int) {
	p.VertexFormat.Pack(buf, offset)
	offset += geometry.VertexFormatPackedLength

	buf[offset] = p.Radius
	buf[offset+1] = float64(p.StackPartitions)
	buf[offset+2] = float64(p.SlicePartitions)
	buf[offset+3] = p.AzimuthExtentDeg
	buf[offset+4] = p.MinElevationDeg
	buf[offset+5] = p.MaxElevationDeg
}

// UnpackSolid reads a SolidParams written by PackSolid. The buffer is
// trusted: no defaults are applied and nothing is validated.
func UnpackSolid(buf []float64, offset int) SolidParams {
	var p SolidParams
	UnpackSolidInto(buf, offset, &p)
	return p
}

// UnpackSolidInto is UnpackSolid writing into a caller-owned destination.
// It returns dst.
func UnpackSolidInto(buf []float64, offset int, dst *SolidParams) *SolidParams {
	_ = buf[offset+SolidPackedLength-1]

	dst.VertexFormat = geometry.UnpackVertexFormat(buf, offset)
	offset += geometry.VertexFormatPackedLength

	dst.Radius = buf[offset]
	dst.StackPartitions = int(buf[offset+1])
	dst.SlicePartitions = int(buf[offset+2])
	dst.AzimuthExtentDeg = buf[offset+3]
	dst.MinElevationDeg = buf[offset+4]
	dst.MaxElevationDeg = buf[offset+5]
	return dst
}

// PackOutline writes p into buf starting at offset in the order
// [radius, minRange, stackPartitions, slicePartitions, azimuthExtentDeg,
// minElevationDeg, maxElevationDeg].
func PackOutline(p OutlineParams, buf []float64, offset int) {
	buf[offset] = p.Radius
	buf[offset+1] = p.MinRange
	buf[offset+2] = float64(p.StackPartitions)
	buf[offset+3] = float64(p.SlicePartitions)
	buf[offset+4] = p.AzimuthExtentDeg
	buf[offset+5] = p.MinElevationDeg
	buf[offset+6] = p.MaxElevationDeg
}

// UnpackOutline reads an OutlineParams written by PackOutline without
// re-validating it.
func UnpackOutline(buf []float64, offset int) OutlineParams {
	var p OutlineParams
	UnpackOutlineInto(buf, offset, &p)
	return p
}

// UnpackOutlineInto is UnpackOutline writing into dst. It returns dst.
func UnpackOutlineInto(buf []float64, offset int, dst *OutlineParams) *OutlineParams {
	_ = buf[offset+OutlinePackedLength-1]

	dst.Radius = buf[offset]
	dst.MinRange = buf[offset+1]
	dst.StackPartitions = int(buf[offset+2])
	dst.SlicePartitions = int(buf[offset+3])
	dst.AzimuthExtentDeg = buf[offset+4]
	dst.MinElevationDeg = buf[offset+5]
	dst.MaxElevationDeg = buf[offset+6]
	return dst
}
