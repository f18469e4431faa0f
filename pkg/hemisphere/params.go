package hemisphere

import (
	"math"

	"github.com/chazu/hemisphere/pkg/geometry"
)

// SolidParams is a validated description of one solid sector request.
// It is a plain value: callers hand out copies, never shared pointers.
type SolidParams struct {
	VertexFormat     geometry.VertexFormat
	Radius           float64
	StackPartitions  int
	SlicePartitions  int
	AzimuthExtentDeg float64
	MinElevationDeg  float64
	MaxElevationDeg  float64
}

// OutlineParams is a validated description of one wireframe sector
// request.
type OutlineParams struct {
	Radius           float64
	MinRange         float64
	StackPartitions  int
	SlicePartitions  int
	AzimuthExtentDeg float64
	MinElevationDeg  float64
	MaxElevationDeg  float64
}

// NewSolid applies defaults to opts and validates the result.
func NewSolid(opts SolidOptions) (SolidParams, error) {
	format := geometry.DefaultVertexFormat
	if opts.VertexFormat != nil {
		format = *opts.VertexFormat
	}

	p := SolidParams{
		VertexFormat:     format,
		Radius:           float64Or(opts.Radius, DefaultRadius),
		StackPartitions:  intOr(opts.StackPartitions, DefaultStackPartitions),
		SlicePartitions:  intOr(opts.SlicePartitions, DefaultSlicePartitions),
		AzimuthExtentDeg: float64Or(opts.AzimuthExtentDeg, DefaultAzimuthExtentDeg),
		MinElevationDeg:  float64Or(opts.MinElevationDeg, DefaultMinElevationDeg),
		MaxElevationDeg:  float64Or(opts.MaxElevationDeg, DefaultMaxElevationDeg),
	}
	if err := validate(p.Radius, p.StackPartitions, p.SlicePartitions); err != nil {
		return SolidParams{}, err
	}
	return p, nil
}

// NewOutline applies defaults to opts and validates the result.
func NewOutline(opts OutlineOptions) (OutlineParams, error) {
	p := OutlineParams{
		Radius:           float64Or(opts.Radius, DefaultRadius),
		MinRange:         float64Or(opts.MinRange, DefaultMinRange),
		StackPartitions:  intOr(opts.StackPartitions, DefaultStackPartitions),
		SlicePartitions:  intOr(opts.SlicePartitions, DefaultSlicePartitions),
		AzimuthExtentDeg: float64Or(opts.AzimuthExtentDeg, DefaultAzimuthExtentDeg),
		MinElevationDeg:  float64Or(opts.MinElevationDeg, DefaultMinElevationDeg),
		MaxElevationDeg:  float64Or(opts.MaxElevationDeg, DefaultMaxElevationDeg),
	}
	if err := validate(p.Radius, p.StackPartitions, p.SlicePartitions); err != nil {
		return OutlineParams{}, err
	}
	return p, nil
}

// validate checks the three rules shared by both variants and returns the
// first one that fails. A NaN radius counts as missing.
func validate(radius float64, stackPartitions, slicePartitions int) error {
	if slicePartitions < minPartitions {
		return &ValidationError{Field: "slicePartitions", Message: "cannot be less than three"}
	}
	if stackPartitions < minPartitions {
		return &ValidationError{Field: "stackPartitions", Message: "cannot be less than three"}
	}
	if math.IsNaN(radius) || radius < 0 {
		return &ValidationError{Field: "radius", Message: "cannot be less than zero"}
	}
	return nil
}
