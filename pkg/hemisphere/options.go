package hemisphere

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/chazu/hemisphere/pkg/geometry"
)

// Default option values.
const (
	DefaultRadius           = 10000.0
	DefaultMinRange         = 300.0
	DefaultStackPartitions  = 10
	DefaultSlicePartitions  = 10
	DefaultAzimuthExtentDeg = 90.0
	DefaultMinElevationDeg  = 3.0
	DefaultMaxElevationDeg  = 85.0
)

// minPartitions is the smallest accepted stack or slice count.
const minPartitions = 3

// SolidOptions configures a solid sector. Nil fields take their default.
type SolidOptions struct {
	VertexFormat     *geometry.VertexFormat `json:"vertex_format,omitempty"`
	Radius           *float64               `json:"radius,omitempty"`
	StackPartitions  *int                   `json:"stack_partitions,omitempty"`
	SlicePartitions  *int                   `json:"slice_partitions,omitempty"`
	AzimuthExtentDeg *float64               `json:"azimuth_extent_deg,omitempty"` // total sweep, need not be 360
	MinElevationDeg  *float64               `json:"min_elevation_deg,omitempty"`
	MaxElevationDeg  *float64               `json:"max_elevation_deg,omitempty"`
}

// OutlineOptions configures a wireframe sector. Nil fields take their
// default.
type OutlineOptions struct {
	Radius           *float64 `json:"radius,omitempty"`
	MinRange         *float64 `json:"min_range,omitempty"` // inner shell radius
	StackPartitions  *int     `json:"stack_partitions,omitempty"`
	SlicePartitions  *int     `json:"slice_partitions,omitempty"`
	AzimuthExtentDeg *float64 `json:"azimuth_extent_deg,omitempty"`
	MinElevationDeg  *float64 `json:"min_elevation_deg,omitempty"`
	MaxElevationDeg  *float64 `json:"max_elevation_deg,omitempty"`
}

// Float64 returns a pointer to v, for filling option structs inline.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v, for filling option structs inline.
func Int(v int) *int { return &v }

// Format returns a pointer to f, for filling option structs inline.
func Format(f geometry.VertexFormat) *geometry.VertexFormat { return &f }

// DecodeSolidOptions parses a JSON options document. Unknown keys are
// rejected so that misspelled options do not silently fall back to
// defaults.
func DecodeSolidOptions(data []byte) (SolidOptions, error) {
	var opts SolidOptions
	if err := decodeStrict(data, &opts); err != nil {
		return SolidOptions{}, fmt.Errorf("hemisphere: decode solid options: %w", err)
	}
	return opts, nil
}

// DecodeOutlineOptions parses a JSON options document for an outline.
func DecodeOutlineOptions(data []byte) (OutlineOptions, error) {
	var opts OutlineOptions
	if err := decodeStrict(data, &opts); err != nil {
		return OutlineOptions{}, fmt.Errorf("hemisphere: decode outline options: %w", err)
	}
	return opts, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func float64Or(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
