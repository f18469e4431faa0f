package hemisphere

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/hemisphere/pkg/geometry"
)

func TestNewSolidDefaults(t *testing.T) {
	p, err := NewSolid(SolidOptions{})
	require.NoError(t, err)

	assert.Equal(t, SolidParams{
		VertexFormat:     geometry.DefaultVertexFormat,
		Radius:           10000,
		StackPartitions:  10,
		SlicePartitions:  10,
		AzimuthExtentDeg: 90,
		MinElevationDeg:  3,
		MaxElevationDeg:  85,
	}, p)
}

func TestNewOutlineDefaults(t *testing.T) {
	p, err := NewOutline(OutlineOptions{})
	require.NoError(t, err)

	assert.Equal(t, OutlineParams{
		Radius:           10000,
		MinRange:         300,
		StackPartitions:  10,
		SlicePartitions:  10,
		AzimuthExtentDeg: 90,
		MinElevationDeg:  3,
		MaxElevationDeg:  85,
	}, p)
}

func TestNewSolidOverrides(t *testing.T) {
	p, err := NewSolid(SolidOptions{
		VertexFormat:     Format(geometry.PositionOnly),
		Radius:           Float64(1),
		StackPartitions:  Int(3),
		SlicePartitions:  Int(4),
		AzimuthExtentDeg: Float64(360),
		MinElevationDeg:  Float64(0),
		MaxElevationDeg:  Float64(90),
	})
	require.NoError(t, err)

	assert.Equal(t, geometry.PositionOnly, p.VertexFormat)
	assert.Equal(t, 1.0, p.Radius)
	assert.Equal(t, 3, p.StackPartitions)
	assert.Equal(t, 4, p.SlicePartitions)
	assert.Equal(t, 360.0, p.AzimuthExtentDeg)
	assert.Equal(t, 0.0, p.MinElevationDeg)
	assert.Equal(t, 90.0, p.MaxElevationDeg)
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		radius    *float64
		stacks    *int
		slices    *int
		wantField string
	}{
		{"two slices", nil, nil, Int(2), "slicePartitions"},
		{"two stacks", nil, Int(2), nil, "stackPartitions"},
		{"negative radius", Float64(-1), nil, nil, "radius"},
		{"NaN radius", Float64(math.NaN()), nil, nil, "radius"},
		{"slices checked before stacks", nil, Int(0), Int(0), "slicePartitions"},
		{"stacks checked before radius", Float64(-5), Int(1), nil, "stackPartitions"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/solid", func(t *testing.T) {
			p, err := NewSolid(SolidOptions{Radius: tt.radius, StackPartitions: tt.stacks, SlicePartitions: tt.slices})
			assertInvalid(t, err, tt.wantField)
			assert.Equal(t, SolidParams{}, p)
		})
		t.Run(tt.name+"/outline", func(t *testing.T) {
			p, err := NewOutline(OutlineOptions{Radius: tt.radius, StackPartitions: tt.stacks, SlicePartitions: tt.slices})
			assertInvalid(t, err, tt.wantField)
			assert.Equal(t, OutlineParams{}, p)
		})
	}
}

func assertInvalid(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "error %v should wrap ErrInvalidArgument", err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, field, verr.Field)
	assert.Contains(t, err.Error(), "options."+field)
}

func TestZeroRadiusAccepted(t *testing.T) {
	_, err := NewSolid(SolidOptions{Radius: Float64(0)})
	assert.NoError(t, err)
}

func TestUncheckedOrdering(t *testing.T) {
	// Inverted elevations and an inner range beyond the outer radius are
	// the caller's responsibility.
	p, err := NewOutline(OutlineOptions{
		Radius:          Float64(100),
		MinRange:        Float64(500),
		MinElevationDeg: Float64(80),
		MaxElevationDeg: Float64(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, p.MinRange)
	assert.Equal(t, 80.0, p.MinElevationDeg)
	assert.Equal(t, 10.0, p.MaxElevationDeg)
}

func TestDecodeSolidOptions(t *testing.T) {
	opts, err := DecodeSolidOptions([]byte(`{
		"radius": 250,
		"slice_partitions": 24,
		"vertex_format": {"position": true, "normal": false}
	}`))
	require.NoError(t, err)

	p, err := NewSolid(opts)
	require.NoError(t, err)
	assert.Equal(t, 250.0, p.Radius)
	assert.Equal(t, 24, p.SlicePartitions)
	assert.Equal(t, DefaultStackPartitions, p.StackPartitions)
	assert.Equal(t, geometry.PositionOnly, p.VertexFormat)
}

func TestDecodeOutlineOptions(t *testing.T) {
	opts, err := DecodeOutlineOptions([]byte(`{"min_range": 12.5, "azimuth_extent_deg": 120}`))
	require.NoError(t, err)

	p, err := NewOutline(opts)
	require.NoError(t, err)
	assert.Equal(t, 12.5, p.MinRange)
	assert.Equal(t, 120.0, p.AzimuthExtentDeg)
	assert.Equal(t, DefaultRadius, p.Radius)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := DecodeSolidOptions([]byte(`{"radious": 5}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hemisphere: decode solid options")

	// min_range belongs to the outline only.
	_, err = DecodeSolidOptions([]byte(`{"min_range": 5}`))
	assert.Error(t, err)

	_, err = DecodeOutlineOptions([]byte(`not json`))
	assert.Error(t, err)
}
