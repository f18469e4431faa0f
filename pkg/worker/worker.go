// Package worker is the invocation surface a host dispatcher calls. Each
// entry point accepts either a ready parameter set or a packed buffer and
// offset, and returns the tessellated geometry.
package worker

import (
	"fmt"

	"github.com/chazu/hemisphere/pkg/geometry"
	"github.com/chazu/hemisphere/pkg/hemisphere"
	"github.com/chazu/hemisphere/pkg/tessellate"
)

// CreateSolid tessellates a solid sector.
func CreateSolid(p hemisphere.SolidParams) *geometry.Geometry {
	return tessellate.Solid(p)
}

// CreateSolidPacked unpacks a SolidParams at offset and tessellates it.
// The buffer must hold offset+hemisphere.SolidPackedLength values.
func CreateSolidPacked(buf []float64, offset int) *geometry.Geometry {
	return tessellate.Solid(hemisphere.UnpackSolid(buf, offset))
}

// CreateOutline tessellates a wireframe sector.
func CreateOutline(p hemisphere.OutlineParams) *geometry.Geometry {
	return tessellate.Outline(p)
}

// CreateOutlinePacked unpacks an OutlineParams at offset and tessellates
// it.
func CreateOutlinePacked(buf []float64, offset int) *geometry.Geometry {
	return tessellate.Outline(hemisphere.UnpackOutline(buf, offset))
}

// Kind names the tessellator a job runs.
type Kind int

const (
	KindSolid Kind = iota
	KindOutline
)

func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindOutline:
		return "outline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Job is one packed tessellation request as it crosses an execution
// boundary.
type Job struct {
	Kind   Kind
	Buffer []float64
	Offset int
}

// SolidJob packs p into a fresh buffer.
func SolidJob(p hemisphere.SolidParams) Job {
	buf := make([]float64, hemisphere.SolidPackedLength)
	hemisphere.PackSolid(p, buf, 0)
	return Job{Kind: KindSolid, Buffer: buf}
}

// OutlineJob packs p into a fresh buffer.
func OutlineJob(p hemisphere.OutlineParams) Job {
	buf := make([]float64, hemisphere.OutlinePackedLength)
	hemisphere.PackOutline(p, buf, 0)
	return Job{Kind: KindOutline, Buffer: buf}
}

// run executes the job on the calling goroutine.
func (j Job) run() (*geometry.Geometry, error) {
	switch j.Kind {
	case KindSolid:
		return CreateSolidPacked(j.Buffer, j.Offset), nil
	case KindOutline:
		return CreateOutlinePacked(j.Buffer, j.Offset), nil
	default:
		return nil, fmt.Errorf("unknown job kind: %v", j.Kind)
	}
}
