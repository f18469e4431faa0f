// Package tessellate turns hemisphere parameter sets into geometry. Solid
// produces a closed triangle shell with end caps and side walls; Outline
// produces a wireframe of two concentric shells. Both are pure functions of
// their parameters and safe to call from any number of goroutines.
package tessellate

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// grid samples the sector on (stacks+1) polar rings by (slices+1) azimuth
// columns. Row 0 is the ring at maxElevation, nearest the zenith.
type grid struct {
	stacks, slices int

	sinTheta, cosTheta []float64
	sinPhi, cosPhi     []float64
}

func newGrid(stacks, slices int, azimuthDeg, minElevationDeg, maxElevationDeg float64) grid {
	g := grid{
		stacks:   stacks,
		slices:   slices,
		sinTheta: make([]float64, stacks+1),
		cosTheta: make([]float64, stacks+1),
		sinPhi:   make([]float64, slices+1),
		cosPhi:   make([]float64, slices+1),
	}

	step := (maxElevationDeg - minElevationDeg) / float64(stacks)
	for j := 0; j <= stacks; j++ {
		theta := degToRad(90 - maxElevationDeg + float64(j)*step)
		g.sinTheta[j], g.cosTheta[j] = math.Sincos(theta)
	}
	for k := 0; k <= slices; k++ {
		phi := degToRad(float64(k) * azimuthDeg / float64(slices))
		g.sinPhi[k], g.cosPhi[k] = math.Sincos(phi)
	}
	return g
}

// solidDir is the unit direction of grid point (j, k) in the solid frame:
// azimuth sweeps clockwise from +X seen from +Z.
func (g grid) solidDir(j, k int) r3.Vec {
	return r3.Vec{
		X: g.cosPhi[k] * g.sinTheta[j],
		Y: -g.sinPhi[k] * g.sinTheta[j],
		Z: g.cosTheta[j],
	}
}

// solidThetaTangent is the unit tangent at (j, k) in the direction of
// increasing polar angle, away from the zenith.
func (g grid) solidThetaTangent(j, k int) r3.Vec {
	return r3.Vec{
		X: g.cosPhi[k] * g.cosTheta[j],
		Y: -g.sinPhi[k] * g.cosTheta[j],
		Z: -g.sinTheta[j],
	}
}

// solidPhiTangent is the unit tangent at column k in the direction of
// increasing azimuth. It does not depend on the polar angle.
func (g grid) solidPhiTangent(k int) r3.Vec {
	return r3.Vec{X: -g.sinPhi[k], Y: -g.cosPhi[k]}
}

// outlineDir is the unit direction of grid point (j, k) in the outline
// frame: azimuth sweeps from +Y towards +X.
func (g grid) outlineDir(j, k int) r3.Vec {
	return r3.Vec{
		X: g.sinPhi[k] * g.sinTheta[j],
		Y: g.cosPhi[k] * g.sinTheta[j],
		Z: g.cosTheta[j],
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
