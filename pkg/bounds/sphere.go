// Package bounds computes bounding volumes for flat position buffers.
// Positions are laid out as produced by the tessellators: three float64
// components per vertex, [x0,y0,z0, x1,y1,z1, ...].
package bounds

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere is a bounding sphere.
type Sphere struct {
	Center r3.Vec  `json:"center"`
	Radius float64 `json:"radius"`
}

// Contains reports whether p lies inside the sphere, allowing tolerance
// of slack on the radius.
func (s Sphere) Contains(p r3.Vec, tolerance float64) bool {
	return r3.Norm(r3.Sub(p, s.Center)) <= s.Radius+tolerance
}

// IsZero reports whether s is the zero sphere returned for empty input.
func (s Sphere) IsZero() bool {
	return s == Sphere{}
}

// FromPositions returns a sphere enclosing every vertex of a flat position
// buffer. Two candidates are computed: Ritter's incremental sphere seeded
// from the widest axis-extreme pair, and the sphere centred on the
// axis-aligned box. The one with the smaller radius wins. Trailing
// components that do not form a whole vertex are ignored.
func FromPositions(positions []float64) Sphere {
	n := len(positions) / 3
	if n == 0 {
		return Sphere{}
	}

	first := vertexAt(positions, 0)
	xMin, yMin, zMin := first, first, first
	xMax, yMax, zMax := first, first, first
	for i := 1; i < n; i++ {
		p := vertexAt(positions, i)
		if p.X < xMin.X {
			xMin = p
		}
		if p.X > xMax.X {
			xMax = p
		}
		if p.Y < yMin.Y {
			yMin = p
		}
		if p.Y > yMax.Y {
			yMax = p
		}
		if p.Z < zMin.Z {
			zMin = p
		}
		if p.Z > zMax.Z {
			zMax = p
		}
	}

	// Seed Ritter's sphere with the extreme pair that is farthest apart.
	diameter1, diameter2 := xMin, xMax
	span := r3.Norm2(r3.Sub(xMax, xMin))
	if ySpan := r3.Norm2(r3.Sub(yMax, yMin)); ySpan > span {
		span = ySpan
		diameter1, diameter2 = yMin, yMax
	}
	if zSpan := r3.Norm2(r3.Sub(zMax, zMin)); zSpan > span {
		diameter1, diameter2 = zMin, zMax
	}

	ritterCenter := r3.Scale(0.5, r3.Add(diameter1, diameter2))
	ritterRadius := r3.Norm(r3.Sub(diameter2, ritterCenter))
	radiusSquared := ritterRadius * ritterRadius

	box := r3.Box{
		Min: r3.Vec{X: xMin.X, Y: yMin.Y, Z: zMin.Z},
		Max: r3.Vec{X: xMax.X, Y: yMax.Y, Z: zMax.Z},
	}
	naiveCenter := box.Center()
	naiveRadius := 0.0

	for i := 0; i < n; i++ {
		p := vertexAt(positions, i)

		naiveRadius = math.Max(naiveRadius, r3.Norm(r3.Sub(p, naiveCenter)))

		toPointSquared := r3.Norm2(r3.Sub(p, ritterCenter))
		if toPointSquared > radiusSquared {
			toPoint := math.Sqrt(toPointSquared)
			// Grow just enough to reach p, sliding the centre towards it.
			ritterRadius = (ritterRadius + toPoint) * 0.5
			radiusSquared = ritterRadius * ritterRadius
			shift := toPoint - ritterRadius
			ritterCenter = r3.Scale(1/toPoint, r3.Add(
				r3.Scale(ritterRadius, ritterCenter),
				r3.Scale(shift, p),
			))
		}
	}

	if ritterRadius < naiveRadius {
		return Sphere{Center: ritterCenter, Radius: ritterRadius}
	}
	return Sphere{Center: naiveCenter, Radius: naiveRadius}
}

func vertexAt(positions []float64, i int) r3.Vec {
	return r3.Vec{X: positions[i*3], Y: positions[i*3+1], Z: positions[i*3+2]}
}
