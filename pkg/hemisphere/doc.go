// Package hemisphere describes a hemispherical sector volume such as a
// sensor or antenna coverage wedge. It turns option structs into validated
// parameter sets and packs those parameters into flat float64 buffers for
// transfer to a worker.
//
// Elevation angles follow the convention of the tessellators: the polar
// angle of a ring is 90 - elevation, so MaxElevationDeg is the ring nearest
// the zenith axis. The ordering of MinElevationDeg and MaxElevationDeg, and
// of MinRange against Radius, is not checked.
package hemisphere
