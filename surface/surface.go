// Package surface defines the boundary to the display surface the
// subdivision algorithms work against: an adapter that maps geographic
// coordinates to positions on a (possibly curved) display surface.
package surface

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/globekit/vecdata/geo"
)

// Adapter maps local geographic coordinates to display coordinates.
// Implementations must be pure functions of their input: subdivision
// relies on repeated evaluation returning the same position.
type Adapter interface {
	// LocalToDisplay maps a local coordinate (longitude, latitude,
	// height in radians/surface units) to a display position.
	LocalToDisplay(p geo.Point3d) geo.Point3d

	// DisplayNormal returns the outward unit surface normal at a
	// display position.
	DisplayNormal(p geo.Point3d) geo.Point3d
}

// Sphere maps geographic coordinates onto a sphere centered on the
// origin, the standard globe surface. A zero Radius means the unit
// sphere. Height (Z) displaces along the normal.
type Sphere struct {
	Radius float64
}

func (s Sphere) radius() float64 {
	if s.Radius == 0 {
		return 1
	}
	return s.Radius
}

func (s Sphere) LocalToDisplay(p geo.Point3d) geo.Point3d {
	ll := s2.LatLng{Lat: s1.Angle(p.Y), Lng: s1.Angle(p.X)}
	v := s2.PointFromLatLng(ll).Vector
	return v.Mul(s.radius() + p.Z)
}

func (s Sphere) DisplayNormal(p geo.Point3d) geo.Point3d {
	return p.Normalize()
}

// Plane maps geographic coordinates onto the z=0 plane unchanged. On a
// flat surface chords never deviate, which makes it useful for testing
// that subdivision leaves already-flat input alone.
type Plane struct{}

func (Plane) LocalToDisplay(p geo.Point3d) geo.Point3d {
	return p
}

func (Plane) DisplayNormal(geo.Point3d) geo.Point3d {
	return geo.Point3d{X: 0, Y: 0, Z: 1}
}
