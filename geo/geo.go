// Package geo holds the coordinate primitives shared by the vector
// shape kernel: 2D and 3D points in single and double precision, the
// GeoCoord geographic location and the antimeridian-aware Mbr bounding
// box.
//
// Geographic coordinates are longitude/latitude in radians throughout.
// Degrees only appear at the parsing and display boundaries.
package geo

import (
	"math"

	"github.com/golang/geo/r3"
)

const DegToRad = math.Pi / 180
const RadToDeg = 180 / math.Pi

// Point2f is a 2D point in single precision. For geographic use X is
// longitude and Y latitude, in radians.
type Point2f struct {
	X, Y float32
}

// Point2d is a 2D point in double precision.
type Point2d struct {
	X, Y float64
}

// Point3f is a 3D point in single precision.
type Point3f struct {
	X, Y, Z float32
}

// Point3d is a 3D point in double precision. It aliases r3.Vector so
// the usual vector operations (Add, Sub, Dot, Cross, Norm) come along.
type Point3d = r3.Vector

func (p Point2f) P2d() Point2d {
	return Point2d{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point2d) P2f() Point2f {
	return Point2f{X: float32(p.X), Y: float32(p.Y)}
}

func (p Point3f) P3d() Point3d {
	return Point3d{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

func P3f(p Point3d) Point3f {
	return Point3f{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
}

// DistanceTo returns the planar distance between two points.
func (p Point2f) DistanceTo(q Point2f) float32 {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// DistanceTo returns the planar distance between two points.
func (p Point2d) DistanceTo(q Point2d) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// GeoCoord is a geographic location, longitude first, in radians.
type GeoCoord Point2f

func MakeGeoCoord(lon, lat float64) GeoCoord {
	return GeoCoord{X: float32(lon), Y: float32(lat)}
}

func GeoCoordFromDegrees(lon, lat float64) GeoCoord {
	return MakeGeoCoord(lon*DegToRad, lat*DegToRad)
}

func (c GeoCoord) Lon() float32 { return c.X }
func (c GeoCoord) Lat() float32 { return c.Y }

func (c GeoCoord) P2f() Point2f { return Point2f(c) }
