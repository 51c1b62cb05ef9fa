package vector

import "github.com/globekit/vecdata/geo"

// Ring is an ordered run of 2D points forming one open or closed path.
// Order defines the edges; for closed rings it also defines winding.
// Consecutive duplicate points are legal.
type Ring []geo.Point2f

// Ring2d is a Ring in double precision.
type Ring2d []geo.Point2d

// Ring3d is an ordered run of 3D points.
type Ring3d []geo.Point3d

// GeoMbr returns the bounding box of the ring, the empty sentinel for
// an empty ring.
func (r Ring) GeoMbr() geo.Mbr {
	return geo.MbrFromPoints(r)
}

// GeoMbr returns the bounding box of the ring's x/y footprint.
func (r Ring3d) GeoMbr() geo.Mbr {
	mbr := geo.EmptyMbr()
	for _, p := range r {
		mbr = mbr.AddPoint(geo.Point2f{X: float32(p.X), Y: float32(p.Y)})
	}
	return mbr
}
