package geo

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
)

// Mbr is a geographic bounding box: a latitude interval plus a
// longitude interval. Longitude lives on a circle, so the box grows by
// the smaller arc when a point is added. A box built from points at
// 179° and -179° spans 2° across the antimeridian, not 358° the other
// way around. When the box crosses the antimeridian, Lo().Lon() is
// numerically greater than Hi().Lon().
//
// The zero value is not meaningful, use EmptyMbr.
type Mbr struct {
	lat r1.Interval
	lng s1.Interval
}

// EmptyMbr returns the empty sentinel box. Adding the first point
// turns it into a degenerate single-point box.
func EmptyMbr() Mbr {
	return Mbr{
		lat: r1.EmptyInterval(),
		lng: s1.EmptyInterval(),
	}
}

// MbrFromPoints builds a box covering all the given points.
func MbrFromPoints(pts []Point2f) Mbr {
	m := EmptyMbr()
	for _, p := range pts {
		m = m.AddPoint(p)
	}
	return m
}

// Valid reports whether the box covers anything at all.
func (m Mbr) Valid() bool {
	return !m.lat.IsEmpty() && !m.lng.IsEmpty()
}

// AddPoint expands the box to cover the given point, longitude along
// the smaller arc.
func (m Mbr) AddPoint(p Point2f) Mbr {
	return Mbr{
		lat: m.lat.AddPoint(float64(p.Y)),
		lng: m.lng.AddPoint(float64(p.X)),
	}
}

// AddGeoCoord expands the box to cover the given location.
func (m Mbr) AddGeoCoord(c GeoCoord) Mbr {
	return m.AddPoint(Point2f(c))
}

// Union returns the smallest box covering both boxes.
func (m Mbr) Union(o Mbr) Mbr {
	return Mbr{
		lat: m.lat.Union(o.lat),
		lng: m.lng.Union(o.lng),
	}
}

// Contains reports whether the location falls inside the box, bounds
// included. The empty box contains nothing.
func (m Mbr) Contains(c GeoCoord) bool {
	return m.lat.Contains(float64(c.Lat())) && m.lng.Contains(float64(c.Lon()))
}

// Lo returns the southwest corner.
func (m Mbr) Lo() GeoCoord {
	return MakeGeoCoord(m.lng.Lo, m.lat.Lo)
}

// Hi returns the northeast corner.
func (m Mbr) Hi() GeoCoord {
	return MakeGeoCoord(m.lng.Hi, m.lat.Hi)
}

// Mid returns the center of the box.
func (m Mbr) Mid() GeoCoord {
	return MakeGeoCoord(m.lng.Center(), m.lat.Center())
}

// SpanLon returns the longitude width, measured along the arc the box
// actually covers.
func (m Mbr) SpanLon() float64 {
	return m.lng.Length()
}

// SpanLat returns the latitude height.
func (m Mbr) SpanLat() float64 {
	return m.lat.Length()
}
