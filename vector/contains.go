package vector

import "github.com/globekit/vecdata/geo"

// PointInRing reports whether the location falls inside the closed
// loop, by ray casting with the odd-even rule. The closing edge from
// the last point back to the first is implied. Fewer than three points
// contains nothing.
func PointInRing(c geo.GeoCoord, ring Ring) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	x := c.Lon()
	y := c.Lat()
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi := ring[i]
		pj := ring[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
