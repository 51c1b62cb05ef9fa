package vector

import "github.com/globekit/vecdata/geo"

// CalcLoopArea returns the signed shoelace area of a closed loop.
// Counter-clockwise winding (y up) is positive. Fewer than three
// points is degenerate and yields zero.
func CalcLoopArea(loop Ring) float32 {
	if len(loop) < 3 {
		return 0
	}
	var area float32
	for i, p0 := range loop {
		p1 := loop[(i+1)%len(loop)]
		area += p0.X*p1.Y - p1.X*p0.Y
	}
	return area / 2
}

// CalcLoopAreaD is CalcLoopArea in double precision.
func CalcLoopAreaD(loop Ring2d) float64 {
	if len(loop) < 3 {
		return 0
	}
	var area float64
	for i, p0 := range loop {
		p1 := loop[(i+1)%len(loop)]
		area += p0.X*p1.Y - p1.X*p0.Y
	}
	return area / 2
}

// CalcLoopCentroid returns the area-weighted centroid of a closed
// loop. A zero-area loop has no area centroid, so the center of mass
// is returned instead.
func CalcLoopCentroid(loop Ring) geo.Point2f {
	area := CalcLoopArea(loop)
	if area == 0 {
		return CalcCenterOfMassF(loop)
	}
	var cx, cy float32
	for i, p0 := range loop {
		p1 := loop[(i+1)%len(loop)]
		cross := p0.X*p1.Y - p1.X*p0.Y
		cx += (p0.X + p1.X) * cross
		cy += (p0.Y + p1.Y) * cross
	}
	return geo.Point2f{X: cx / (6 * area), Y: cy / (6 * area)}
}

// CalcLoopCentroidD is CalcLoopCentroid in double precision.
func CalcLoopCentroidD(loop Ring2d) geo.Point2d {
	area := CalcLoopAreaD(loop)
	if area == 0 {
		return CalcCenterOfMass(loop)
	}
	var cx, cy float64
	for i, p0 := range loop {
		p1 := loop[(i+1)%len(loop)]
		cross := p0.X*p1.Y - p1.X*p0.Y
		cx += (p0.X + p1.X) * cross
		cy += (p0.Y + p1.Y) * cross
	}
	return geo.Point2d{X: cx / (6 * area), Y: cy / (6 * area)}
}

// CalcCenterOfMass returns the arithmetic mean of the loop's vertices.
// Well-defined for any non-empty loop, which makes it the fallback
// when the area is zero. An empty loop yields the origin.
func CalcCenterOfMass(loop Ring2d) geo.Point2d {
	if len(loop) == 0 {
		return geo.Point2d{}
	}
	var sx, sy float64
	for _, p := range loop {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(loop))
	return geo.Point2d{X: sx / n, Y: sy / n}
}

// CalcCenterOfMassF is CalcCenterOfMass in single precision.
func CalcCenterOfMassF(loop Ring) geo.Point2f {
	if len(loop) == 0 {
		return geo.Point2f{}
	}
	var sx, sy float32
	for _, p := range loop {
		sx += p.X
		sy += p.Y
	}
	n := float32(len(loop))
	return geo.Point2f{X: sx / n, Y: sy / n}
}
