package vector

import (
	"math"

	"github.com/globekit/vecdata/geo"
	"github.com/globekit/vecdata/surface"
)

// maxSubdivideDepth caps the deviation-driven recursion. A segment
// still over tolerance at the cap is accepted as is, we never fail.
const maxSubdivideDepth = 16

// SubdivideEdges breaks every edge longer than maxLen into evenly
// spaced pieces no longer than maxLen. Endpoints are preserved; closed
// also subdivides the edge from the last point back to the first. The
// bool reports whether any edge was split. A maxLen <= 0 or a ring of
// fewer than two points is returned unchanged.
func SubdivideEdges(in Ring, closed bool, maxLen float32) (Ring, bool) {
	if len(in) < 2 || maxLen <= 0 {
		return in, false
	}

	out := make(Ring, 0, len(in))
	changed := false

	edges := len(in) - 1
	if closed {
		edges = len(in)
	}
	for i := 0; i < edges; i++ {
		p0 := in[i]
		p1 := in[(i+1)%len(in)]
		out = append(out, p0)

		dist := p0.DistanceTo(p1)
		if dist <= maxLen {
			continue
		}
		n := int(math.Ceil(float64(dist / maxLen)))
		for j := 1; j < n; j++ {
			t := float32(j) / float32(n)
			out = append(out, geo.Point2f{
				X: p0.X + (p1.X-p0.X)*t,
				Y: p0.Y + (p1.Y-p0.Y)*t,
			})
		}
		changed = true
	}
	if !closed {
		out = append(out, in[len(in)-1])
	}
	return out, changed
}

// SubdivideEdges3d is SubdivideEdges for 3D rings.
func SubdivideEdges3d(in Ring3d, closed bool, maxLen float64) (Ring3d, bool) {
	if len(in) < 2 || maxLen <= 0 {
		return in, false
	}

	out := make(Ring3d, 0, len(in))
	changed := false

	edges := len(in) - 1
	if closed {
		edges = len(in)
	}
	for i := 0; i < edges; i++ {
		p0 := in[i]
		p1 := in[(i+1)%len(in)]
		out = append(out, p0)

		dist := p1.Sub(p0).Norm()
		if dist <= maxLen {
			continue
		}
		n := int(math.Ceil(dist / maxLen))
		for j := 1; j < n; j++ {
			t := float64(j) / float64(n)
			out = append(out, p0.Add(p1.Sub(p0).Mul(t)))
		}
		changed = true
	}
	if !closed {
		out = append(out, in[len(in)-1])
	}
	return out, changed
}

func displayPt(adapter surface.Adapter, p geo.Point2f) geo.Point3d {
	return adapter.LocalToDisplay(geo.Point3d{X: float64(p.X), Y: float64(p.Y)})
}

func subdivideToSurface(adapter surface.Adapter, p0, p1 geo.Point2f, eps float64, depth int, out *Ring, changed *bool) {
	if depth < maxSubdivideDepth {
		mid := geo.Point2f{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
		chordMid := displayPt(adapter, p0).Add(displayPt(adapter, p1)).Mul(0.5)
		surfMid := displayPt(adapter, mid)
		if surfMid.Sub(chordMid).Norm() > eps {
			*changed = true
			subdivideToSurface(adapter, p0, mid, eps, depth+1, out, changed)
			subdivideToSurface(adapter, mid, p1, eps, depth+1, out, changed)
			return
		}
	}
	*out = append(*out, p1)
}

// SubdivideEdgesToSurface bisects every edge whose chord deviates from
// the display surface by more than eps: the edge midpoint is run
// through the adapter and compared against the midpoint of the chord
// between the edge endpoints' surface positions. Bisection repeats on
// the halves until the deviation is within eps, so running the result
// through again with the same eps changes nothing. Recursion is capped
// rather than failing on a non-converging adapter. An eps <= 0 or a
// ring of fewer than two points is returned unchanged.
func SubdivideEdgesToSurface(in Ring, closed bool, adapter surface.Adapter, eps float32) (Ring, bool) {
	if len(in) < 2 || eps <= 0 {
		return in, false
	}

	out := make(Ring, 0, len(in))
	out = append(out, in[0])
	changed := false

	edges := len(in) - 1
	if closed {
		edges = len(in)
	}
	for i := 0; i < edges; i++ {
		subdivideToSurface(adapter, in[i], in[(i+1)%len(in)], float64(eps), 0, &out, &changed)
	}
	if closed {
		// The closing edge re-appended the first point.
		out = out[:len(out)-1]
	}
	return out, changed
}

func subdivideToSurface3d(adapter surface.Adapter, p0, p1 geo.Point3d, eps float64, depth int, out *Ring3d, changed *bool) {
	if depth < maxSubdivideDepth {
		mid := p0.Add(p1).Mul(0.5)
		chordMid := adapter.LocalToDisplay(p0).Add(adapter.LocalToDisplay(p1)).Mul(0.5)
		surfMid := adapter.LocalToDisplay(mid)
		if surfMid.Sub(chordMid).Norm() > eps {
			*changed = true
			subdivideToSurface3d(adapter, p0, mid, eps, depth+1, out, changed)
			subdivideToSurface3d(adapter, mid, p1, eps, depth+1, out, changed)
			return
		}
	}
	*out = append(*out, p1)
}

// SubdivideEdgesToSurface3d is SubdivideEdgesToSurface for 3D rings,
// carrying height through the adapter.
func SubdivideEdgesToSurface3d(in Ring3d, closed bool, adapter surface.Adapter, eps float64) (Ring3d, bool) {
	if len(in) < 2 || eps <= 0 {
		return in, false
	}

	out := make(Ring3d, 0, len(in))
	out = append(out, in[0])
	changed := false

	edges := len(in) - 1
	if closed {
		edges = len(in)
	}
	for i := 0; i < edges; i++ {
		subdivideToSurface3d(adapter, in[i], in[(i+1)%len(in)], eps, 0, &out, &changed)
	}
	if closed {
		out = out[:len(out)-1]
	}
	return out, changed
}

func offsetOut(adapter surface.Adapter, p geo.Point3d, offset float64) geo.Point3d {
	if offset == 0 {
		return p
	}
	return p.Add(adapter.DisplayNormal(p).Mul(offset))
}

func subdivideToSurfaceGC(adapter surface.Adapter, d0, d1 geo.Point3d, eps float64, depth, minDepth int, offset float64, out *Ring3d) {
	if depth < maxSubdivideDepth {
		chordMid := d0.Add(d1).Mul(0.5)
		gcMid := chordMid
		if chordMid.Norm() > 0 {
			// Project the chord midpoint back onto the surface,
			// interpolating the radius of the endpoints. That is
			// the great-circle midpoint for a spherical surface.
			gcMid = chordMid.Normalize().Mul((d0.Norm() + d1.Norm()) / 2)
		}
		if depth < minDepth || (eps > 0 && gcMid.Sub(chordMid).Norm() > eps) {
			subdivideToSurfaceGC(adapter, d0, gcMid, eps, depth+1, minDepth, offset, out)
			subdivideToSurfaceGC(adapter, gcMid, d1, eps, depth+1, minDepth, offset, out)
			return
		}
	}
	*out = append(*out, offsetOut(adapter, d1, offset))
}

// SubdivideEdgesToSurfaceGC subdivides like SubdivideEdgesToSurface
// but emits display coordinates, walking each edge along the great
// circle between its endpoints on the surface, so the output hugs the
// globe instead of cutting chords through it. The output is always a
// 3D ring. sphereOffset pushes every emitted point outward along the
// surface normal, for geometry that must sit above the surface.
// minPts, when positive, forces at least that many points per input
// edge whether or not the deviation test asks for them. An eps <= 0
// disables the deviation test, leaving only the minPts subdivision.
func SubdivideEdgesToSurfaceGC(in Ring, closed bool, adapter surface.Adapter, eps float32, sphereOffset float32, minPts int) Ring3d {
	if len(in) == 0 {
		return nil
	}

	offset := float64(sphereOffset)
	out := make(Ring3d, 0, len(in))
	out = append(out, offsetOut(adapter, displayPt(adapter, in[0]), offset))
	if len(in) < 2 {
		return out
	}

	minDepth := 0
	if minPts > 1 {
		minDepth = int(math.Ceil(math.Log2(float64(minPts))))
	}

	edges := len(in) - 1
	if closed {
		edges = len(in)
	}
	for i := 0; i < edges; i++ {
		d0 := displayPt(adapter, in[i])
		d1 := displayPt(adapter, in[(i+1)%len(in)])
		subdivideToSurfaceGC(adapter, d0, d1, float64(eps), 0, minDepth, offset, &out)
	}
	if closed {
		out = out[:len(out)-1]
	}
	return out
}
