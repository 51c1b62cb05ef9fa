package vector

import (
	"math"

	"github.com/globekit/vecdata/geo"
)

// Rays parallel to a triangle's plane never hit it. Below this
// determinant we treat them as parallel rather than divide.
const rayParallelEps = 1e-10

// TrianglesRayIntersect finds the nearest intersection of a ray with
// the mesh. org is the ray origin, dir its direction (need not be
// normalized, t is in units of dir). Intersections behind the origin
// are rejected. Returns the parametric distance and hit point of the
// closest hit, or ok == false when nothing is hit.
func TrianglesRayIntersect(org, dir geo.Point3d, mesh *Triangles) (t float64, pt geo.Point3d, ok bool) {
	best := math.Inf(1)
	for _, tri := range mesh.Tris {
		valid := true
		for _, vi := range tri.Pts {
			if vi < 0 || vi >= len(mesh.Pts) {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}

		p0 := mesh.Pts[tri.Pts[0]].P3d()
		p1 := mesh.Pts[tri.Pts[1]].P3d()
		p2 := mesh.Pts[tri.Pts[2]].P3d()

		e1 := p1.Sub(p0)
		e2 := p2.Sub(p0)

		pvec := dir.Cross(e2)
		det := e1.Dot(pvec)
		if math.Abs(det) < rayParallelEps {
			continue
		}
		invDet := 1 / det

		tvec := org.Sub(p0)
		u := tvec.Dot(pvec) * invDet
		if u < 0 || u > 1 {
			continue
		}

		qvec := tvec.Cross(e1)
		v := dir.Dot(qvec) * invDet
		if v < 0 || u+v > 1 {
			continue
		}

		dist := e2.Dot(qvec) * invDet
		if dist < 0 || dist >= best {
			continue
		}
		best = dist
	}

	if math.IsInf(best, 1) {
		return 0, geo.Point3d{}, false
	}
	return best, org.Add(dir.Mul(best)), true
}
