// Package vector implements the vector shape kernel: geographic
// features (points, linears, areals, triangle meshes) together with the
// spatial algorithms that prepare them for rendering and querying,
// bounding boxes, areas and centroids, containment, ray intersection
// and adaptive subdivision.
//
// Shapes are created through the New* functions, populated by the
// caller, and handed to algorithms. The bounding box is cached: after
// mutating geometry the caller must call InitGeoMbr again, nothing
// recomputes it implicitly. None of the types lock internally; readers
// may share a shape freely, mutation needs exclusive access.
package vector

import (
	"sync/atomic"

	"github.com/globekit/vecdata/geo"
)

// ShapeID identifies a shape for the lifetime of the process. IDs are
// never reused and never zero.
type ShapeID int64

var lastShapeID int64

func nextShapeID() ShapeID {
	return ShapeID(atomic.AddInt64(&lastShapeID, 1))
}

// Attributes is the per-shape attribute dictionary. It is owned by
// whoever produced the shape; the kernel carries the reference around
// and never looks inside.
type Attributes map[string]interface{}

// Shape is implemented by all vector feature variants. Algorithms
// type-switch on the concrete types Points, Linear, Linear3d, Areal
// and Triangles.
type Shape interface {
	// ID returns the process-unique identity of the shape.
	ID() ShapeID

	// AttrDict returns the attribute dictionary.
	AttrDict() Attributes

	// SetAttrDict replaces the attribute dictionary.
	SetAttrDict(attrs Attributes)

	// GeoMbr returns the cached bounding box. It is the empty
	// sentinel until InitGeoMbr has been called.
	GeoMbr() geo.Mbr

	// CalcGeoMbr computes the bounding box from the current
	// geometry without touching the cache.
	CalcGeoMbr() geo.Mbr

	// InitGeoMbr computes the bounding box from the current
	// geometry and caches it.
	InitGeoMbr()
}

type shapeBase struct {
	id     ShapeID
	attrs  Attributes
	geoMbr geo.Mbr
}

func newShapeBase() shapeBase {
	return shapeBase{
		id:     nextShapeID(),
		geoMbr: geo.EmptyMbr(),
	}
}

func (s *shapeBase) ID() ShapeID { return s.id }

func (s *shapeBase) AttrDict() Attributes { return s.attrs }

func (s *shapeBase) SetAttrDict(attrs Attributes) { s.attrs = attrs }

func (s *shapeBase) GeoMbr() geo.Mbr { return s.geoMbr }

// Points is a set of locations sharing one attribute dictionary but
// otherwise unrelated. Usually one point, but be prepared for more.
type Points struct {
	shapeBase
	Pts Ring
}

func NewPoints() *Points {
	return &Points{shapeBase: newShapeBase()}
}

func (p *Points) CalcGeoMbr() geo.Mbr {
	return p.Pts.GeoMbr()
}

func (p *Points) InitGeoMbr() {
	p.geoMbr = p.CalcGeoMbr()
}

// Linear is an open path: a ring of points forming a set of edges.
type Linear struct {
	shapeBase
	Pts Ring
}

func NewLinear() *Linear {
	return &Linear{shapeBase: newShapeBase()}
}

func (l *Linear) CalcGeoMbr() geo.Mbr {
	return l.Pts.GeoMbr()
}

func (l *Linear) InitGeoMbr() {
	l.geoMbr = l.CalcGeoMbr()
}

// Subdivide breaks every edge longer than tolerance in place. The
// cached bounding box is unaffected, callers re-init it if they need
// it fresh (pure refinement never moves the box, so usually they
// don't).
func (l *Linear) Subdivide(tolerance float32) {
	l.Pts, _ = SubdivideEdges(l.Pts, false, tolerance)
}

// Linear3d is an open path with height.
type Linear3d struct {
	shapeBase
	Pts Ring3d
}

func NewLinear3d() *Linear3d {
	return &Linear3d{shapeBase: newShapeBase()}
}

func (l *Linear3d) CalcGeoMbr() geo.Mbr {
	return l.Pts.GeoMbr()
}

func (l *Linear3d) InitGeoMbr() {
	l.geoMbr = l.CalcGeoMbr()
}

// Areal is a polygon feature: the first loop is the outer boundary,
// any further loops are holes.
type Areal struct {
	shapeBase
	Loops []Ring
}

func NewAreal() *Areal {
	return &Areal{shapeBase: newShapeBase()}
}

// CalcGeoMbr covers the outer loop only. Holes are interior and can
// never enlarge the box.
func (a *Areal) CalcGeoMbr() geo.Mbr {
	if len(a.Loops) == 0 {
		return geo.EmptyMbr()
	}
	return a.Loops[0].GeoMbr()
}

func (a *Areal) InitGeoMbr() {
	a.geoMbr = a.CalcGeoMbr()
}

// PointInside reports whether the location falls within the polygon:
// inside the outer loop and not inside any hole. The cached bounding
// box is checked first, so InitGeoMbr must have been called.
func (a *Areal) PointInside(c geo.GeoCoord) bool {
	if !a.geoMbr.Contains(c) {
		return false
	}
	if len(a.Loops) == 0 {
		return false
	}
	if !PointInRing(c, a.Loops[0]) {
		return false
	}
	for _, hole := range a.Loops[1:] {
		if PointInRing(c, hole) {
			return false
		}
	}
	return true
}

// Subdivide breaks every edge of every loop longer than tolerance, in
// place.
func (a *Areal) Subdivide(tolerance float32) {
	for i, loop := range a.Loops {
		a.Loops[i], _ = SubdivideEdges(loop, true, tolerance)
	}
}

// Triangle indexes three vertices in the mesh's shared point array.
type Triangle struct {
	Pts [3]int
}

// Triangles is a mesh: a shared vertex array plus triangles referring
// into it. Vertices may be shared between triangles.
type Triangles struct {
	shapeBase
	Pts  []geo.Point3f
	Tris []Triangle
}

func NewTriangles() *Triangles {
	return &Triangles{shapeBase: newShapeBase()}
}

// AddTriangle appends a triangle over three existing vertex indices.
func (t *Triangles) AddTriangle(a, b, c int) {
	t.Tris = append(t.Tris, Triangle{Pts: [3]int{a, b, c}})
}

// TriangleAt returns triangle i as a 2D ring (x, y of its vertices).
// Returns false if the index or any vertex reference is out of range.
func (t *Triangles) TriangleAt(i int) (Ring, bool) {
	if i < 0 || i >= len(t.Tris) {
		return nil, false
	}
	tri := t.Tris[i]
	ring := make(Ring, 3)
	for j, vi := range tri.Pts {
		if vi < 0 || vi >= len(t.Pts) {
			return nil, false
		}
		p := t.Pts[vi]
		ring[j] = geo.Point2f{X: p.X, Y: p.Y}
	}
	return ring, true
}

// CalcGeoMbr covers every vertex referenced by a triangle. Vertices no
// triangle uses don't count.
func (t *Triangles) CalcGeoMbr() geo.Mbr {
	mbr := geo.EmptyMbr()
	for _, tri := range t.Tris {
		for _, vi := range tri.Pts {
			if vi < 0 || vi >= len(t.Pts) {
				continue
			}
			p := t.Pts[vi]
			mbr = mbr.AddPoint(geo.Point2f{X: p.X, Y: p.Y})
		}
	}
	return mbr
}

func (t *Triangles) InitGeoMbr() {
	t.geoMbr = t.CalcGeoMbr()
}

// PointInside reports whether the location falls within any triangle,
// each treated as a flat facet in the x/y plane. The cached bounding
// box is checked first.
func (t *Triangles) PointInside(c geo.GeoCoord) bool {
	if !t.geoMbr.Contains(c) {
		return false
	}
	for i := range t.Tris {
		ring, ok := t.TriangleAt(i)
		if !ok {
			continue
		}
		if PointInRing(c, ring) {
			return true
		}
	}
	return false
}

// ShapeSet is an unordered group of shapes, deduplicated by identity:
// adding the same shape twice keeps one entry, two distinct shapes
// with identical coordinates stay distinct. Not synchronized, callers
// coordinate concurrent writers.
type ShapeSet map[ShapeID]Shape

func NewShapeSet() ShapeSet {
	return make(ShapeSet)
}

func (s ShapeSet) Add(sh Shape) {
	s[sh.ID()] = sh
}

func (s ShapeSet) Remove(sh Shape) {
	delete(s, sh.ID())
}

func (s ShapeSet) Contains(sh Shape) bool {
	_, ok := s[sh.ID()]
	return ok
}

func (s ShapeSet) Len() int {
	return len(s)
}

// Merge adds every shape of the other set.
func (s ShapeSet) Merge(o ShapeSet) {
	for id, sh := range o {
		s[id] = sh
	}
}
