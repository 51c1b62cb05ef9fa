// Package vectorjson turns GeoJSON into vector shapes. It is a shape
// producer: it fills ShapeSets with Points, Linear and Areal features,
// attaches the GeoJSON properties as the attribute dictionary and
// initializes every bounding box before handing the shapes over.
//
// GeoJSON coordinates are degrees; shapes come out in radians, the
// kernel convention.
package vectorjson

import (
	"encoding/json"
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/globekit/vecdata/geo"
	"github.com/globekit/vecdata/vector"
)

func ringFromCoords(coords [][]float64) (vector.Ring, error) {
	ring := make(vector.Ring, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			return nil, fmt.Errorf("position needs at least two values, got %v", c)
		}
		p := geo.GeoCoordFromDegrees(c[0], c[1])
		ring = append(ring, p.P2f())
	}
	return ring, nil
}

func addGeometry(g *geojson.Geometry, attrs vector.Attributes, shapes vector.ShapeSet) error {
	switch g.Type {
	case geojson.GeometryPoint:
		return addPoints(g.Point, attrs, shapes)
	case geojson.GeometryMultiPoint:
		pts := vector.NewPoints()
		ring, err := ringFromCoords(g.MultiPoint)
		if err != nil {
			return err
		}
		pts.Pts = ring
		pts.SetAttrDict(attrs)
		pts.InitGeoMbr()
		shapes.Add(pts)
	case geojson.GeometryLineString:
		return addLinear(g.LineString, attrs, shapes)
	case geojson.GeometryMultiLineString:
		for _, line := range g.MultiLineString {
			if err := addLinear(line, attrs, shapes); err != nil {
				return err
			}
		}
	case geojson.GeometryPolygon:
		return addAreal(g.Polygon, attrs, shapes)
	case geojson.GeometryMultiPolygon:
		for _, poly := range g.MultiPolygon {
			if err := addAreal(poly, attrs, shapes); err != nil {
				return err
			}
		}
	case geojson.GeometryCollection:
		for _, sub := range g.Geometries {
			if err := addGeometry(sub, attrs, shapes); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported geometry type: %s", g.Type)
	}
	return nil
}

func addPoints(coord []float64, attrs vector.Attributes, shapes vector.ShapeSet) error {
	ring, err := ringFromCoords([][]float64{coord})
	if err != nil {
		return err
	}
	pts := vector.NewPoints()
	pts.Pts = ring
	pts.SetAttrDict(attrs)
	pts.InitGeoMbr()
	shapes.Add(pts)
	return nil
}

func addLinear(coords [][]float64, attrs vector.Attributes, shapes vector.ShapeSet) error {
	ring, err := ringFromCoords(coords)
	if err != nil {
		return err
	}
	lin := vector.NewLinear()
	lin.Pts = ring
	lin.SetAttrDict(attrs)
	lin.InitGeoMbr()
	shapes.Add(lin)
	return nil
}

func addAreal(rings [][][]float64, attrs vector.Attributes, shapes vector.ShapeSet) error {
	ar := vector.NewAreal()
	for _, coords := range rings {
		ring, err := ringFromCoords(coords)
		if err != nil {
			return err
		}
		ar.Loops = append(ar.Loops, ring)
	}
	ar.SetAttrDict(attrs)
	ar.InitGeoMbr()
	shapes.Add(ar)
	return nil
}

// ParseFeatureCollection decodes a GeoJSON feature collection and adds
// the resulting shapes to the given set. Polygons become Areal shapes,
// first ring outer and the rest holes. Multi geometries fan out into
// one shape per member sharing a single attribute dictionary.
func ParseFeatureCollection(data []byte, shapes vector.ShapeSet) error {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return err
	}

	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		attrs := vector.Attributes(f.Properties)
		if err := addGeometry(f.Geometry, attrs, shapes); err != nil {
			return err
		}
	}
	return nil
}

// ParseAssembly decodes a keyed set of feature collections, the
// assembly format: a JSON object whose values are each a feature
// collection, returned as one ShapeSet per key.
func ParseAssembly(data []byte) (map[string]vector.ShapeSet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]vector.ShapeSet, len(raw))
	for key, doc := range raw {
		shapes := vector.NewShapeSet()
		if err := ParseFeatureCollection(doc, shapes); err != nil {
			return nil, fmt.Errorf("assembly entry %q: %s", key, err)
		}
		out[key] = shapes
	}
	return out, nil
}
