package geo

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
)

func TestEmptyMbr(t *testing.T) {
	is := is.New(t)

	m := EmptyMbr()
	is.False(m.Valid())
	is.False(m.Contains(MakeGeoCoord(0, 0)))
}

func TestMbrSinglePoint(t *testing.T) {
	is := is.New(t)

	p := GeoCoordFromDegrees(4.35, 50.85)
	m := EmptyMbr().AddGeoCoord(p)
	is.True(m.Valid())
	is.True(m.Contains(p))
	is.Equal(m.Lo(), m.Hi())
	is.False(m.Contains(GeoCoordFromDegrees(5, 50.85)))
}

func TestMbrBasic(t *testing.T) {
	is := is.New(t)

	m := EmptyMbr()
	m = m.AddGeoCoord(GeoCoordFromDegrees(2, 49))
	m = m.AddGeoCoord(GeoCoordFromDegrees(7, 53))

	is.True(m.Contains(GeoCoordFromDegrees(4, 51)))
	is.False(m.Contains(GeoCoordFromDegrees(4, 54)))
	is.False(m.Contains(GeoCoordFromDegrees(8, 51)))

	// Bounds are inclusive
	is.True(m.Contains(GeoCoordFromDegrees(2, 49)))
	is.True(m.Contains(GeoCoordFromDegrees(7, 53)))
}

func TestMbrAntimeridian(t *testing.T) {
	is := is.New(t)

	m := EmptyMbr()
	m = m.AddGeoCoord(GeoCoordFromDegrees(179, 10))
	m = m.AddGeoCoord(GeoCoordFromDegrees(-179, 12))

	// A narrow box across the dateline, not one around the globe.
	is.True(m.SpanLon() < 3*DegToRad)
	is.True(m.Contains(GeoCoordFromDegrees(179.5, 11)))
	is.False(m.Contains(GeoCoordFromDegrees(0, 11)))
	is.False(m.Contains(GeoCoordFromDegrees(90, 11)))
}

func TestMbrUnion(t *testing.T) {
	is := is.New(t)

	a := EmptyMbr().
		AddGeoCoord(GeoCoordFromDegrees(0, 0)).
		AddGeoCoord(GeoCoordFromDegrees(2, 2))
	b := EmptyMbr().
		AddGeoCoord(GeoCoordFromDegrees(5, 5)).
		AddGeoCoord(GeoCoordFromDegrees(7, 7))

	u := a.Union(b)
	is.True(u.Contains(GeoCoordFromDegrees(1, 1)))
	is.True(u.Contains(GeoCoordFromDegrees(6, 6)))
	is.True(u.Contains(GeoCoordFromDegrees(4, 4)))

	// Union with the empty box changes nothing
	u2 := a.Union(EmptyMbr())
	is.Equal(u2.Lo(), a.Lo())
	is.Equal(u2.Hi(), a.Hi())
}

func TestMbrMid(t *testing.T) {
	is := is.New(t)

	m := EmptyMbr().
		AddGeoCoord(GeoCoordFromDegrees(2, 40)).
		AddGeoCoord(GeoCoordFromDegrees(4, 44))

	mid := m.Mid()
	is.True(math.Abs(float64(mid.Lon())-3*DegToRad) < 1e-6)
	is.True(math.Abs(float64(mid.Lat())-42*DegToRad) < 1e-6)
}
