package vector

import (
	"math"
	"testing"

	"github.com/cheekybits/is"

	"github.com/globekit/vecdata/geo"
)

func TestLoopArea(t *testing.T) {
	is := is.New(t)

	// Counter-clockwise square, 10 x 10
	square := Ring{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}
	is.Equal(CalcLoopArea(square), float32(100))

	// Clockwise flips the sign
	clockwise := Ring{
		{X: 0, Y: 0},
		{X: 0, Y: 10},
		{X: 10, Y: 10},
		{X: 10, Y: 0},
	}
	is.Equal(CalcLoopArea(clockwise), float32(-100))
}

func TestLoopAreaDegenerate(t *testing.T) {
	is := is.New(t)

	is.Equal(CalcLoopArea(Ring{}), float32(0))
	is.Equal(CalcLoopArea(Ring{{X: 1, Y: 1}}), float32(0))
	is.Equal(CalcLoopArea(Ring{{X: 1, Y: 1}, {X: 2, Y: 2}}), float32(0))
	is.Equal(CalcLoopAreaD(Ring2d{{X: 1, Y: 1}, {X: 2, Y: 2}}), float64(0))
}

func TestLoopAreaReference(t *testing.T) {
	is := is.New(t)

	// Irregular convex pentagon, area checked against the triangle
	// decomposition around the first vertex.
	loop := Ring2d{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 5, Y: 3},
		{X: 2, Y: 5},
		{X: -1, Y: 3},
	}

	triArea := func(a, b, c geo.Point2d) float64 {
		return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
	}
	want := 0.0
	for i := 1; i < len(loop)-1; i++ {
		want += triArea(loop[0], loop[i], loop[i+1])
	}

	got := CalcLoopAreaD(loop)
	is.True(math.Abs(got-want) < 1e-12)
	is.True(got > 0)
}

func TestPrecisionVariantsAgree(t *testing.T) {
	is := is.New(t)

	loop := Ring{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 5, Y: 3},
		{X: 2, Y: 5},
		{X: -1, Y: 3},
	}
	loopD := make(Ring2d, len(loop))
	for i, p := range loop {
		loopD[i] = p.P2d()
	}

	is.True(math.Abs(float64(CalcLoopArea(loop))-CalcLoopAreaD(loopD)) < 1e-4)

	c := CalcLoopCentroid(loop)
	cd := CalcLoopCentroidD(loopD)
	is.True(math.Abs(float64(c.X)-cd.X) < 1e-4)
	is.True(math.Abs(float64(c.Y)-cd.Y) < 1e-4)
}

func TestLoopCentroid(t *testing.T) {
	is := is.New(t)

	square := Ring{
		{X: 2, Y: 2},
		{X: 6, Y: 2},
		{X: 6, Y: 6},
		{X: 2, Y: 6},
	}
	c := CalcLoopCentroid(square)
	is.True(math.Abs(float64(c.X)-4) < 1e-5)
	is.True(math.Abs(float64(c.Y)-4) < 1e-5)
}

func TestCentroidInsideBounds(t *testing.T) {
	is := is.New(t)

	// Radian-range ring so the Mbr applies
	loop := Ring{
		{X: 0, Y: 0},
		{X: 0.2, Y: 0},
		{X: 0.25, Y: 0.1},
		{X: 0.1, Y: 0.15},
		{X: -0.05, Y: 0.1},
	}
	is.True(CalcLoopArea(loop) > 0)

	c := CalcLoopCentroid(loop)
	is.True(loop.GeoMbr().Contains(geo.GeoCoord(c)))
}

func TestCentroidZeroAreaFallsBack(t *testing.T) {
	is := is.New(t)

	// All points on one line: zero area, centroid degrades to the
	// center of mass.
	line := Ring2d{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 2},
	}
	c := CalcLoopCentroidD(line)
	is.Equal(c, CalcCenterOfMass(line))
	is.Equal(c, geo.Point2d{X: 1, Y: 1})
}

func TestCenterOfMass(t *testing.T) {
	is := is.New(t)

	is.Equal(CalcCenterOfMass(Ring2d{}), geo.Point2d{})

	loop := Ring2d{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
	}
	is.Equal(CalcCenterOfMass(loop), geo.Point2d{X: 1, Y: 1})

	loopF := Ring{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
	}
	is.Equal(CalcCenterOfMassF(loopF), geo.Point2f{X: 1, Y: 1})
}
