package geo

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
)

func TestGeoCoordFromDegrees(t *testing.T) {
	is := is.New(t)

	c := GeoCoordFromDegrees(180, -90)
	is.True(math.Abs(float64(c.Lon())-math.Pi) < 1e-6)
	is.True(math.Abs(float64(c.Lat())+math.Pi/2) < 1e-6)
}

func TestDistance(t *testing.T) {
	is := is.New(t)

	d := Point2f{X: 0, Y: 0}.DistanceTo(Point2f{X: 3, Y: 4})
	is.Equal(d, float32(5))

	dd := Point2d{X: 1, Y: 1}.DistanceTo(Point2d{X: 4, Y: 5})
	is.Equal(dd, float64(5))
}

func TestPointConversions(t *testing.T) {
	is := is.New(t)

	p := Point3f{X: 1, Y: 2, Z: 3}
	is.Equal(p.P3d(), Point3d{X: 1, Y: 2, Z: 3})
	is.Equal(P3f(p.P3d()), p)

	q := Point2d{X: 0.5, Y: -0.5}
	is.Equal(q.P2f().P2d(), q)
}
