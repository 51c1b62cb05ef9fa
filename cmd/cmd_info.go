package cmd

import (
	"fmt"

	"github.com/globekit/vecdata/geo"
	"github.com/globekit/vecdata/vector"
)

type CmdInfo struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("info",
		"Describe shapes",
		"Read a GeoJSON file and describe the shapes in it",
		&CmdInfo{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdInfo) Usage() string {
	return "file.geojson"
}

func (cmd CmdInfo) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	shapes, err := loadShapes(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%d shapes\n", shapes.Len())
	for _, shape := range shapes {
		mbr := shape.GeoMbr()
		lo := mbr.Lo()
		hi := mbr.Hi()

		switch s := shape.(type) {
		case *vector.Points:
			fmt.Printf("points   #%d: %d points\n", s.ID(), len(s.Pts))
		case *vector.Linear:
			fmt.Printf("linear   #%d: %d points\n", s.ID(), len(s.Pts))
		case *vector.Linear3d:
			fmt.Printf("linear3d #%d: %d points\n", s.ID(), len(s.Pts))
		case *vector.Areal:
			fmt.Printf("areal    #%d: %d loops", s.ID(), len(s.Loops))
			if len(s.Loops) > 0 {
				area := vector.CalcLoopArea(s.Loops[0])
				centroid := vector.CalcLoopCentroid(s.Loops[0])
				fmt.Printf(", outer area %g, centroid (%.4f, %.4f)",
					area,
					float64(centroid.X)*geo.RadToDeg,
					float64(centroid.Y)*geo.RadToDeg)
			}
			fmt.Println()
		case *vector.Triangles:
			fmt.Printf("mesh     #%d: %d vertices, %d triangles\n", s.ID(), len(s.Pts), len(s.Tris))
		}

		if mbr.Valid() {
			fmt.Printf("  bbox (%.4f, %.4f) - (%.4f, %.4f)\n",
				float64(lo.Lon())*geo.RadToDeg, float64(lo.Lat())*geo.RadToDeg,
				float64(hi.Lon())*geo.RadToDeg, float64(hi.Lat())*geo.RadToDeg)
		}
	}

	return nil
}
