package cmd

import (
	"fmt"

	"github.com/globekit/vecdata/geo"
	"github.com/globekit/vecdata/vector"
)

type CmdSubdivide struct {
	global *GlobalOptions

	Tolerance float64 `short:"t" long:"tolerance" default:"1" description:"Maximum edge length, in degrees"`
}

func init() {
	_, err := parser.AddCommand("subdivide",
		"Subdivide shapes",
		"Read a GeoJSON file, subdivide all edges to the given tolerance and report the sizes",
		&CmdSubdivide{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdSubdivide) Usage() string {
	return "[-t tolerance] file.geojson"
}

func (cmd CmdSubdivide) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	shapes, err := loadShapes(args[0])
	if err != nil {
		return err
	}

	tolerance := float32(cmd.Tolerance * geo.DegToRad)
	for _, shape := range shapes {
		switch s := shape.(type) {
		case *vector.Linear:
			before := len(s.Pts)
			s.Subdivide(tolerance)
			fmt.Printf("linear #%d: %d -> %d points\n", s.ID(), before, len(s.Pts))
		case *vector.Areal:
			before := 0
			for _, loop := range s.Loops {
				before += len(loop)
			}
			s.Subdivide(tolerance)
			after := 0
			for _, loop := range s.Loops {
				after += len(loop)
			}
			fmt.Printf("areal  #%d: %d -> %d points\n", s.ID(), before, after)
		}
	}

	return nil
}
