package cmd

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/globekit/vecdata/vector"
	"github.com/globekit/vecdata/vectorjson"
)

type GlobalOptions struct{}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func loadShapes(filename string) (vector.ShapeSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	shapes := vector.NewShapeSet()
	err = vectorjson.ParseFeatureCollection(data, shapes)
	if err != nil {
		return nil, err
	}
	return shapes, nil
}
