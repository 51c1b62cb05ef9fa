package main

import (
	"log"

	"github.com/globekit/vecdata/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
