//go:build tinygo

package main

import (
	"slicer/app"
	"slicer/hal"
)

func main() {
	app.Run(hal.New())
}
