package render

import "image/color"

const (
	// shadeGranularity is the number of generations per shade step.
	shadeGranularity = 10
	// shadeSteps counts the steps from white down to the floor shade.
	shadeSteps = 12
	shadeFloor = 0x33
)

// AgeShade maps a cell's age to a grey level: white for newborns, darkening
// by 0x11 every ten generations down to #333333 for the oldest survivors.
func AgeShade(age uint64) color.RGBA {
	level := age / shadeGranularity
	var v uint8
	switch {
	case level == 0:
		v = 0xff
	case level >= shadeSteps:
		v = shadeFloor
	default:
		v = uint8(0xee - 0x11*(level-1))
	}
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}
