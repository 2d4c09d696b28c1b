package texture

import (
	"image"
	"image/color"
)

// Checker generates a size×size checkerboard with square cells of cell pixels.
func Checker(size, cell int, a, b color.RGBA) *image.RGBA {
	if cell <= 0 {
		cell = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
