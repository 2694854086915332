package utils

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// HorizontalLine draws a horizontal line onto an image
func HorizontalLine(img *image.RGBA, xStart int, xEnd int, y int, c color.Color) {
	for i := xStart; i <= xEnd; i++ {
		img.Set(i, y, c)
	}
}

// VerticalLine draws a vertical line onto an image
func VerticalLine(img *image.RGBA, yStart int, yEnd int, x int, c color.Color) {
	for i := yStart; i <= yEnd; i++ {
		img.Set(x, i, c)
	}
}

// Line draws an arbitrary line between two points onto an image
func Line(img *image.RGBA, xStart int, yStart int, xEnd int, yEnd int, c color.Color) {
	deltaX := AbsDiff(xStart, xEnd)
	deltaY := -AbsDiff(yStart, yEnd)

	stepX := 1
	if xStart > xEnd {
		stepX = -1
	}
	stepY := 1
	if yStart > yEnd {
		stepY = -1
	}

	// Bresenham with integer error accumulation
	err := deltaX + deltaY
	x := xStart
	y := yStart
	for {
		img.Set(x, y, c)
		if x == xEnd && y == yEnd {
			break
		}
		doubleErr := 2 * err
		if doubleErr >= deltaY {
			err += deltaY
			x += stepX
		}
		if doubleErr <= deltaX {
			err += deltaX
			y += stepY
		}
	}
}

// Scale scales a given image to the desired dimensions
func Scale(img *image.RGBA, bounds image.Rectangle, interpolator draw.Interpolator) image.Image {
	originalBounds := img.Bounds()
	scaledImage := image.NewRGBA(bounds)

	interpolator.Scale(scaledImage, scaledImage.Bounds(), img, originalBounds, draw.Over, nil)
	return scaledImage
}
