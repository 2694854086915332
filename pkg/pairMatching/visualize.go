package pairMatching

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	drawX "golang.org/x/image/draw"

	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/utils"
)

// interpolators holds the different interpolating algorithms that can be used for scaling the pair plot
var interpolators = map[string]drawX.Interpolator{
	"NearestNeighbor": drawX.NearestNeighbor,
	"ApproxBiLinear":  drawX.ApproxBiLinear,
	"BiLinear":        drawX.BiLinear,
	"CatmullRom":      drawX.CatmullRom,
}

const (
	// Dimensions of the unscaled pair plot
	plotWidth  = 512
	plotHeight = 128
	// Space between the plot content and the image edges
	plotMargin = 16
	// Length of a value tick
	tickLength = 4
)

// Visualize draws both value sequences as ticks on two horizontal number lines, connects all
// confirmed pairings and scales the plot to the configured dimensions
func (m *Matching) Visualize() (image.Image, error) {
	interpolator, err := getInterpolator(m.config.VisualizationConfig.Interpolator)
	if err != nil {
		return nil, err
	}

	width := m.config.VisualizationConfig.Width
	height := m.config.VisualizationConfig.Height
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pair plot dimensions must be positive (width: %d, height: %d)", width, height)
	}

	plot := image.NewRGBA(image.Rect(0, 0, plotWidth, plotHeight))
	draw.Draw(plot, plot.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	applicantAxisY := plotMargin
	apartmentAxisY := plotHeight - plotMargin

	// Number lines for both sequences
	utils.HorizontalLine(plot, plotMargin, plotWidth-plotMargin, applicantAxisY, color.Black)
	utils.HorizontalLine(plot, plotMargin, plotWidth-plotMargin, apartmentAxisY, color.Black)

	// Pairing edges first, so that ticks stay visible on top of them
	for _, pair := range m.pairs {
		utils.Line(plot,
			m.plotX(pair.Applicant), applicantAxisY,
			m.plotX(pair.Apartment), apartmentAxisY,
			color.RGBA{R: 255, A: 255})
	}

	for _, applicant := range m.applicants {
		x := m.plotX(applicant)
		utils.VerticalLine(plot, applicantAxisY-tickLength, applicantAxisY+tickLength, x, color.Black)
	}
	for _, apartment := range m.apartments {
		x := m.plotX(apartment)
		utils.VerticalLine(plot, apartmentAxisY-tickLength, apartmentAxisY+tickLength, x, color.Black)
	}

	return utils.Scale(plot, image.Rect(0, 0, width, height), interpolator), nil
}

// plotX maps a sequence value onto the x axis of the unscaled pair plot
func (m *Matching) plotX(value int) int {
	minValue, maxValue := m.valueRange()

	// Center single-valued plots instead of dividing by a zero span
	if maxValue == minValue {
		return plotWidth / 2
	}

	span := maxValue - minValue
	return plotMargin + (value-minValue)*(plotWidth-2*plotMargin)/span
}

// valueRange returns the smallest and largest value over both sequences
func (m *Matching) valueRange() (int, int) {
	minValue := 0
	maxValue := 0
	first := true

	for _, sequence := range [][]int{m.applicants, m.apartments} {
		for _, value := range sequence {
			if first || value < minValue {
				minValue = value
			}
			if first || value > maxValue {
				maxValue = value
			}
			first = false
		}
	}

	return minValue, maxValue
}

// getInterpolator returns the correct interpolation algorithm for an interpolatorId from interpolators
func getInterpolator(interpolatorId string) (drawX.Interpolator, error) {
	interpolator, ok := interpolators[interpolatorId]
	var err error
	if !ok {
		err = fmt.Errorf("interpolator id not found: %q", interpolatorId)
	}
	return interpolator, err
}
