package plane

import (
	"math"
	"strconv"
)

// PolarToCartesian converts a radius and an angle in radians into x and y.
// The radius must not be negative; any theta is accepted.
func PolarToCartesian(radius, theta float64) (x, y float64, err error) {
	if radius < 0 {
		return 0, 0, newInvalidArgumentError(reasonNegative, strconv.FormatFloat(radius, 'g', -1, 64))
	}

	return radius * math.Cos(theta), radius * math.Sin(theta), nil
}

// CartesianToPolar returns the radius and the angle θ (radians, measured from
// the positive x-axis) of the given point. The origin yields θ = 0.
func CartesianToPolar(x, y float64) (radius, theta float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}

func DegreesToRadians(degrees float64) float64 {
	return degrees / 180 * math.Pi
}

func RadiansToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}
