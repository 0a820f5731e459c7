package plane

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/mindera-gaming/go-math/vector2"
)

// DisplayMode selects how a Point is rendered as text.
// It never affects the stored coordinates.
type DisplayMode int

const (
	CartesianMode DisplayMode = iota
	PolarMode
)

func (m DisplayMode) String() string {
	switch m {
	case CartesianMode:
		return "cartesian"
	case PolarMode:
		return "polar"
	}
	return "DisplayMode(" + strconv.Itoa(int(m)) + ")"
}

// Point is a mutable point in the plane. It is always stored in Cartesian
// form; the polar view is derived on every access.
//
// A Point is not safe for concurrent mutation.
type Point struct {
	x, y float64
	mode DisplayMode
}

// FromCartesian creates a point from its x and y coordinates.
func FromCartesian(x, y float64) *Point {
	return &Point{x: x, y: y}
}

// FromPolar creates a point from a radius and an angle in radians.
func FromPolar(radius, theta float64) (*Point, error) {
	if err := checkFinite(radius, theta); err != nil {
		return nil, err
	}

	x, y, err := PolarToCartesian(radius, theta)
	if err != nil {
		return nil, err
	}

	return &Point{x: x, y: y}, nil
}

// FromPolarDegrees creates a point from a radius and an angle in degrees.
func FromPolarDegrees(radius, degrees float64) (*Point, error) {
	if err := checkFinite(radius, degrees); err != nil {
		return nil, err
	}

	return FromPolar(radius, DegreesToRadians(degrees))
}

// FromVector2 creates a point from a go-math vector.
func FromVector2(v vector2.Point) *Point {
	return FromCartesian(v.X, v.Y)
}

// New creates a point from exactly two positional values, read as (x, y).
func New(values ...float64) (*Point, error) {
	switch len(values) {
	case 0:
		return nil, newMissingArgumentsError()
	case 2:
	default:
		return nil, newInvalidArgumentError(reasonMismatch, formatValues(values)...)
	}

	if err := checkFinite(values...); err != nil {
		return nil, err
	}

	return FromCartesian(values[0], values[1]), nil
}

// NewLabeled creates a point from exactly two labeled values. The recognised
// label pairs are {x, y}, {radius, theta} and {radius, degrees}.
func NewLabeled(values map[string]float64) (*Point, error) {
	if len(values) == 0 {
		return nil, newMissingArgumentsError()
	}
	if len(values) != 2 {
		return nil, newInvalidArgumentError(reasonMismatch, labels(values)...)
	}

	if x, ok := values["x"]; ok {
		if y, ok := values["y"]; ok {
			if err := checkFinite(x, y); err != nil {
				return nil, err
			}
			return FromCartesian(x, y), nil
		}
	}
	if radius, ok := values["radius"]; ok {
		if theta, ok := values["theta"]; ok {
			return FromPolar(radius, theta)
		}
		if degrees, ok := values["degrees"]; ok {
			return FromPolarDegrees(radius, degrees)
		}
	}

	return nil, newInvalidArgumentError(reasonMismatch, labels(values)...)
}

func (p *Point) X() float64 {
	return p.x
}

// SetX stores x as given.
func (p *Point) SetX(x float64) {
	p.x = x
}

func (p *Point) Y() float64 {
	return p.y
}

// SetY stores y as given.
func (p *Point) SetY(y float64) {
	p.y = y
}

// Radius returns the distance from the origin.
func (p *Point) Radius() float64 {
	radius, _ := CartesianToPolar(p.x, p.y)
	return radius
}

// Theta returns the angle in radians, in (-π, π].
func (p *Point) Theta() float64 {
	_, theta := CartesianToPolar(p.x, p.y)
	return theta
}

// AdjustRadiusBy adds delta to the current radius, keeping the angle.
// If the resulting radius would be negative the point is left untouched and
// an InvalidArgumentError is returned. The same holds for a non-finite delta
// or result.
func (p *Point) AdjustRadiusBy(delta float64) error {
	if err := checkFinite(delta); err != nil {
		return err
	}

	radius, theta := CartesianToPolar(p.x, p.y)
	if err := checkFinite(radius + delta); err != nil {
		return err
	}
	x, y, err := PolarToCartesian(radius+delta, theta)
	if err != nil {
		return err
	}

	p.x, p.y = x, y
	return nil
}

// RotateBy adds delta radians to the current angle, keeping the radius.
// A non-finite delta leaves the point untouched and returns an
// InvalidArgumentError.
func (p *Point) RotateBy(delta float64) error {
	if err := checkFinite(delta); err != nil {
		return err
	}

	radius, theta := CartesianToPolar(p.x, p.y)
	// radius comes from hypot, never negative
	p.x, p.y, _ = PolarToCartesian(radius, theta+delta)
	return nil
}

// Invert swaps x and y in place.
func (p *Point) Invert() *Point {
	p.x, p.y = p.y, p.x
	return p
}

func (p *Point) DisplayMode() DisplayMode {
	return p.mode
}

func (p *Point) SetDisplayMode(mode DisplayMode) *Point {
	p.mode = mode
	return p
}

// Polar switches rendering to the polar form.
func (p *Point) Polar() *Point {
	return p.SetDisplayMode(PolarMode)
}

// Cartesian switches rendering to the Cartesian form.
func (p *Point) Cartesian() *Point {
	return p.SetDisplayMode(CartesianMode)
}

// Equal reports whether both points hold the same coordinates.
// The display mode is ignored. A nil point is never equal to anything.
func (p *Point) Equal(other *Point) bool {
	if p == nil || other == nil {
		return false
	}
	return p.X() == other.X() && p.Y() == other.Y()
}

// Vector2 returns the point as a go-math vector.
func (p *Point) Vector2() vector2.Point {
	return vector2.Point{X: p.x, Y: p.y}
}

func (p *Point) String() string {
	return p.Format(p.mode)
}

// Format renders the point in the given mode regardless of its own display
// mode.
func (p *Point) Format(mode DisplayMode) string {
	if mode == PolarMode {
		return fmt.Sprintf("(radius=%f, theta=%f)", p.Radius(), p.Theta())
	}
	return fmt.Sprintf("(%f, %f)", p.x, p.y)
}

func checkFinite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newInvalidArgumentError(reasonNotFinite, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return nil
}

func formatValues(values []float64) []string {
	data := make([]string, len(values))
	for i, v := range values {
		data[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return data
}

func labels(values map[string]float64) []string {
	data := make([]string, 0, len(values))
	for k := range values {
		data = append(data, k)
	}
	sort.Strings(data)
	return data
}
