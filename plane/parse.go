package plane

import (
	"strconv"
	"strings"
)

// Parse creates a point from its textual arguments.
//
// Either every argument is a bare number, read positionally as (x, y), or
// every argument is a "label=value" pair accepted by NewLabeled, e.g.
// "radius=5" "degrees=90".
func Parse(args ...string) (*Point, error) {
	if len(args) == 0 {
		return nil, newMissingArgumentsError()
	}

	// counts the labeled arguments, they cannot be mixed with positional ones
	var labeled int
	for _, arg := range args {
		if strings.Contains(arg, "=") {
			labeled++
		}
	}

	switch labeled {
	case 0:
		values, err := parseValues(args)
		if err != nil {
			return nil, err
		}
		return New(values...)
	case len(args):
		values := make(map[string]float64, len(args))
		for _, arg := range args {
			label, data, _ := strings.Cut(arg, "=")
			label = strings.ToLower(strings.TrimSpace(label))
			if _, ok := values[label]; ok {
				return nil, newInvalidArgumentError(reasonMismatch, args...)
			}

			value, err := parseValue(data)
			if err != nil {
				return nil, err
			}
			values[label] = value
		}
		return NewLabeled(values)
	}

	return nil, newInvalidArgumentError(reasonMixedFormat, args...)
}

// ParsePair parses exactly two positional numbers. Labeled arguments are
// rejected, the caller decides which coordinate system the pair belongs to.
func ParsePair(args ...string) (a, b float64, err error) {
	switch len(args) {
	case 0:
		return 0, 0, newMissingArgumentsError()
	case 2:
	default:
		return 0, 0, newInvalidArgumentError(reasonMismatch, args...)
	}
	for _, arg := range args {
		if strings.Contains(arg, "=") {
			return 0, 0, newInvalidArgumentError(reasonMismatch, args...)
		}
	}

	values, err := parseValues(args)
	if err != nil {
		return 0, 0, err
	}
	if err := checkFinite(values...); err != nil {
		return 0, 0, err
	}

	return values[0], values[1], nil
}

// parseValues parses every given value
func parseValues(data []string) ([]float64, error) {
	values := make([]float64, len(data))
	for i, d := range data {
		value, err := parseValue(d)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}

	return values, nil
}

// parseValue parses a single numeric value
func parseValue(data string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(data), 64)
	if err != nil {
		return 0, newInvalidArgumentError(reasonNotNumeric, data)
	}

	return value, nil
}
