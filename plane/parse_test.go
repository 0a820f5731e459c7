package plane

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		x, y float64
	}{
		{"positional", []string{"3", "4"}, 3, 4},
		{"positional with spaces", []string{" 3.5", "-4 "}, 3.5, -4},
		{"labeled cartesian", []string{"y=4", "x=3"}, 3, 4},
		{"labeled radians", []string{"radius=5", "theta=0"}, 5, 0},
		{"labeled degrees", []string{"radius=5", "degrees=90"}, 0, 5},
		{"labels are case insensitive", []string{"Radius=2", "DEGREES=180"}, -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.args...)
			require.NoError(t, err)
			assert.InDelta(t, tt.x, p.X(), tolerance)
			assert.InDelta(t, tt.y, p.Y(), tolerance)
		})
	}
}

func TestParse_errors(t *testing.T) {
	_, err := Parse()
	var missing MissingArgumentsError
	assert.True(t, errors.As(err, &missing))

	tests := []struct {
		name   string
		args   []string
		reason string
	}{
		{"one value", []string{"1"}, reasonMismatch},
		{"three values", []string{"1", "2", "3"}, reasonMismatch},
		{"not numeric", []string{"1", "two"}, reasonNotNumeric},
		{"labeled not numeric", []string{"x=1", "y=two"}, reasonNotNumeric},
		{"mixed", []string{"1", "y=2"}, reasonMixedFormat},
		{"duplicate label", []string{"x=1", "x=2"}, reasonMismatch},
		{"unknown label", []string{"x=1", "z=2"}, reasonMismatch},
		{"negative radius", []string{"radius=-1", "theta=0"}, reasonNegative},
		{"not finite", []string{"NaN", "1"}, reasonNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.args...)
			assert.Nil(t, p)

			var invalid InvalidArgumentError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Equal(t, tt.reason, invalid.Reason)
		})
	}
}

func TestInvalidArgumentError(t *testing.T) {
	_, err := Parse("1", "two")
	assert.EqualError(t, err, "invalid argument: not all values given are numeric: two")

	_, err = New(1, 2, 3)
	assert.EqualError(t, err, "invalid argument: argument mismatch: 1 2 3")

	_, err = NewLabeled(map[string]float64{"x": 1, "radius": 2})
	assert.EqualError(t, err, "invalid argument: argument mismatch: radius x")
}

func TestParsePair(t *testing.T) {
	a, b, err := ParsePair("-1.5", " 2")
	require.NoError(t, err)
	assert.Equal(t, -1.5, a)
	assert.Equal(t, 2.0, b)

	_, _, err = ParsePair()
	var missing MissingArgumentsError
	assert.True(t, errors.As(err, &missing))

	tests := []struct {
		name   string
		args   []string
		reason string
	}{
		{"one value", []string{"1"}, reasonMismatch},
		{"three values", []string{"1", "2", "3"}, reasonMismatch},
		{"labeled", []string{"x=3", "y=4"}, reasonMismatch},
		{"partly labeled", []string{"3", "theta=4"}, reasonMismatch},
		{"not numeric", []string{"1", "two"}, reasonNotNumeric},
		{"not finite", []string{"1", "+Inf"}, reasonNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParsePair(tt.args...)

			var invalid InvalidArgumentError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Equal(t, tt.reason, invalid.Reason)
		})
	}
}
