package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegRadConversion(t *testing.T) {
	test.That(t, DegToRad(0), test.ShouldEqual, 0)
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, DegToRad(-90), test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, RadToDeg(math.Pi), test.ShouldAlmostEqual, 180)
	test.That(t, RadToDeg(DegToRad(57.2958)), test.ShouldAlmostEqual, 57.2958)
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(0.5, -1, 1), test.ShouldEqual, 0.5)
	test.That(t, Clamp(-1.2, -1, 1), test.ShouldEqual, -1.)
	test.That(t, Clamp(7, -1, 1), test.ShouldEqual, 1.)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1.0000001, 1.0000002, 1e-6), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1, 1.1, 1e-6), test.ShouldBeFalse)
}
