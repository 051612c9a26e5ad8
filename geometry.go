package radarview

import "math"

const twoPi = 2 * math.Pi

// NoAxis is returned by hit-testing when no axis owns an angle.
const NoAxis = -1

// Point is a position in drawing-surface pixels. Y grows downward.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// LengthSquared returns the squared distance of p from the origin.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Length returns the distance of p from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// AxisAngle returns the direction of axis i in radians. Angles follow the
// screen convention: with Y pointing down, increasing angles turn
// clockwise as seen on screen, and axis 0 points right.
func AxisAngle(i, axisCount int) float64 {
	if axisCount <= 0 {
		return 0
	}
	return float64(i) * twoPi / float64(axisCount)
}

// AngleOf returns the angle of p as seen from center, in [0, 2π).
//
// Vertical displacements (dx == 0) are resolved explicitly: straight down
// is π/2, straight up is 3π/2 and p == center is 0. Non-finite results
// also fold to 0, so the function is total.
func AngleOf(p, center Point) float64 {
	dx := p.X - center.X
	dy := p.Y - center.Y
	if dx == 0 {
		switch {
		case dy > 0:
			return math.Pi / 2
		case dy < 0:
			return 3 * math.Pi / 2
		default:
			return 0
		}
	}
	return normalizeAngle(math.Atan2(dy, dx))
}

// normalizeAngle wraps a into [0, 2π).
func normalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// -ε + 2π rounds to 2π.
	if a >= twoPi {
		a = 0
	}
	return a
}

// AxisIndexFor returns the axis owning angle. Axis i owns the half-open
// window [AxisAngle(i) - π/n, AxisAngle(i) + π/n); the windows tile the
// circle once, with axis 0's window straddling the 0/2π seam. Angles
// outside [0, 2π) are wrapped first. NoAxis is returned for non-finite
// angles or a non-positive axis count.
func AxisIndexFor(angle float64, axisCount int) int {
	if axisCount <= 0 || math.IsNaN(angle) || math.IsInf(angle, 0) {
		return NoAxis
	}
	step := twoPi / float64(axisCount)
	i := int(math.Floor((normalizeAngle(angle) + step/2) / step))
	return i % axisCount
}

// AxisProjection returns how far p lies out along the given axis, measured
// as |p - center| * cos(angle deviation) with the sign discarded. Drag
// direction comes from RadialGrowth instead.
//
// The measure is only meaningful near the axis: at large angular
// deviations it no longer tracks distance along the axis. Axis selection
// normally keeps the deviation within half the inter-axis spacing.
func AxisProjection(p, center Point, axis, axisCount int) float64 {
	r := p.Sub(center).Length()
	return math.Abs(r * math.Cos(AngleOf(p, center)-AxisAngle(axis, axisCount)))
}

// RadialGrowth reports +1 when p is strictly farther from center than prev
// and -1 otherwise.
func RadialGrowth(p, prev, center Point) int {
	if p.Sub(center).LengthSquared() > prev.Sub(center).LengthSquared() {
		return 1
	}
	return -1
}

// ClampValue clamps v to [0, 1]. NaN clamps to 0.
func ClampValue(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// PolarPoint returns the point at the given distance and angle from center.
func PolarPoint(center Point, distance, angle float64) Point {
	return Point{
		X: center.X + distance*math.Cos(angle),
		Y: center.Y + distance*math.Sin(angle),
	}
}
