package radarview

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestAngleOfCardinal(t *testing.T) {
	c := Pt(50, 50)
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"center", Pt(50, 50), 0},
		{"right", Pt(80, 50), 0},
		{"down", Pt(50, 80), math.Pi / 2},
		{"left", Pt(20, 50), math.Pi},
		{"up", Pt(50, 20), 3 * math.Pi / 2},
		{"down-right", Pt(60, 60), math.Pi / 4},
		{"down-left", Pt(40, 60), 3 * math.Pi / 4},
		{"up-left", Pt(40, 40), 5 * math.Pi / 4},
		{"up-right", Pt(60, 40), 7 * math.Pi / 4},
	}
	for _, tt := range tests {
		if got := AngleOf(tt.p, c); math.Abs(got-tt.want) > eps {
			t.Errorf("%s: AngleOf(%v) = %.6f, want %.6f", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestAngleOfIsTotal(t *testing.T) {
	centers := []Point{Pt(0, 0), Pt(100, 150), Pt(-3.5, 7)}
	offsets := []float64{0, 1e-300, -1e-300, 1e-9, -1e-9, 1, -1, 1e9, -1e9}
	for _, c := range centers {
		for _, dx := range offsets {
			for _, dy := range offsets {
				p := Pt(c.X+dx, c.Y+dy)
				a := AngleOf(p, c)
				if math.IsNaN(a) || a < 0 || a >= twoPi {
					t.Fatalf("AngleOf(%v, %v) = %v, outside [0, 2π)", p, c, a)
				}
			}
		}
	}
}

func TestAngleOfJustBelowSeam(t *testing.T) {
	// A point a hair above the positive x axis must not round up to 2π.
	a := AngleOf(Pt(1, -1e-17), Pt(0, 0))
	if a < 0 || a >= twoPi {
		t.Fatalf("AngleOf just below seam = %v, outside [0, 2π)", a)
	}
}

func TestAxisIndexForOwnAngle(t *testing.T) {
	for n := 3; n <= 24; n++ {
		for i := 0; i < n; i++ {
			if got := AxisIndexFor(AxisAngle(i, n), n); got != i {
				t.Errorf("n=%d: AxisIndexFor(AxisAngle(%d)) = %d", n, i, got)
			}
		}
	}
}

func TestAxisIndexForWraparound(t *testing.T) {
	if got := AxisIndexFor(2*math.Pi-0.01, 6); got != 0 {
		t.Fatalf("angle 2π-0.01 with 6 axes: got axis %d, want 0", got)
	}
	if got := AxisIndexFor(-0.01, 6); got != 0 {
		t.Fatalf("angle -0.01 with 6 axes: got axis %d, want 0", got)
	}
	// Window edges are half-open: the lower edge belongs to the axis.
	if got := AxisIndexFor(math.Pi/6, 6); got != 1 {
		t.Errorf("angle π/6 with 6 axes: got axis %d, want 1", got)
	}
	if got := AxisIndexFor(math.Pi/6-1e-9, 6); got != 0 {
		t.Errorf("angle just below π/6 with 6 axes: got axis %d, want 0", got)
	}
}

func TestAxisIndexForPartition(t *testing.T) {
	const samples = 3600
	for n := 3; n <= 12; n++ {
		half := math.Pi / float64(n)
		counts := make([]int, n)
		for k := 0; k < samples; k++ {
			angle := twoPi * float64(k) / samples
			i := AxisIndexFor(angle, n)
			if i < 0 || i >= n {
				t.Fatalf("n=%d: angle %.5f mapped to %d", n, angle, i)
			}
			// Angular distance to the owning axis stays within the window.
			d := math.Abs(math.Remainder(angle-AxisAngle(i, n), twoPi))
			if d > half+eps {
				t.Fatalf("n=%d: angle %.5f owned by axis %d at distance %.5f > %.5f", n, angle, i, d, half)
			}
			counts[i]++
		}
		for i, c := range counts {
			if c == 0 {
				t.Errorf("n=%d: axis %d owns no sampled angle", n, i)
			}
		}
	}
}

func TestAxisIndexForInvalid(t *testing.T) {
	if got := AxisIndexFor(math.NaN(), 6); got != NoAxis {
		t.Errorf("NaN angle: got %d, want NoAxis", got)
	}
	if got := AxisIndexFor(math.Inf(1), 6); got != NoAxis {
		t.Errorf("+Inf angle: got %d, want NoAxis", got)
	}
	if got := AxisIndexFor(1, 0); got != NoAxis {
		t.Errorf("zero axes: got %d, want NoAxis", got)
	}
}

func TestAxisProjection(t *testing.T) {
	c := Pt(0, 0)
	tests := []struct {
		p    Point
		axis int
		want float64
	}{
		{Pt(100, 0), 0, 100},
		{Pt(150, 0), 0, 150},
		{Pt(100, 30), 0, 100},
		{Pt(-40, 0), 0, 40}, // sign discarded
		{Pt(0, 100), 0, 0},
		{Pt(50, 50*math.Sqrt(3)), 1, 100}, // 6 axes: axis 1 at 60°
	}
	for _, tt := range tests {
		got := AxisProjection(tt.p, c, tt.axis, 6)
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("AxisProjection(%v, axis %d) = %.6f, want %.6f", tt.p, tt.axis, got, tt.want)
		}
	}
}

func TestRadialGrowth(t *testing.T) {
	c := Pt(10, 10)
	if got := RadialGrowth(Pt(30, 10), Pt(20, 10), c); got != 1 {
		t.Errorf("moving out: got %d, want 1", got)
	}
	if got := RadialGrowth(Pt(20, 10), Pt(30, 10), c); got != -1 {
		t.Errorf("moving in: got %d, want -1", got)
	}
	if got := RadialGrowth(Pt(10, 30), Pt(30, 10), c); got != -1 {
		t.Errorf("equal distance: got %d, want -1", got)
	}
}

func TestClampValue(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{7, 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := ClampValue(tt.in); got != tt.want {
			t.Errorf("ClampValue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPolarPoint(t *testing.T) {
	p := PolarPoint(Pt(100, 100), 50, math.Pi/2)
	if math.Abs(p.X-100) > eps || math.Abs(p.Y-150) > eps {
		t.Errorf("PolarPoint down = %v, want (100,150)", p)
	}
}

func TestPointFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(-1e300, 1e300), true},
		{Pt(math.NaN(), 0), false},
		{Pt(0, math.NaN()), false},
		{Pt(math.Inf(1), 0), false},
		{Pt(0, math.Inf(-1)), false},
	}
	for _, tt := range tests {
		if got := tt.p.Finite(); got != tt.want {
			t.Errorf("%v.Finite() = %v, want %v", tt.p, got, tt.want)
		}
	}
}
