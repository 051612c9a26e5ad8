package radarview

import (
	"log/slog"
	"math"
)

// State is the interaction state of a Controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Controller turns a single pointer's down/move/up sequence into value
// changes on a Chart.
//
// A drag changes the selected axis incrementally: each move adds the
// change in projected distance along the axis since the previous sample,
// signed by whether the pointer moved away from or toward the center.
// Leaving the axis wedge and coming back therefore never snaps the value.
type Controller struct {
	chart    *Chart
	redraw   func()
	selected int
	last     Point
}

// NewController returns an idle controller for c. requestRedraw, if not
// nil, is called after every value change.
func NewController(c *Chart, requestRedraw func()) *Controller {
	return &Controller{
		chart:    c,
		redraw:   requestRedraw,
		selected: NoAxis,
	}
}

// State reports whether a drag is in progress.
func (ct *Controller) State() State {
	if ct.selected == NoAxis {
		return Idle
	}
	return Dragging
}

// Selected returns the axis being dragged, or NoAxis.
func (ct *Controller) Selected() int {
	return ct.selected
}

// PointerDown starts a gesture at p and selects the axis whose angular
// window contains p. The event is always consumed, even when no axis
// matches or p is not finite; the controller then stays idle.
func (ct *Controller) PointerDown(p Point) bool {
	ct.selected = NoAxis
	if !p.Finite() {
		Logger().Warn("radarview: pointer down at non-finite position",
			slog.Float64("x", p.X), slog.Float64("y", p.Y))
		return true
	}

	angle := AngleOf(p, ct.chart.Center())
	axis := AxisIndexFor(angle, ct.chart.AxisCount())
	if axis == NoAxis {
		Logger().Warn("radarview: pointer down matched no axis",
			slog.Float64("x", p.X), slog.Float64("y", p.Y))
		return true
	}

	ct.selected = axis
	ct.last = p
	Logger().Debug("radarview: axis selected",
		slog.Int("axis", axis),
		slog.Float64("angle_deg", angle*180/math.Pi))
	return true
}

// PointerMove advances an active drag to p. It returns false, doing
// nothing, when no axis is selected. A non-finite p is consumed but
// ignored; the drag continues from the previous sample.
func (ct *Controller) PointerMove(p Point) bool {
	if ct.selected == NoAxis {
		return false
	}
	if !p.Finite() {
		Logger().Warn("radarview: pointer move at non-finite position dropped",
			slog.Int("axis", ct.selected))
		return true
	}

	c := ct.chart
	center := c.Center()
	radius := c.Radius()
	i := ct.selected

	if radius > 0 {
		sign := float64(RadialGrowth(p, ct.last, center))
		n := c.AxisCount()
		delta := math.Abs(AxisProjection(p, center, i, n)-AxisProjection(ct.last, center, i, n)) * sign

		v := c.SetValue(i, c.Value(i)+delta/radius)
		Logger().Debug("radarview: value changed",
			slog.Int("axis", i),
			slog.Float64("delta", delta),
			slog.Float64("value", v))
		if ct.redraw != nil {
			ct.redraw()
		}
	}

	ct.last = p
	return true
}

// PointerUp ends any active drag.
func (ct *Controller) PointerUp() {
	ct.selected = NoAxis
}
