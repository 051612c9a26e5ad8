package radarview

import "math"

// Chart is the radar chart model: axis labels, the current normalized
// values and the layout resolved for the drawing surface. Values are
// clamped to [0, 1] on every mutation.
//
// A Chart is not safe for concurrent use.
type Chart struct {
	labels []string
	values []float64
	center Point
	radius float64
}

// Validate checks the configuration and returns a *ConfigurationError
// describing the first problem found.
func (c Config) Validate() error {
	n := c.axisCount()
	if n < 3 {
		return &ConfigurationError{Field: "axisCount", Index: -1, Err: ErrAxisCount}
	}
	if len(c.Labels) != n {
		return &ConfigurationError{Field: "labels", Index: -1, Err: ErrLabelCount}
	}
	if len(c.Values) != n {
		return &ConfigurationError{Field: "values", Index: -1, Err: ErrValueCount}
	}
	for i, v := range c.Values {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return &ConfigurationError{Field: "values", Index: i, Err: ErrValueRange}
		}
	}
	return nil
}

// NewChart creates a chart from cfg. The chart starts with a zero-size
// layout; call Resize once the drawing surface size is known.
func NewChart(cfg Config) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Chart{
		labels: make([]string, len(cfg.Labels)),
		values: make([]float64, len(cfg.Values)),
	}
	copy(c.labels, cfg.Labels)
	copy(c.values, cfg.Values)
	return c, nil
}

// AxisCount returns the number of axes.
func (c *Chart) AxisCount() int {
	return len(c.values)
}

// AxisAngle returns the direction of axis i.
func (c *Chart) AxisAngle(i int) float64 {
	return AxisAngle(i, len(c.values))
}

// Label returns the title of axis i.
func (c *Chart) Label(i int) string {
	return c.labels[i]
}

// Labels returns a copy of the axis titles.
func (c *Chart) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Value returns the current value of axis i.
func (c *Chart) Value(i int) float64 {
	return c.values[i]
}

// Values returns a copy of the current values.
func (c *Chart) Values() []float64 {
	out := make([]float64, len(c.values))
	copy(out, c.values)
	return out
}

// SetValue stores v, clamped to [0, 1], as the value of axis i and returns
// the stored value. Out-of-range axes are ignored and report 0.
func (c *Chart) SetValue(i int, v float64) float64 {
	if i < 0 || i >= len(c.values) {
		return 0
	}
	c.values[i] = ClampValue(v)
	return c.values[i]
}

// Center returns the chart center in surface pixels.
func (c *Chart) Center() Point {
	return c.center
}

// Radius returns the pixel length of every axis.
func (c *Chart) Radius() float64 {
	return c.radius
}

// Resize recomputes center and radius for a drawing surface of the given
// size. See ResolveLayout.
func (c *Chart) Resize(width, height float64) {
	c.center, c.radius = ResolveLayout(width, height)
}

// Config returns a configuration that recreates the chart's current state.
func (c *Chart) Config() Config {
	return Config{
		AxisCount: len(c.values),
		Labels:    c.Labels(),
		Values:    c.Values(),
	}
}
