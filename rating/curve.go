package rating

// Breakpoint is one (threshold, multiplier) pair on a BreakpointCurve.
type Breakpoint struct {
	Threshold  float64
	Multiplier float64
}

// BreakpointCurve is a piecewise-linear lookup over breakpoints ordered by
// descending threshold. Queries at or above the first threshold return the
// first multiplier, queries below the last threshold return the last
// multiplier, and queries in between interpolate linearly inside their band.
// The same shape serves both penalty curves (counter-strafe) and bonus
// curves (KAST).
type BreakpointCurve struct {
	points []Breakpoint
}

// NewBreakpointCurve builds a curve from breakpoints ordered by descending
// threshold. The ordering is the caller's responsibility.
func NewBreakpointCurve(points []Breakpoint) *BreakpointCurve {
	c := &BreakpointCurve{points: make([]Breakpoint, len(points))}
	copy(c.points, points)
	return c
}

// Eval returns the interpolated multiplier for v. An empty curve returns 0.
func (c *BreakpointCurve) Eval(v float64) float64 {
	if len(c.points) == 0 {
		return 0
	}
	if v >= c.points[0].Threshold {
		return c.points[0].Multiplier
	}
	last := c.points[len(c.points)-1]
	if v < last.Threshold {
		return last.Multiplier
	}
	for i := 0; i < len(c.points)-1; i++ {
		upper := c.points[i]
		lower := c.points[i+1]
		if lower.Threshold <= v && v < upper.Threshold {
			ratio := (v - lower.Threshold) / (upper.Threshold - lower.Threshold)
			return lower.Multiplier + ratio*(upper.Multiplier-lower.Multiplier)
		}
	}
	return last.Multiplier
}
