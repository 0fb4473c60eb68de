package thermo

// MillilitersToCubicMeters converts a volume in mL to m³.
func MillilitersToCubicMeters(ml float64) float64 {
	return ml / 1_000_000
}

// Interpolate evaluates the line through (x0, y0) and (x1, y1) at x.
// Values outside [x0, x1] are extrapolated.
func Interpolate(x, x0, x1, y0, y1 float64) float64 {
	return y0 + (x-x0)*((y1-y0)/(x1-x0))
}

// InterpolateClamped is Interpolate with x clamped to the interval between x0 and x1.
func InterpolateClamped(x, x0, x1, y0, y1 float64) float64 {
	lo, hi := min(x0, x1), max(x0, x1)
	return Interpolate(max(lo, min(x, hi)), x0, x1, y0, y1)
}
