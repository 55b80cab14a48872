// Package trajectory provides smooth time-parameterized curves built from
// discrete samples: cubic Hermite interpolants over value/derivative knots, and
// least-squares polynomial fits for signals whose derivatives are too noisy to
// difference directly.
package trajectory

import "sort"

// CubicHermiteSpline is a piecewise-cubic interpolant matching given values and
// derivatives at each knot. It is the output representation for swing and
// centroidal trajectories: queryable at any time within the covered interval.
type CubicHermiteSpline struct {
	times  []float64
	values [][]float64
	derivs [][]float64
	dim    int
}

// NewCubicHermiteSpline constructs a spline from parallel rows of sample
// times, values, and derivatives. Times must be strictly increasing and all
// rows must agree in count and width.
func NewCubicHermiteSpline(times []float64, values, derivatives [][]float64) (*CubicHermiteSpline, error) {
	if len(times) < 2 {
		return nil, errTooFewKnots
	}
	if len(values) != len(times) || len(derivatives) != len(times) {
		return nil, NewRowCountMismatchError(len(times), len(values), len(derivatives))
	}
	dim := len(values[0])
	for i := range times {
		if len(values[i]) != dim || len(derivatives[i]) != dim {
			return nil, NewRowWidthMismatchError(i, dim)
		}
		if i > 0 && times[i] <= times[i-1] {
			return nil, NewTimesNotIncreasingError(i, times[i])
		}
	}
	return &CubicHermiteSpline{times: times, values: values, derivs: derivatives, dim: dim}, nil
}

// Dimension returns the width of the interpolated vector.
func (s *CubicHermiteSpline) Dimension() int {
	return s.dim
}

// Times returns the knot times of the spline.
func (s *CubicHermiteSpline) Times() []float64 {
	return s.times
}

// StartTime returns the first covered instant.
func (s *CubicHermiteSpline) StartTime() float64 {
	return s.times[0]
}

// EndTime returns the last covered instant.
func (s *CubicHermiteSpline) EndTime() float64 {
	return s.times[len(s.times)-1]
}

// segment locates the knot interval containing t, returning the index of its
// left knot.
func (s *CubicHermiteSpline) segment(t float64) (int, error) {
	if t < s.StartTime() || t > s.EndTime() {
		return 0, NewTimeOutOfRangeError(t, s.StartTime(), s.EndTime())
	}
	// SearchFloat64s returns the insertion index, so the left knot is one less
	// except at the exact start.
	i := sort.SearchFloat64s(s.times, t)
	if i > 0 && (i == len(s.times) || s.times[i] != t) {
		i--
	}
	if i == len(s.times)-1 {
		i--
	}
	return i, nil
}

// Evaluate returns the interpolated value at time t. t must lie within
// [StartTime, EndTime].
func (s *CubicHermiteSpline) Evaluate(t float64) ([]float64, error) {
	i, err := s.segment(t)
	if err != nil {
		return nil, err
	}
	h := s.times[i+1] - s.times[i]
	u := (t - s.times[i]) / h
	h00 := (2*u-3)*u*u + 1
	h10 := ((u-2)*u + 1) * u
	h01 := (3 - 2*u) * u * u
	h11 := (u - 1) * u * u

	out := make([]float64, s.dim)
	for j := 0; j < s.dim; j++ {
		out[j] = h00*s.values[i][j] + h10*h*s.derivs[i][j] + h01*s.values[i+1][j] + h11*h*s.derivs[i+1][j]
	}
	return out, nil
}

// EvaluateDerivative returns the time derivative of the interpolant at time t.
func (s *CubicHermiteSpline) EvaluateDerivative(t float64) ([]float64, error) {
	i, err := s.segment(t)
	if err != nil {
		return nil, err
	}
	h := s.times[i+1] - s.times[i]
	u := (t - s.times[i]) / h
	d00 := (6*u - 6) * u / h
	d10 := (3*u-4)*u + 1
	d01 := (6 - 6*u) * u / h
	d11 := (3*u - 2) * u

	out := make([]float64, s.dim)
	for j := 0; j < s.dim; j++ {
		out[j] = d00*s.values[i][j] + d10*s.derivs[i][j] + d01*s.values[i+1][j] + d11*s.derivs[i+1][j]
	}
	return out, nil
}
