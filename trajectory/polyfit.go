package trajectory

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PolySet is a set of polynomials in one variable, one per fitted column,
// sharing a common degree. Evaluating the set returns one value per column.
type PolySet struct {
	// coeffs is (degree+1) x nCols; row k holds the coefficients of t^k.
	coeffs *mat.Dense
	degree int
}

// PolyFit fits a polynomial of the given degree to each column of values over
// the sample times by least squares. The effective rank of the fit is limited
// to singular values above tol relative to the largest, so a degenerate
// segment (too few distinct times, constant signal) degrades to a lower-order
// fit instead of failing.
func PolyFit(times []float64, values *mat.Dense, degree int, tol float64) (*PolySet, error) {
	rows, cols := values.Dims()
	if len(times) != rows {
		return nil, fmt.Errorf("number of times %d does not match number of value rows %d", len(times), rows)
	}
	if degree < 0 {
		return nil, fmt.Errorf("cannot fit a polynomial of negative degree %d", degree)
	}
	if rows == 0 {
		return nil, fmt.Errorf("cannot fit a polynomial to zero samples")
	}

	// Vandermonde matrix, lowest order first.
	vand := mat.NewDense(rows, degree+1, nil)
	for i, t := range times {
		p := 1.0
		for k := 0; k <= degree; k++ {
			vand.Set(i, k, p)
			p *= t
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(vand, mat.SVDThin); !ok {
		return nil, fmt.Errorf("polynomial fit of degree %d failed to factorize", degree)
	}
	sv := svd.Values(nil)
	rank := 0
	for _, s := range sv {
		if s > tol*sv[0] {
			rank++
		}
	}
	if rank == 0 {
		return nil, fmt.Errorf("polynomial fit of degree %d is rank deficient below tolerance %g", degree, tol)
	}

	coeffs := mat.NewDense(degree+1, cols, nil)
	svd.SolveTo(coeffs, values, rank)
	return &PolySet{coeffs: coeffs, degree: degree}, nil
}

// Len returns the number of fitted columns.
func (p *PolySet) Len() int {
	_, cols := p.coeffs.Dims()
	return cols
}

// Degree returns the degree of the fitted polynomials.
func (p *PolySet) Degree() int {
	return p.degree
}

// Eval evaluates every fitted polynomial at time t.
func (p *PolySet) Eval(t float64) []float64 {
	out := make([]float64, p.Len())
	pow := 1.0
	for k := 0; k <= p.degree; k++ {
		for j := range out {
			out[j] += p.coeffs.At(k, j) * pow
		}
		pow *= t
	}
	return out
}

// EvalDerivative evaluates the analytic time derivative of every fitted
// polynomial at time t.
func (p *PolySet) EvalDerivative(t float64) []float64 {
	out := make([]float64, p.Len())
	pow := 1.0
	for k := 1; k <= p.degree; k++ {
		for j := range out {
			out[j] += float64(k) * p.coeffs.At(k, j) * pow
		}
		pow *= t
	}
	return out
}
