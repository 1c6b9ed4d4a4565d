package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distributions provides unified access to the distribution functions the
// tests need. Keeping the CDF and quantile calls in one place stops ad hoc
// approximations from creeping into individual tests.
type Distributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *Distributions {
	return &Distributions{}
}

// NormalCDF computes the cumulative distribution function of the standard normal
func (d *Distributions) NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormalQuantile computes the quantile function of the standard normal (inverse CDF)
func (d *Distributions) NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// ZCritical returns the two-sided critical value for significance level alpha
func (d *Distributions) ZCritical(alpha float64) float64 {
	return distuv.UnitNormal.Quantile(1 - alpha/2)
}

// ZTestPValue computes the two-sided p-value for a z-statistic
func (d *Distributions) ZTestPValue(z float64) float64 {
	return 2 * (1 - distuv.UnitNormal.CDF(math.Abs(z)))
}

// TTestPValue computes the two-sided p-value for a t-statistic at df degrees
// of freedom
func (d *Distributions) TTestPValue(t, df float64) float64 {
	if df <= 0 {
		return 1.0
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * (1 - tDist.CDF(math.Abs(t)))
}

// TCritical returns the two-sided critical value of Student's t at df degrees
// of freedom for significance level alpha
func (d *Distributions) TCritical(alpha, df float64) float64 {
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return tDist.Quantile(1 - alpha/2)
}
