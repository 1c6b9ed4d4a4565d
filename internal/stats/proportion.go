package stats

import (
	"fmt"
	"math"

	"goab/domain/analysis"
	"goab/domain/core"
	"goab/domain/experiment"
)

// AnalyzeProportions runs a two-proportion z-test between the control and
// test arms of a conversion experiment.
//
// The z-statistic uses the pooled standard error (the null hypothesis assumes
// equal rates); the confidence interval for the rate difference uses the
// unpooled standard error.
func AnalyzeProportions(control, test experiment.ProportionSample, alpha float64) (*analysis.Result, error) {
	if err := validateAlpha(alpha); err != nil {
		return nil, err
	}
	if err := control.Validate(); err != nil {
		return nil, core.NewInvalidInputError("control", err.Error())
	}
	if err := test.Validate(); err != nil {
		return nil, core.NewInvalidInputError("test", err.Error())
	}

	nc := float64(control.Visitors)
	nt := float64(test.Visitors)
	pc := control.Rate()
	pt := test.Rate()
	diff := pt - pc

	pooled := float64(control.Conversions+test.Conversions) / (nc + nt)
	sePooled := math.Sqrt(pooled * (1 - pooled) * (1/nc + 1/nt))
	if sePooled == 0 {
		// Every visitor converted, or none did: no variance for the null
		// hypothesis to work with.
		return nil, fmt.Errorf("%w: pooled conversion rate is %g", core.ErrZeroPooledVariance, pooled)
	}

	dist := NewDistributions()
	z := diff / sePooled
	pValue := dist.ZTestPValue(z)

	seUnpooled := math.Sqrt(pc*(1-pc)/nc + pt*(1-pt)/nt)
	crit := dist.ZCritical(alpha)
	ci := analysis.Interval{
		Lower: diff - crit*seUnpooled,
		Upper: diff + crit*seUnpooled,
	}

	lift, liftDefined := 0.0, false
	if pc > 0 {
		lift, liftDefined = diff/pc*100, true
	}

	significant := pValue < alpha

	res := &analysis.Result{
		Kind:               analysis.KindTwoProportionZ,
		Alpha:              alpha,
		ControlEstimate:    pc,
		TestEstimate:       pt,
		ControlSize:        control.Visitors,
		TestSize:           test.Visitors,
		Difference:         diff,
		RelativeLift:       lift,
		LiftDefined:        liftDefined,
		Statistic:          z,
		PValue:             pValue,
		ConfidenceInterval: ci,
		Significant:        significant,
		Power:              observedPower(diff, seUnpooled, crit, dist),
	}
	res.Interpretation = interpretProportions(res)
	return res, nil
}

// observedPower estimates the post hoc power of the two-sided test under the
// normal approximation.
func observedPower(diff, se, crit float64, dist *Distributions) float64 {
	if se == 0 {
		// Degenerate arms (rates pinned at 0 or 1): any repeat of the
		// experiment reproduces the observed difference.
		return 1
	}
	shift := math.Abs(diff) / se
	return dist.NormalCDF(shift-crit) + dist.NormalCDF(-shift-crit)
}

func interpretProportions(r *analysis.Result) string {
	if !r.Significant {
		return fmt.Sprintf("No significant difference between variants (p=%.4f)", r.PValue)
	}
	if r.TestEstimate > r.ControlEstimate {
		return fmt.Sprintf("Test variant performs significantly better than control (p=%.4f)", r.PValue)
	}
	return fmt.Sprintf("Test variant performs significantly worse than control (p=%.4f)", r.PValue)
}

func validateAlpha(alpha float64) error {
	if alpha <= 0 || alpha >= 1 {
		return fmt.Errorf("%w: got %g", core.ErrAlphaOutOfRange, alpha)
	}
	return nil
}
