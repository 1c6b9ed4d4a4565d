package stats

import (
	"fmt"
	"math"

	"goab/domain/analysis"
	"goab/domain/core"
)

// SampleSize calculates the required per-group sample size for a
// two-proportion experiment.
//
// The minimum detectable effect is an ABSOLUTE rate delta: detecting a lift
// from a 5% baseline to 6% is mde=0.01, not mde=0.2. The per-group size uses
// the per-arm variance form
//
//	n = (z_{a/2} + z_{pow})^2 * (p1(1-p1) + p2(1-p2)) / (p1-p2)^2
//
// rounded up to the next integer.
func SampleSize(baselineRate, minimumDetectableEffect, alpha, power float64) (*analysis.SampleSizeResult, error) {
	if err := validateAlpha(alpha); err != nil {
		return nil, err
	}
	if power <= 0 || power >= 1 {
		return nil, fmt.Errorf("%w: got %g", core.ErrPowerOutOfRange, power)
	}
	if minimumDetectableEffect == 0 {
		return nil, core.ErrZeroEffect
	}
	if baselineRate <= 0 || baselineRate >= 1 {
		return nil, fmt.Errorf("%w: baseline rate %g", core.ErrRateOutOfRange, baselineRate)
	}
	targetRate := baselineRate + minimumDetectableEffect
	if targetRate <= 0 || targetRate >= 1 {
		return nil, fmt.Errorf("%w: target rate %g", core.ErrRateOutOfRange, targetRate)
	}

	dist := NewDistributions()
	zAlpha := dist.ZCritical(alpha)
	zPower := dist.NormalQuantile(power)

	p1, p2 := baselineRate, targetRate
	variance := p1*(1-p1) + p2*(1-p2)
	n := math.Pow(zAlpha+zPower, 2) * variance / math.Pow(p1-p2, 2)
	perGroup := int(math.Ceil(n))

	pooled := (p1 + p2) / 2
	effectSize := math.Abs(minimumDetectableEffect) / math.Sqrt(pooled*(1-pooled))

	return &analysis.SampleSizeResult{
		PerGroup:                perGroup,
		Total:                   perGroup * 2,
		BaselineRate:            baselineRate,
		TargetRate:              targetRate,
		MinimumDetectableEffect: minimumDetectableEffect,
		Alpha:                   alpha,
		Power:                   power,
		EffectSize:              effectSize,
	}, nil
}
