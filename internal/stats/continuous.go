package stats

import (
	"fmt"
	"math"

	"goab/domain/analysis"
	"goab/domain/core"
	"goab/domain/experiment"

	"github.com/montanaflynn/stats"
)

// AnalyzeContinuous runs Welch's t-test between the control and test arms of
// a continuous-metric experiment.
//
// Welch's test is used unconditionally: it does not assume equal variances
// and converges to Student's test when the variances happen to match, so
// there is no equal-variance pre-test to get wrong.
func AnalyzeContinuous(control, test experiment.ContinuousSample, alpha float64) (*analysis.Result, error) {
	if err := validateAlpha(alpha); err != nil {
		return nil, err
	}
	if err := control.Validate(); err != nil {
		return nil, core.NewInvalidInputError("control", err.Error())
	}
	if err := test.Validate(); err != nil {
		return nil, core.NewInvalidInputError("test", err.Error())
	}

	nc := float64(len(control))
	nt := float64(len(test))

	meanC, _ := stats.Mean([]float64(control))
	meanT, _ := stats.Mean([]float64(test))
	sdC, _ := stats.StandardDeviationSample([]float64(control))
	sdT, _ := stats.StandardDeviationSample([]float64(test))
	varC := sdC * sdC
	varT := sdT * sdT

	se := math.Sqrt(varC/nc + varT/nt)
	if se == 0 {
		// Both arms constant: the t-statistic has a zero denominator.
		return nil, fmt.Errorf("%w: both samples are constant", core.ErrZeroPooledVariance)
	}

	diff := meanT - meanC
	tStat := diff / se

	// Welch-Satterthwaite degrees of freedom
	df := math.Pow(varC/nc+varT/nt, 2) /
		(math.Pow(varC/nc, 2)/(nc-1) + math.Pow(varT/nt, 2)/(nt-1))

	dist := NewDistributions()
	pValue := dist.TTestPValue(tStat, df)

	crit := dist.TCritical(alpha, df)
	ci := analysis.Interval{
		Lower: diff - crit*se,
		Upper: diff + crit*se,
	}

	pooledSD := math.Sqrt(((nc-1)*varC + (nt-1)*varT) / (nc + nt - 2))
	cohensD := diff / pooledSD

	lift, liftDefined := 0.0, false
	if meanC != 0 {
		lift, liftDefined = diff/meanC*100, true
	}

	res := &analysis.Result{
		Kind:               analysis.KindWelchT,
		Alpha:              alpha,
		ControlEstimate:    meanC,
		TestEstimate:       meanT,
		ControlStdDev:      sdC,
		TestStdDev:         sdT,
		ControlSize:        len(control),
		TestSize:           len(test),
		Difference:         diff,
		RelativeLift:       lift,
		LiftDefined:        liftDefined,
		Statistic:          tStat,
		DegreesOfFreedom:   df,
		PValue:             pValue,
		ConfidenceInterval: ci,
		Significant:        pValue < alpha,
		CohensD:            cohensD,
	}
	res.Interpretation = interpretContinuous(res)
	return res, nil
}

func interpretContinuous(r *analysis.Result) string {
	if !r.Significant {
		return fmt.Sprintf("No significant difference between groups (p=%.4f)", r.PValue)
	}
	if r.TestEstimate > r.ControlEstimate {
		return fmt.Sprintf("Test group has significantly higher values than control (p=%.4f)", r.PValue)
	}
	return fmt.Sprintf("Test group has significantly lower values than control (p=%.4f)", r.PValue)
}
