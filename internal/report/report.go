// Package report renders analysis results as human-readable text. It is pure
// formatting: no statistics are computed here and the input record is never
// mutated, so report generation can be tested apart from the math.
package report

import (
	"fmt"
	"strings"

	"goab/domain/analysis"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var grouped = message.NewPrinter(language.English)

// Render produces the plain-text summary for one analysis result. The output
// is deterministic for a given result value.
func Render(r *analysis.Result) string {
	var b strings.Builder

	b.WriteString("A/B Test Analysis Summary\n")
	b.WriteString("=========================\n\n")

	switch r.Kind {
	case analysis.KindWelchT:
		writeContinuousBody(&b, r)
	default:
		writeProportionBody(&b, r)
	}

	fmt.Fprintf(&b, "Conclusion:\n%s\n", r.Interpretation)
	return b.String()
}

func writeProportionBody(b *strings.Builder, r *analysis.Result) {
	b.WriteString("Conversion Rates:\n")
	fmt.Fprintf(b, "- Control: %.4f (%.2f%%)\n", r.ControlEstimate, r.ControlEstimate*100)
	fmt.Fprintf(b, "- Test: %.4f (%.2f%%)\n", r.TestEstimate, r.TestEstimate*100)
	fmt.Fprintf(b, "- Difference: %.4f (%s)\n\n", r.Difference, liftLabel(r))

	b.WriteString("Statistical Results:\n")
	fmt.Fprintf(b, "- Z-statistic: %.4f\n", r.Statistic)
	fmt.Fprintf(b, "- P-value: %.4f\n", r.PValue)
	fmt.Fprintf(b, "- Significance Level: %.3f\n", r.Alpha)
	fmt.Fprintf(b, "- Statistical Power: %.3f\n\n", r.Power)

	writeInterval(b, r)

	b.WriteString("Sample Sizes:\n")
	fmt.Fprintf(b, "- Control: %s visitors\n", grouped.Sprintf("%d", r.ControlSize))
	fmt.Fprintf(b, "- Test: %s visitors\n\n", grouped.Sprintf("%d", r.TestSize))
}

func writeContinuousBody(b *strings.Builder, r *analysis.Result) {
	b.WriteString("Group Means:\n")
	fmt.Fprintf(b, "- Control: %.4f (sd %.4f)\n", r.ControlEstimate, r.ControlStdDev)
	fmt.Fprintf(b, "- Test: %.4f (sd %.4f)\n", r.TestEstimate, r.TestStdDev)
	fmt.Fprintf(b, "- Difference: %.4f (%s)\n\n", r.Difference, liftLabel(r))

	b.WriteString("Statistical Results:\n")
	fmt.Fprintf(b, "- T-statistic: %.4f\n", r.Statistic)
	fmt.Fprintf(b, "- Degrees of Freedom: %.2f\n", r.DegreesOfFreedom)
	fmt.Fprintf(b, "- P-value: %.4f\n", r.PValue)
	fmt.Fprintf(b, "- Significance Level: %.3f\n", r.Alpha)
	fmt.Fprintf(b, "- Cohen's d: %.3f (%s effect)\n\n", r.CohensD, effectLabel(r.CohensD))

	writeInterval(b, r)

	b.WriteString("Sample Sizes:\n")
	fmt.Fprintf(b, "- Control: %s observations\n", grouped.Sprintf("%d", r.ControlSize))
	fmt.Fprintf(b, "- Test: %s observations\n\n", grouped.Sprintf("%d", r.TestSize))
}

func writeInterval(b *strings.Builder, r *analysis.Result) {
	fmt.Fprintf(b, "Confidence Interval (%.0f%%):\n", r.ConfidenceLevel())
	fmt.Fprintf(b, "- Lower bound: %.4f\n", r.ConfidenceInterval.Lower)
	fmt.Fprintf(b, "- Upper bound: %.4f\n\n", r.ConfidenceInterval.Upper)
}

func liftLabel(r *analysis.Result) string {
	if !r.LiftDefined {
		return "relative lift undefined"
	}
	return fmt.Sprintf("%+.2f%%", r.RelativeLift)
}

func effectLabel(d float64) string {
	abs := d
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 0.2:
		return "negligible"
	case abs < 0.5:
		return "small"
	case abs < 0.8:
		return "medium"
	default:
		return "large"
	}
}

// RenderSampleSize produces the plain-text summary for a sample size
// calculation.
func RenderSampleSize(r *analysis.SampleSizeResult) string {
	var b strings.Builder

	b.WriteString("Sample Size Calculation\n")
	b.WriteString("=======================\n\n")
	fmt.Fprintf(&b, "- Baseline conversion rate: %.2f%%\n", r.BaselineRate*100)
	fmt.Fprintf(&b, "- Expected test conversion rate: %.2f%%\n", r.TargetRate*100)
	fmt.Fprintf(&b, "- Minimum detectable effect: %.2f%% (absolute)\n", r.MinimumDetectableEffect*100)
	fmt.Fprintf(&b, "- Significance level: %.3f\n", r.Alpha)
	fmt.Fprintf(&b, "- Statistical power: %.2f\n", r.Power)
	fmt.Fprintf(&b, "- Standardized effect size: %.4f\n", r.EffectSize)
	fmt.Fprintf(&b, "- Required sample size per group: %s\n", grouped.Sprintf("%d", r.PerGroup))
	fmt.Fprintf(&b, "- Total required sample size: %s\n", grouped.Sprintf("%d", r.Total))
	return b.String()
}
