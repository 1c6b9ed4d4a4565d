package analysis

// TestKind identifies the statistical test that produced a result.
type TestKind string

const (
	KindTwoProportionZ TestKind = "two_proportion_z"
	KindWelchT         TestKind = "welch_t"
)

// Interval is a two-sided confidence interval for the observed difference.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Contains reports whether x lies inside the interval.
func (i Interval) Contains(x float64) bool {
	return i.Lower <= x && x <= i.Upper
}

// Result is the immutable record of one analysis call. Point estimates are
// conversion rates for the z-test and sample means for the t-test; fields
// that only apply to one kind are zero for the other.
//
// INVARIANTS:
// - PValue in [0,1]
// - Significant == (PValue < Alpha)
// - ConfidenceInterval.Lower <= Difference <= ConfidenceInterval.Upper
type Result struct {
	Kind  TestKind `json:"kind"`
	Alpha float64  `json:"alpha"`

	ControlEstimate float64 `json:"control_estimate"`
	TestEstimate    float64 `json:"test_estimate"`
	ControlStdDev   float64 `json:"control_std_dev,omitempty"`
	TestStdDev      float64 `json:"test_std_dev,omitempty"`
	ControlSize     int     `json:"control_size"`
	TestSize        int     `json:"test_size"`

	Difference float64 `json:"difference"`
	// RelativeLift is the percentage change relative to control. It is only
	// meaningful when LiftDefined is true; a zero control estimate leaves the
	// lift undefined rather than failing the analysis.
	RelativeLift float64 `json:"relative_lift_percent"`
	LiftDefined  bool    `json:"relative_lift_defined"`

	Statistic          float64  `json:"statistic"`
	DegreesOfFreedom   float64  `json:"degrees_of_freedom,omitempty"`
	PValue             float64  `json:"p_value"`
	ConfidenceInterval Interval `json:"confidence_interval"`
	Significant        bool     `json:"is_significant"`

	CohensD float64 `json:"cohens_d,omitempty"`
	// Power is the observed (post hoc) power of the two-proportion test under
	// the normal approximation. Zero for the t-test kind.
	Power float64 `json:"statistical_power,omitempty"`

	Interpretation string `json:"interpretation"`
}

// ConfidenceLevel returns the confidence level of the interval as a
// percentage, e.g. 95 for alpha 0.05.
func (r *Result) ConfidenceLevel() float64 {
	return (1 - r.Alpha) * 100
}

// SampleSizeResult is the output of the sample size calculator. The minimum
// detectable effect is an absolute rate delta: target = baseline + MDE.
type SampleSizeResult struct {
	PerGroup int `json:"sample_size_per_group"`
	Total    int `json:"total_sample_size"`

	BaselineRate            float64 `json:"baseline_rate"`
	TargetRate              float64 `json:"target_rate"`
	MinimumDetectableEffect float64 `json:"minimum_detectable_effect"`
	Alpha                   float64 `json:"alpha"`
	Power                   float64 `json:"power"`
	// EffectSize is the standardized effect, |MDE| / sqrt(p̄(1-p̄)).
	EffectSize float64 `json:"effect_size"`
}
