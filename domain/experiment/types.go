package experiment

import (
	"goab/domain/core"
)

// Status tracks the lifecycle of an experiment.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

// MetricType distinguishes conversion experiments from continuous-metric ones.
type MetricType string

const (
	MetricConversionRate MetricType = "conversion_rate"
	MetricContinuous     MetricType = "continuous"
)

// ProportionSample is one arm of a conversion experiment: how many of the
// visitors completed the target action.
type ProportionSample struct {
	Conversions int `json:"conversions"`
	Visitors    int `json:"visitors"`
}

// Rate returns the observed conversion rate. Only meaningful after Validate.
func (s ProportionSample) Rate() float64 {
	return float64(s.Conversions) / float64(s.Visitors)
}

// Validate checks the sample is inside the domain of the z-test formulas.
func (s ProportionSample) Validate() error {
	if s.Visitors <= 0 {
		return core.ErrZeroVisitors
	}
	if s.Conversions < 0 {
		return core.ErrNegativeCount
	}
	if s.Conversions > s.Visitors {
		return core.ErrConversionsExceed
	}
	return nil
}

// ProportionTrial pairs the control and test arms of a conversion experiment.
type ProportionTrial struct {
	Control ProportionSample `json:"control"`
	Test    ProportionSample `json:"test"`
}

// Validate checks both arms.
func (t ProportionTrial) Validate() error {
	if err := t.Control.Validate(); err != nil {
		return core.NewInvalidInputError("control", err.Error())
	}
	if err := t.Test.Validate(); err != nil {
		return core.NewInvalidInputError("test", err.Error())
	}
	return nil
}

// ContinuousSample is an ordered sequence of real-valued measurements
// (revenue per user, session length, ...).
type ContinuousSample []float64

// Validate checks the sample carries enough observations for a variance.
func (s ContinuousSample) Validate() error {
	if len(s) < 2 {
		return core.ErrSampleTooSmall
	}
	return nil
}

// ContinuousTrial pairs the control and test arms of a continuous-metric
// experiment.
type ContinuousTrial struct {
	Control ContinuousSample `json:"control"`
	Test    ContinuousSample `json:"test"`
}

// Validate checks both arms.
func (t ContinuousTrial) Validate() error {
	if err := t.Control.Validate(); err != nil {
		return core.NewInvalidInputError("control", err.Error())
	}
	if err := t.Test.Validate(); err != nil {
		return core.NewInvalidInputError("test", err.Error())
	}
	return nil
}

// Experiment bundles a trial with the metadata the sample catalog and the
// CLI display alongside results.
type Experiment struct {
	ID          core.ExperimentID `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Status      Status            `json:"status"`
	Metric      MetricType        `json:"metric_type"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	ControlName string            `json:"control_name"`
	TestName    string            `json:"test_name"`
	Trial       ProportionTrial   `json:"trial"`
}
