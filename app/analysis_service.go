package app

import (
	"goab/domain/analysis"
	"goab/domain/experiment"
	"goab/internal"
	"goab/internal/stats"
)

// AnalysisService is the façade the CLI drives. It adds logging around the
// stateless engine calls; every result is returned to the caller, never
// stored.
type AnalysisService struct {
	log *internal.Logger
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(log *internal.Logger) *AnalysisService {
	if log == nil {
		log = internal.NewDefaultLogger()
	}
	return &AnalysisService{log: log}
}

// Proportions runs the two-proportion z-test for a trial.
func (s *AnalysisService) Proportions(trial experiment.ProportionTrial, alpha float64) (*analysis.Result, error) {
	s.log.Debug("proportion analysis: control %d/%d, test %d/%d, alpha %g",
		trial.Control.Conversions, trial.Control.Visitors,
		trial.Test.Conversions, trial.Test.Visitors, alpha)

	res, err := stats.AnalyzeProportions(trial.Control, trial.Test, alpha)
	if err != nil {
		s.log.Warn("proportion analysis failed: %v", err)
		return nil, err
	}
	s.log.Info("proportion analysis: z=%.4f p=%.4f significant=%t", res.Statistic, res.PValue, res.Significant)
	return res, nil
}

// Continuous runs Welch's t-test for a trial.
func (s *AnalysisService) Continuous(trial experiment.ContinuousTrial, alpha float64) (*analysis.Result, error) {
	s.log.Debug("continuous analysis: n_control=%d n_test=%d alpha=%g",
		len(trial.Control), len(trial.Test), alpha)

	res, err := stats.AnalyzeContinuous(trial.Control, trial.Test, alpha)
	if err != nil {
		s.log.Warn("continuous analysis failed: %v", err)
		return nil, err
	}
	s.log.Info("continuous analysis: t=%.4f df=%.2f p=%.4f significant=%t",
		res.Statistic, res.DegreesOfFreedom, res.PValue, res.Significant)
	return res, nil
}

// SampleSize calculates the required per-group size for a planned experiment.
func (s *AnalysisService) SampleSize(baseline, mde, alpha, power float64) (*analysis.SampleSizeResult, error) {
	res, err := stats.SampleSize(baseline, mde, alpha, power)
	if err != nil {
		s.log.Warn("sample size calculation failed: %v", err)
		return nil, err
	}
	s.log.Info("sample size: %d per group for baseline %.4f, mde %.4f", res.PerGroup, baseline, mde)
	return res, nil
}
