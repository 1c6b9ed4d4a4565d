package app

import (
	"context"
	"time"

	"goab/domain/analysis"
	"goab/domain/core"
	"goab/domain/experiment"
	"goab/internal"
	"goab/internal/sampledata"

	"golang.org/x/sync/errgroup"
)

// SweepService analyzes a batch of experiments in one pass. Each analysis is
// independent, so the batch fans out across goroutines.
type SweepService struct {
	svc *AnalysisService
	log *internal.Logger
}

// SweepEntry is the outcome for one experiment in a sweep.
type SweepEntry struct {
	AnalysisID core.AnalysisID   `json:"analysis_id"`
	Experiment core.ExperimentID `json:"experiment_id"`
	Name       string            `json:"name"`
	Status     experiment.Status `json:"status"`
	Result     *analysis.Result  `json:"result"`
}

// SweepResult is the complete output of a sweep.
type SweepResult struct {
	SweepID   core.ID      `json:"sweep_id"`
	Entries   []SweepEntry `json:"entries"`
	RuntimeMs int64        `json:"runtime_ms"`
}

// NewSweepService creates a sweep service
func NewSweepService(svc *AnalysisService, log *internal.Logger) *SweepService {
	if log == nil {
		log = internal.NewDefaultLogger()
	}
	return &SweepService{svc: svc, log: log}
}

// Run analyzes the given experiments concurrently, preserving input order in
// the output. A failing experiment fails the sweep: the catalog entries are
// all expected to be analyzable, so an error here is a data bug, not a result.
func (s *SweepService) Run(ctx context.Context, exps []experiment.Experiment, alpha float64) (*SweepResult, error) {
	start := time.Now()
	entries := make([]SweepEntry, len(exps))

	g, ctx := errgroup.WithContext(ctx)
	for i, exp := range exps {
		i, exp := i, exp
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.svc.Proportions(exp.Trial, alpha)
			if err != nil {
				return err
			}
			entries[i] = SweepEntry{
				AnalysisID: core.AnalysisID(core.NewID()),
				Experiment: exp.ID,
				Name:       exp.Name,
				Status:     exp.Status,
				Result:     res,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sweep := &SweepResult{
		SweepID:   core.NewID(),
		Entries:   entries,
		RuntimeMs: time.Since(start).Milliseconds(),
	}
	s.log.Info("sweep %s analyzed %d experiments in %dms", sweep.SweepID, len(entries), sweep.RuntimeMs)
	return sweep, nil
}

// RunCatalog runs the sweep over the built-in sample experiments.
func (s *SweepService) RunCatalog(ctx context.Context, alpha float64) (*SweepResult, error) {
	return s.Run(ctx, sampledata.Experiments(), alpha)
}
