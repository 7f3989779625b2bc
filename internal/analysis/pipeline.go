package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"renewal-ab-lab/internal/dataset"
	"renewal-ab-lab/internal/decision"
	"renewal-ab-lab/internal/domain"
	"renewal-ab-lab/internal/idhash"
	"renewal-ab-lab/internal/reporting"
	"renewal-ab-lab/internal/stats"
	"renewal-ab-lab/internal/storage"
)

// Config holds the analysis parameters.
type Config struct {
	Alpha            float64 // significance threshold, default 0.05
	BalanceTolerance float64 // balance-warning tolerance, default 0.05
	ControlLabel     string  // default "A"
	TreatmentLabel   string  // default "B"
	Strict           bool    // abort on the first invalid record
}

// DefaultConfig returns the standard analysis configuration.
func DefaultConfig() Config {
	return Config{
		Alpha:            0.05,
		BalanceTolerance: 0.05,
		ControlLabel:     domain.GroupControl,
		TreatmentLabel:   domain.GroupTreatment,
	}
}

// Pipeline runs the full analysis: load observations, partition,
// summarize, test, decide, report. One sequential computation over the
// in-memory dataset with explicit handoffs between stages.
type Pipeline struct {
	obsStore    storage.ObservationStore
	resultStore storage.AnalysisResultStore // optional run-history sink
	cfg         Config
	outputDir   string // empty disables file output
	evaluator   *decision.Evaluator
	reportGen   *reporting.Generator
	clock       func() time.Time
}

// NewPipeline creates a new analysis pipeline.
func NewPipeline(obsStore storage.ObservationStore, cfg Config) *Pipeline {
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		cfg.Alpha = 0.05
	}
	if cfg.BalanceTolerance <= 0 {
		cfg.BalanceTolerance = 0.05
	}
	return &Pipeline{
		obsStore:  obsStore,
		cfg:       cfg,
		evaluator: decision.NewEvaluator(),
		reportGen: reporting.NewGenerator(),
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

// WithResultStore adds a store that receives the flattened result row.
func (p *Pipeline) WithResultStore(store storage.AnalysisResultStore) *Pipeline {
	p.resultStore = store
	return p
}

// WithOutputDir enables report file output:
// REPORT.md, RECOMMENDATION.md, group_summaries.csv, test_results.csv.
func (p *Pipeline) WithOutputDir(dir string) *Pipeline {
	p.outputDir = dir
	return p
}

// WithClock sets a custom clock function for deterministic output.
func (p *Pipeline) WithClock(clock func() time.Time) *Pipeline {
	p.clock = clock
	p.reportGen = p.reportGen.WithClock(clock)
	return p
}

// Run executes the full pipeline and returns the structured report.
//
// A degenerate test input (zero pooled standard error, zero variance in
// both arms) aborts the run with the failing test named in the error,
// rather than reporting a partial verdict.
func (p *Pipeline) Run(ctx context.Context) (*reporting.Report, error) {
	observations, err := p.obsStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load observations: %w", err)
	}

	view, err := dataset.NewView(observations, dataset.Options{
		ControlLabel:   p.cfg.ControlLabel,
		TreatmentLabel: p.cfg.TreatmentLabel,
		Strict:         p.cfg.Strict,
	})
	if err != nil {
		return nil, fmt.Errorf("partition dataset: %w", err)
	}

	balance := view.CheckBalance(p.cfg.BalanceTolerance)

	control := stats.Summarize(view.Control.Label, view.Control.Renewed, view.Control.ARR)
	treatment := stats.Summarize(view.Treatment.Label, view.Treatment.Renewed, view.Treatment.ARR)

	rateResult, err := stats.TwoProportionZTest(
		control.Renewals, control.Count,
		treatment.Renewals, treatment.Count,
	)
	if err != nil {
		return nil, fmt.Errorf("renewal rate z-test: %w", err)
	}

	arrResult, err := stats.WelchTTest(view.Control.ARR, view.Treatment.ARR)
	if err != nil {
		return nil, fmt.Errorf("discounted ARR t-test: %w", err)
	}

	verdict := p.evaluator.Evaluate(decision.Input{
		Alpha:      p.cfg.Alpha,
		RateResult: rateResult,
		ARRResult:  arrResult,
		Control:    control,
		Treatment:  treatment,
	})

	report := p.reportGen.Generate(reporting.Input{
		Alpha:            p.cfg.Alpha,
		BalanceTolerance: p.cfg.BalanceTolerance,
		View:             view,
		Balance:          balance,
		Control:          control,
		Treatment:        treatment,
		RateResult:       rateResult,
		ARRResult:        arrResult,
		Verdict:          verdict,
	})

	if p.outputDir != "" {
		if err := p.writeArtifacts(report, verdict); err != nil {
			return nil, err
		}
	}

	if p.resultStore != nil {
		result := p.buildResult(observations, report, control, treatment, rateResult, arrResult, verdict, balance)
		if err := p.resultStore.Insert(ctx, result); err != nil {
			return nil, fmt.Errorf("persist analysis result: %w", err)
		}
	}

	return report, nil
}

func (p *Pipeline) writeArtifacts(report *reporting.Report, verdict *decision.Verdict) error {
	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := map[string]string{
		"REPORT.md":           reporting.RenderMarkdown(report),
		"RECOMMENDATION.md":   decision.RenderMarkdown(verdict),
		"group_summaries.csv": reporting.RenderGroupSummariesCSV(report.Groups),
		"test_results.csv":    reporting.RenderTestResultsCSV(report.Tests),
	}

	for name, content := range files {
		path := filepath.Join(p.outputDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	return nil
}

func (p *Pipeline) buildResult(
	observations []*domain.Observation,
	report *reporting.Report,
	control, treatment *domain.GroupSummary,
	rateResult, arrResult *domain.TestResult,
	verdict *decision.Verdict,
	balance dataset.BalanceCheck,
) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		RunID:       idhash.ComputeRunID(observations, p.cfg.Alpha, p.cfg.BalanceTolerance),
		GeneratedAt: report.GeneratedAt.UnixMilli(),

		Alpha:            p.cfg.Alpha,
		BalanceTolerance: p.cfg.BalanceTolerance,

		ControlGroup:   control.Group,
		TreatmentGroup: treatment.Group,
		ControlCount:   control.Count,
		TreatmentCount: treatment.Count,
		ExcludedCount:  report.Data.ExcludedRecords,
		Balanced:       balance.Pass,

		ControlRenewalRate:   control.RenewalRate,
		TreatmentRenewalRate: treatment.RenewalRate,
		ControlARRMean:       control.ARRMean,
		TreatmentARRMean:     treatment.ARRMean,
		ControlARRStddev:     control.ARRStddev,
		TreatmentARRStddev:   treatment.ARRStddev,

		RateZ:      rateResult.Statistic,
		RatePValue: rateResult.PValue,
		ARRT:       arrResult.Statistic,
		ARRPValue:  arrResult.PValue,
		ARRDf:      arrResult.DegreesOfFreedom,

		RateSignificant: verdict.RateCheck.Significant,
		ARRSignificant:  verdict.ARRCheck.Significant,
		RateWinner:      string(verdict.RateCheck.Winner),
		ARRWinner:       string(verdict.ARRCheck.Winner),
		Recommendation:  string(verdict.Recommendation),
	}
}
