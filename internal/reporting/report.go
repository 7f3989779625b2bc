package reporting

import (
	"time"

	"renewal-ab-lab/internal/decision"
)

// Report is the structured analysis output. It is plain data: the
// pipeline fills it and the renderers below format it, so other
// presenters can consume it without reparsing text.
type Report struct {
	GeneratedAt      time.Time
	Alpha            float64
	BalanceTolerance float64

	Data    DataSummary
	Balance BalanceRow
	Groups  []GroupRow
	Tests   []TestRow
	Verdict *decision.Verdict
}

// DataSummary describes the analyzed dataset.
type DataSummary struct {
	TotalObservations int // recognized records that entered the analysis
	ControlCount      int
	TreatmentCount    int
	ExcludedRecords   int // rejected by validation in lenient mode
}

// BalanceRow is the advisory group-balance check.
type BalanceRow struct {
	Name      string
	Threshold string
	Actual    string
	Pass      bool
}

// GroupRow is one arm's descriptive statistics with display formatting.
type GroupRow struct {
	Group       string
	Count       int
	Renewals    int
	RenewalRate float64
	ARRMean     float64
	ARRStddev   float64

	// Formatted for human reading
	RenewalRateFmt string // "80.00%"
	ARRMeanFmt     string // "$1,234.56"
	ARRStddevFmt   string
}

// TestRow is one hypothesis test outcome.
type TestRow struct {
	Test             string // domain test identifier
	Metric           string
	Statistic        float64
	PValue           float64
	DegreesOfFreedom float64 // 0 for the z-test
	Significant      bool
}
