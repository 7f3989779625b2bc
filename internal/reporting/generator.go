package reporting

import (
	"fmt"
	"math"
	"strings"
	"time"

	"renewal-ab-lab/internal/dataset"
	"renewal-ab-lab/internal/decision"
	"renewal-ab-lab/internal/domain"
)

// Generator assembles the structured report from pipeline outputs.
type Generator struct {
	now func() time.Time // injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Input carries everything one analysis run produced.
type Input struct {
	Alpha            float64
	BalanceTolerance float64
	View             *dataset.View
	Balance          dataset.BalanceCheck
	Control          *domain.GroupSummary
	Treatment        *domain.GroupSummary
	RateResult       *domain.TestResult
	ARRResult        *domain.TestResult
	Verdict          *decision.Verdict
}

// Generate builds the complete report.
func (g *Generator) Generate(in Input) *Report {
	return &Report{
		GeneratedAt:      g.now(),
		Alpha:            in.Alpha,
		BalanceTolerance: in.BalanceTolerance,
		Data: DataSummary{
			TotalObservations: in.Control.Count + in.Treatment.Count,
			ControlCount:      in.Control.Count,
			TreatmentCount:    in.Treatment.Count,
			ExcludedRecords:   len(in.View.Excluded),
		},
		Balance: BalanceRow{
			Name:      in.Balance.Name,
			Threshold: in.Balance.Threshold,
			Actual:    in.Balance.Actual,
			Pass:      in.Balance.Pass,
		},
		Groups: []GroupRow{
			groupRow(in.Control),
			groupRow(in.Treatment),
		},
		Tests: []TestRow{
			{
				Test:        in.RateResult.Test,
				Metric:      "Renewal rate",
				Statistic:   in.RateResult.Statistic,
				PValue:      in.RateResult.PValue,
				Significant: in.RateResult.PValue < in.Alpha,
			},
			{
				Test:             in.ARRResult.Test,
				Metric:           "Avg discounted ARR",
				Statistic:        in.ARRResult.Statistic,
				PValue:           in.ARRResult.PValue,
				DegreesOfFreedom: in.ARRResult.DegreesOfFreedom,
				Significant:      in.ARRResult.PValue < in.Alpha,
			},
		},
		Verdict: in.Verdict,
	}
}

func groupRow(s *domain.GroupSummary) GroupRow {
	return GroupRow{
		Group:          s.Group,
		Count:          s.Count,
		Renewals:       s.Renewals,
		RenewalRate:    s.RenewalRate,
		ARRMean:        s.ARRMean,
		ARRStddev:      s.ARRStddev,
		RenewalRateFmt: FormatPercent(s.RenewalRate),
		ARRMeanFmt:     FormatUSD(s.ARRMean),
		ARRStddevFmt:   FormatUSD(s.ARRStddev),
	}
}

// FormatPercent renders a [0,1] fraction as "80.00%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// FormatUSD renders a dollar amount as "$1,234.56". NaN (undefined
// stddev for a single observation) renders as "n/a".
func FormatUSD(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	whole := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(whole, '.')
	intPart, fracPart := whole[:dot], whole[dot:]

	// Insert thousands separators
	var sb strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	return sign + "$" + sb.String() + fracPart
}
