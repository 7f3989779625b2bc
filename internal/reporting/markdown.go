package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders the report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString("# A/B Test Renewal Analysis\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Alpha: %.2f\n\n", r.Alpha))

	// Data summary
	sb.WriteString("## Data Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Observations | %d |\n", r.Data.TotalObservations))
	sb.WriteString(fmt.Sprintf("| Group %s | %d |\n", r.Groups[0].Group, r.Data.ControlCount))
	sb.WriteString(fmt.Sprintf("| Group %s | %d |\n", r.Groups[1].Group, r.Data.TreatmentCount))
	sb.WriteString(fmt.Sprintf("| Excluded Records | %d |\n", r.Data.ExcludedRecords))
	sb.WriteString("\n")

	// Balance check
	sb.WriteString("## Data Quality\n\n")
	sb.WriteString("| Check | Threshold | Actual | Status |\n")
	sb.WriteString("|-------|-----------|--------|--------|\n")
	status := "WARN"
	if r.Balance.Pass {
		status = "OK"
	}
	sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n\n",
		r.Balance.Name, r.Balance.Threshold, r.Balance.Actual, status))
	if !r.Balance.Pass {
		sb.WriteString("WARNING: test groups are significantly unbalanced. Results should be interpreted with caution.\n\n")
	}

	// Descriptive statistics
	sb.WriteString("## Descriptive Statistics\n\n")
	sb.WriteString("| Group | Customers | Renewals | Renewal Rate | Avg Discounted ARR | Std Discounted ARR |\n")
	sb.WriteString("|-------|-----------|----------|--------------|--------------------|--------------------|\n")
	for _, g := range r.Groups {
		sb.WriteString(fmt.Sprintf("| %s | %d | %d | %s | %s | %s |\n",
			g.Group, g.Count, g.Renewals, g.RenewalRateFmt, g.ARRMeanFmt, g.ARRStddevFmt))
	}
	sb.WriteString("\n")

	// Hypothesis tests
	sb.WriteString("## Hypothesis Tests\n\n")
	sb.WriteString("| Test | Metric | Statistic | P-Value | df | Significant |\n")
	sb.WriteString("|------|--------|-----------|---------|----|-------------|\n")
	for _, t := range r.Tests {
		df := "-"
		if t.DegreesOfFreedom > 0 {
			df = fmt.Sprintf("%.2f", t.DegreesOfFreedom)
		}
		sig := "NO"
		if t.Significant {
			sig = "YES"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %.4f | %.4f | %s | %s |\n",
			t.Test, t.Metric, t.Statistic, t.PValue, df, sig))
	}
	sb.WriteString("\n")

	// Verdict
	if r.Verdict != nil {
		sb.WriteString("## Final Recommendation\n\n")
		sb.WriteString(fmt.Sprintf("**%s**\n\n", r.Verdict.Recommendation))
		sb.WriteString(r.Verdict.Action)
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("- Renewal rate: %s\n", r.Verdict.RateComparison))
		sb.WriteString(fmt.Sprintf("- Avg discounted ARR: %s\n", r.Verdict.ARRComparison))
	}

	return sb.String()
}
