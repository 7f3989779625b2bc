package decision

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders the Verdict as a Markdown string.
func RenderMarkdown(v *Verdict) string {
	var sb strings.Builder

	sb.WriteString("# Recommendation\n\n")
	sb.WriteString(fmt.Sprintf("## Verdict: %s\n\n", v.Recommendation))
	sb.WriteString(v.Action)
	sb.WriteString("\n\n")

	sb.WriteString("## Significance Checks\n\n")
	sb.WriteString("| Metric | Test | P-Value | Alpha | Significant | Winner |\n")
	sb.WriteString("|--------|------|---------|-------|-------------|--------|\n")
	for _, c := range []SignificanceCheck{v.RateCheck, v.ARRCheck} {
		sig := "NO"
		if c.Significant {
			sig = "YES"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %.4f | %.2f | %s | %s |\n",
			c.Metric, c.Test, c.PValue, c.Alpha, sig, c.Winner))
	}
	sb.WriteString("\n")

	sb.WriteString("## Observed Values\n\n")
	sb.WriteString(fmt.Sprintf("- Renewal rate: %s\n", v.RateComparison))
	sb.WriteString(fmt.Sprintf("- Avg discounted ARR: %s\n", v.ARRComparison))

	return sb.String()
}
