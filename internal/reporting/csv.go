package reporting

import (
	"fmt"
	"strings"
)

// RenderGroupSummariesCSV renders the per-group statistics as a CSV string.
func RenderGroupSummariesCSV(groups []GroupRow) string {
	var sb strings.Builder

	sb.WriteString("group,count,renewals,renewal_rate,arr_mean,arr_stddev\n")
	for _, g := range groups {
		sb.WriteString(fmt.Sprintf("%s,%d,%d,%.6f,%.6f,%.6f\n",
			g.Group, g.Count, g.Renewals, g.RenewalRate, g.ARRMean, g.ARRStddev))
	}

	return sb.String()
}

// RenderTestResultsCSV renders the hypothesis test outcomes as a CSV string.
func RenderTestResultsCSV(tests []TestRow) string {
	var sb strings.Builder

	sb.WriteString("test,metric,statistic,p_value,degrees_of_freedom,significant\n")
	for _, t := range tests {
		sb.WriteString(fmt.Sprintf("%s,%s,%.6f,%.6f,%.6f,%t\n",
			t.Test, t.Metric, t.Statistic, t.PValue, t.DegreesOfFreedom, t.Significant))
	}

	return sb.String()
}
