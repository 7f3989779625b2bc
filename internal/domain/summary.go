package domain

// GroupSummary holds descriptive statistics for one experiment arm.
// Computed once from a dataset partition, never mutated.
type GroupSummary struct {
	Group       string  // arm label
	Count       int     // observations in the arm
	Renewals    int     // count of renewed customers
	RenewalRate float64 // mean of the 0/1 renewal outcome, in [0,1]
	ARRMean     float64 // mean discounted ARR
	ARRStddev   float64 // sample stddev (n-1); NaN if Count < 2
}
