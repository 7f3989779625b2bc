package domain

// Test identifiers for TestResult.Test.
const (
	TestProportionZ = "PROPORTION_Z" // two-sample z-test on renewal rate
	TestWelchT      = "WELCH_T"      // Welch's t-test on discounted ARR
)

// TestResult is the immutable outcome of one hypothesis test.
type TestResult struct {
	Test             string  // TestProportionZ or TestWelchT
	Statistic        float64 // z or t statistic
	PValue           float64 // two-sided p-value in [0,1]
	DegreesOfFreedom float64 // Welch-Satterthwaite df; 0 for the z-test
}
