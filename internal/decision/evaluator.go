package decision

import (
	"fmt"

	"renewal-ab-lab/internal/domain"
)

// Input carries everything the verdict depends on: both test outcomes
// and the raw group summaries for directional comparison.
type Input struct {
	Alpha      float64
	RateResult *domain.TestResult
	ARRResult  *domain.TestResult
	Control    *domain.GroupSummary
	Treatment  *domain.GroupSummary
}

// Evaluator synthesizes the business recommendation.
type Evaluator struct{}

// NewEvaluator creates a new verdict evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate produces the Verdict from both test outcomes crossed with
// the directional comparison of raw group values.
func (e *Evaluator) Evaluate(input Input) *Verdict {
	rateWinner := CompareValues(input.Control.RenewalRate, input.Treatment.RenewalRate,
		input.Control.Group, input.Treatment.Group)
	arrWinner := CompareValues(input.Control.ARRMean, input.Treatment.ARRMean,
		input.Control.Group, input.Treatment.Group)

	rateSig := input.RateResult.PValue < input.Alpha
	arrSig := input.ARRResult.PValue < input.Alpha

	rec := Classify(rateSig, arrSig, rateWinner, arrWinner)

	return &Verdict{
		Recommendation: rec,
		Action:         actionLine(rec, rateWinner, arrWinner, input.Control.Group),
		RateCheck: SignificanceCheck{
			Metric:      "Renewal rate",
			Test:        input.RateResult.Test,
			PValue:      input.RateResult.PValue,
			Alpha:       input.Alpha,
			Significant: rateSig,
			Winner:      rateWinner,
		},
		ARRCheck: SignificanceCheck{
			Metric:      "Avg discounted ARR",
			Test:        input.ARRResult.Test,
			PValue:      input.ARRResult.PValue,
			Alpha:       input.Alpha,
			Significant: arrSig,
			Winner:      arrWinner,
		},
		RateComparison: fmt.Sprintf("%s %.2f%% vs %s %.2f%%",
			input.Control.Group, input.Control.RenewalRate*100,
			input.Treatment.Group, input.Treatment.RenewalRate*100),
		ARRComparison: fmt.Sprintf("%s $%.2f vs %s $%.2f",
			input.Control.Group, input.Control.ARRMean,
			input.Treatment.Group, input.Treatment.ARRMean),
	}
}

// CompareValues names the arm with the higher raw value, or WinnerTie
// on exact equality. Continuous data makes the tie path practically
// unexercised, but it must not pick a side.
func CompareValues(control, treatment float64, controlLabel, treatmentLabel string) Winner {
	switch {
	case control > treatment:
		return Winner(controlLabel)
	case treatment > control:
		return Winner(treatmentLabel)
	default:
		return WinnerTie
	}
}

// Classify maps the two significance flags crossed with the two
// directional winners onto exactly one recommendation category. Pure,
// so every combination is directly testable.
func Classify(rateSig, arrSig bool, rateWinner, arrWinner Winner) Recommendation {
	switch {
	case rateSig && arrSig:
		if rateWinner == arrWinner && rateWinner != WinnerTie {
			return RecommendationAdoptWinner
		}
		return RecommendationMetricTiebreak
	case rateSig:
		return RecommendationRateOnly
	case arrSig:
		return RecommendationRevenueOnly
	default:
		return RecommendationKeepBaseline
	}
}

func actionLine(rec Recommendation, rateWinner, arrWinner Winner, controlLabel string) string {
	switch rec {
	case RecommendationAdoptWinner:
		return fmt.Sprintf("Group %s wins both metrics. Implement its discount strategy.", rateWinner)
	case RecommendationMetricTiebreak:
		return "Metrics conflict. Stakeholders must decide between renewal volume and revenue per customer."
	case RecommendationRateOnly:
		return fmt.Sprintf("Only renewal rate is significant (winner: group %s). Collect more data or segment before a full strategy change.", rateWinner)
	case RecommendationRevenueOnly:
		return fmt.Sprintf("Only avg ARR is significant (winner: group %s). Collect more data or segment before a full strategy change.", arrWinner)
	default:
		return fmt.Sprintf("No significant difference. Keep the current default strategy (group %s) or design a new experiment.", controlLabel)
	}
}
