package dataset

import (
	"fmt"
	"math"

	"renewal-ab-lab/internal/domain"
)

// Options configures dataset validation.
type Options struct {
	ControlLabel   string // defaults to domain.GroupControl
	TreatmentLabel string // defaults to domain.GroupTreatment
	Strict         bool   // abort on the first invalid record instead of excluding it
}

// GroupData holds one arm's raw outcome sequences, in input order.
type GroupData struct {
	Label   string
	Renewed []int
	ARR     []float64
}

// Count returns the number of observations in the arm.
func (g *GroupData) Count() int {
	return len(g.Renewed)
}

// View provides read-only, partitioned access to the raw observations.
type View struct {
	Control   GroupData
	Treatment GroupData

	// Excluded lists records rejected by validation in lenient mode.
	Excluded []*ValidationError
}

// BalanceCheck is the advisory group-balance signal. Pass=false means
// the arms are unbalanced beyond the tolerance; it never blocks
// analysis.
type BalanceCheck struct {
	Name      string
	Threshold string
	Actual    string
	Pass      bool
}

// NewView partitions observations into the two recognized arms.
//
// Group existence is checked before anything else: an empty dataset or
// a recognized arm with zero records is a fatal error, since the group
// statistics downstream would be undefined. Records with an
// unrecognized label or a renewal outcome outside {0,1} are validation
// failures, handled per Options.Strict.
func NewView(observations []*domain.Observation, opts Options) (*View, error) {
	if opts.ControlLabel == "" {
		opts.ControlLabel = domain.GroupControl
	}
	if opts.TreatmentLabel == "" {
		opts.TreatmentLabel = domain.GroupTreatment
	}

	if len(observations) == 0 {
		return nil, ErrEmptyDataset
	}

	v := &View{
		Control:   GroupData{Label: opts.ControlLabel},
		Treatment: GroupData{Label: opts.TreatmentLabel},
	}

	for _, obs := range observations {
		var target *GroupData
		switch obs.Group {
		case opts.ControlLabel:
			target = &v.Control
		case opts.TreatmentLabel:
			target = &v.Treatment
		default:
			verr := &ValidationError{
				CustomerID: obs.CustomerID,
				Field:      "Group",
				Reason:     fmt.Sprintf("unrecognized label %q", obs.Group),
			}
			if opts.Strict {
				return nil, verr
			}
			v.Excluded = append(v.Excluded, verr)
			continue
		}

		if obs.Renewed != 0 && obs.Renewed != 1 {
			verr := &ValidationError{
				CustomerID: obs.CustomerID,
				Field:      "Renewed",
				Reason:     fmt.Sprintf("binary outcome must be 0 or 1, got %d", obs.Renewed),
			}
			if opts.Strict {
				return nil, verr
			}
			v.Excluded = append(v.Excluded, verr)
			continue
		}

		target.Renewed = append(target.Renewed, obs.Renewed)
		target.ARR = append(target.ARR, obs.DiscountedARR)
	}

	if v.Control.Count() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingGroup, opts.ControlLabel)
	}
	if v.Treatment.Count() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingGroup, opts.TreatmentLabel)
	}

	return v, nil
}

// CheckBalance reports whether the arm sizes differ by more than
// tolerance (a fraction of the total recognized count, default 0.05).
func (v *View) CheckBalance(tolerance float64) BalanceCheck {
	nControl := v.Control.Count()
	nTreatment := v.Treatment.Count()
	total := nControl + nTreatment

	diff := math.Abs(float64(nControl-nTreatment)) / float64(total)
	return BalanceCheck{
		Name:      "Group balance",
		Threshold: fmt.Sprintf("|n%s - n%s| <= %.0f%% of total", v.Control.Label, v.Treatment.Label, tolerance*100),
		Actual:    fmt.Sprintf("%d vs %d (%.1f%% difference)", nControl, nTreatment, diff*100),
		Pass:      diff <= tolerance,
	}
}
