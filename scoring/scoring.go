// Package scoring reduces an authority's assigned issues to one bounded
// performance number built from efficiency, public sentiment, and
// resolution speed.
package scoring

import (
	"fmt"
	"math"
	"time"

	"civicdispatch-be/models"
)

const (
	efficiencyMax     = 40.0
	trustMax          = 40.0
	trustNeutral      = 20.0
	responsivenessMax = 20.0
	pointsPerFastFix  = 5.0
	fastFixWindow     = 24 * time.Hour
)

// Labels and their fixed breakpoints.
const (
	LabelNoData      = "No Data"
	LabelExcellent   = "Excellent" // value >= 90
	LabelGood        = "Good"
	LabelUnderReview = "Under Review" // value < 50
)

// Result is the composite performance score for one authority.
type Result struct {
	Value int    `json:"value"` // 0..100
	Label string `json:"label"`
	Stars string `json:"stars"` // value/20 to one decimal, "0.0".."5.0"
}

// Score computes the composite score over the issues assigned to one
// authority. An empty input yields the "No Data" sentinel, which is distinct
// from a genuinely earned zero.
func Score(issues []models.Issue) Result {
	if len(issues) == 0 {
		return Result{Value: 0, Label: LabelNoData, Stars: "0.0"}
	}

	resolved := 0
	upvotes, downvotes := 0, 0
	responsiveness := 0.0
	for i := range issues {
		issue := &issues[i]
		upvotes += issue.Upvotes
		downvotes += issue.Downvotes
		if issue.Status != models.Resolved {
			continue
		}
		resolved++
		if d, ok := issue.ResolutionTime(); ok && d < fastFixWindow {
			responsiveness += pointsPerFastFix
		}
	}
	if responsiveness > responsivenessMax {
		responsiveness = responsivenessMax
	}

	efficiency := float64(resolved) / float64(len(issues)) * efficiencyMax

	trust := trustNeutral // no votes reads as neither good nor bad
	if upvotes+downvotes > 0 {
		trust = float64(upvotes) / float64(upvotes+downvotes) * trustMax
	}

	total := efficiency + trust + responsiveness
	value := int(math.Round(math.Min(100, math.Max(0, total))))

	return Result{
		Value: value,
		Label: labelFor(value),
		Stars: fmt.Sprintf("%.1f", float64(value)/20),
	}
}

func labelFor(value int) string {
	switch {
	case value >= 90:
		return LabelExcellent
	case value < 50:
		return LabelUnderReview
	default:
		return LabelGood
	}
}
