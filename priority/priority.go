// Package priority flags clusters of repeated reports. Several independent
// reports at the same rounded location and category signal a real recurring
// problem worth expedited handling.
package priority

import (
	"fmt"
	"math"

	"civicdispatch-be/models"
)

// HighPriorityThreshold is the cluster size at and above which every member
// report is flagged High.
const HighPriorityThreshold = 3

// coordinate rounding precision for cluster keys: 3 decimal places, roughly
// a 110 m cell.
const clusterPrecision = 1000

// ClassifiedIssue is an issue annotated with its derived priority.
type ClassifiedIssue struct {
	models.Issue
	Priority models.IssuePriority `json:"priority"`
}

// clusterKey groups issues by rounded coordinates and category. Issues
// without coordinates get no key and never cluster.
func clusterKey(issue *models.Issue) (string, bool) {
	if issue.Coordinates == nil {
		return "", false
	}
	lat := math.Round(issue.Coordinates.Lat*clusterPrecision) / clusterPrecision
	lng := math.Round(issue.Coordinates.Lng*clusterPrecision) / clusterPrecision
	return fmt.Sprintf("%.3f:%.3f:%s", lat, lng, issue.IssueType), true
}

// Classify returns the issues assigned to authorityName with a derived
// priority, High issues first. Cluster counts run over the entire collection,
// not just the authority's subset, and the High/Normal split is a stable
// partition: original order is preserved inside each band.
func Classify(all []models.Issue, authorityName string) []ClassifiedIssue {
	counts := make(map[string]int)
	for i := range all {
		if key, ok := clusterKey(&all[i]); ok {
			counts[key]++
		}
	}

	var high, normal []ClassifiedIssue
	for i := range all {
		if all[i].AssignedName != authorityName {
			continue
		}
		priority := models.PriorityNormal
		if key, ok := clusterKey(&all[i]); ok && counts[key] >= HighPriorityThreshold {
			priority = models.PriorityHigh
		}
		ci := ClassifiedIssue{Issue: all[i], Priority: priority}
		if priority == models.PriorityHigh {
			high = append(high, ci)
		} else {
			normal = append(normal, ci)
		}
	}
	return append(high, normal...)
}
