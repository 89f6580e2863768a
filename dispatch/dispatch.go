// Package dispatch binds a new issue to a responsible authority.
package dispatch

import (
	"civicdispatch-be/models"
)

// Policy selects an authority for a new report. Assign must be a pure
// decision over the category and the current collection; persisting the
// assignment is the caller's job.
type Policy interface {
	Assign(category models.IssueCategory, current []models.Issue) models.Authority
}

// CategoryRouting routes by a fixed category table with an explicit default
// for unmapped categories. The table is data, not code: it can be replaced
// wholesale from configuration.
type CategoryRouting struct {
	Routes  map[models.IssueCategory]models.Authority
	Default models.Authority
}

// NewCategoryRouting builds a routing policy from an explicit table.
func NewCategoryRouting(routes map[models.IssueCategory]models.Authority, def models.Authority) *CategoryRouting {
	return &CategoryRouting{Routes: routes, Default: def}
}

// DefaultRouting returns the built-in table: road-related categories to the
// Roads authority, water-related to Water, sanitation-related to Sanitation,
// everything else to the municipal default.
func DefaultRouting() *CategoryRouting {
	roads, water, sanitation := models.Directory[0], models.Directory[1], models.Directory[2]
	return NewCategoryRouting(map[models.IssueCategory]models.Authority{
		models.Pothole:        roads,
		models.StreetLight:    roads,
		models.TrafficSignal:  roads,
		models.WaterLeakage:   water,
		models.SewageDrainage: water,
		models.Garbage:        sanitation,
		models.PublicPark:     sanitation,
	}, models.DefaultAuthority)
}

// Assign looks the category up in the table. Unknown categories fall back to
// the default authority and never fail the submission.
func (p *CategoryRouting) Assign(category models.IssueCategory, _ []models.Issue) models.Authority {
	if a, ok := p.Routes[category]; ok {
		return a
	}
	return p.Default
}

// LeastWorkload picks the authority with the strictly smallest number of
// currently assigned issues, breaking ties by declaration order. This is the
// product's original dispatch behavior, retained as an alternate policy.
type LeastWorkload struct {
	Authorities []models.Authority
}

// NewLeastWorkload builds the policy over the given authorities; a nil slice
// means the full directory.
func NewLeastWorkload(authorities []models.Authority) *LeastWorkload {
	if authorities == nil {
		authorities = models.Directory
	}
	return &LeastWorkload{Authorities: authorities}
}

// Assign counts assignments per known authority over the current collection
// and returns the first authority with the minimum count.
func (p *LeastWorkload) Assign(_ models.IssueCategory, current []models.Issue) models.Authority {
	workload := make(map[string]int, len(p.Authorities))
	for _, a := range p.Authorities {
		workload[a.Name] = 0
	}
	for _, issue := range current {
		if _, known := workload[issue.AssignedName]; known {
			workload[issue.AssignedName]++
		}
	}
	selected := p.Authorities[0]
	min := workload[selected.Name]
	for _, a := range p.Authorities[1:] {
		if workload[a.Name] < min {
			min = workload[a.Name]
			selected = a
		}
	}
	return selected
}
