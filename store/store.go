// Package store holds the authoritative issue collection behind an explicit
// load/save interface. All writes replace the whole collection; there is no
// partial-record API.
package store

import (
	"context"

	"civicdispatch-be/models"
)

// Store is the report store contract. LoadAll never fails: a missing or
// unparsable persisted representation is an empty collection, not an error.
// SaveAll persists the entire collection it is given.
type Store interface {
	LoadAll(ctx context.Context) []models.Issue
	SaveAll(ctx context.Context, issues []models.Issue) error
}

// Append loads the collection, appends one issue, and writes everything back.
func Append(ctx context.Context, s Store, issue models.Issue) error {
	issues := s.LoadAll(ctx)
	return s.SaveAll(ctx, append(issues, issue))
}

// Mutate applies fn to the issue with the given id as a map-if-match over the
// whole collection. An unknown id, or an fn that reports no change, leaves the
// persisted collection untouched and returns changed=false.
func Mutate(ctx context.Context, s Store, id int64, fn func(*models.Issue) bool) (bool, error) {
	issues := s.LoadAll(ctx)
	changed := false
	for idx := range issues {
		if issues[idx].ID == id {
			changed = fn(&issues[idx])
			break
		}
	}
	if !changed {
		return false, nil
	}
	return true, s.SaveAll(ctx, issues)
}
