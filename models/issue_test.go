package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueResolve(t *testing.T) {
	created := time.Now().Add(-3 * time.Hour)
	issue := Issue{ID: created.UnixMilli(), Status: Pending}

	first := time.Now()
	require.True(t, issue.Resolve(first))
	assert.Equal(t, Resolved, issue.Status)
	require.NotNil(t, issue.ResolvedAt)
	assert.Equal(t, first.UnixMilli(), *issue.ResolvedAt)

	// Resolved is terminal; resolvedAt never changes once set.
	assert.False(t, issue.Resolve(first.Add(time.Hour)))
	assert.Equal(t, first.UnixMilli(), *issue.ResolvedAt)

	d, ok := issue.ResolutionTime()
	require.True(t, ok)
	assert.InDelta(t, 3*time.Hour, d, float64(2*time.Second))
}

func TestIssueResolutionTimePending(t *testing.T) {
	issue := Issue{ID: time.Now().UnixMilli(), Status: Pending}

	_, ok := issue.ResolutionTime()
	assert.False(t, ok)
	assert.Nil(t, issue.ResolvedAt)
}

func TestIssueCreatedAtDerivesFromID(t *testing.T) {
	created := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	issue := Issue{ID: created.UnixMilli()}

	assert.True(t, issue.CreatedAt().Equal(created))
}

func TestIssueSentimentOnlyGrows(t *testing.T) {
	issue := Issue{}
	issue.Upvote()
	issue.Upvote()
	issue.Downvote()

	assert.Equal(t, 2, issue.Upvotes)
	assert.Equal(t, 1, issue.Downvotes)
}

func TestIssueComments(t *testing.T) {
	issue := Issue{Comments: []Comment{}}
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	issue.AddComment("first", now)
	issue.AddComment("second", now.Add(time.Minute))

	require.Len(t, issue.Comments, 2)
	assert.Equal(t, "first", issue.Comments[0].Text)
	assert.Equal(t, "2026-08-29T12:00:00Z", issue.Comments[0].Date)
	assert.Equal(t, "2026-08-29T12:01:00Z", issue.Comments[1].Date)
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(string(c)))
	}
	assert.False(t, ValidCategory("Alien Landing"))
	assert.False(t, ValidCategory(""))
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid credentials return the authority", func(t *testing.T) {
		a, ok := Authenticate("admin_water", "pass123")
		require.True(t, ok)
		assert.Equal(t, "Priya (Water)", a.Name)
		assert.Equal(t, "9123456789", a.Phone)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, ok := Authenticate("admin_water", "wrong")
		assert.False(t, ok)
	})

	t.Run("unknown official fails", func(t *testing.T) {
		_, ok := Authenticate("admin_parks", "pass123")
		assert.False(t, ok)
	})
}

func TestAuthorityByName(t *testing.T) {
	a, ok := AuthorityByName("Rajesh (Roads)")
	require.True(t, ok)
	assert.Equal(t, "9876543210", a.Phone)

	_, ok = AuthorityByName("Nobody")
	assert.False(t, ok)
}
