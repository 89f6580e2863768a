package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicdispatch-be/models"
)

func assigned(name string) models.Issue {
	return models.Issue{AssignedName: name, Status: models.Pending}
}

func TestCategoryRouting(t *testing.T) {
	routing := DefaultRouting()

	t.Run("road categories go to the roads authority", func(t *testing.T) {
		for _, cat := range []models.IssueCategory{models.Pothole, models.StreetLight, models.TrafficSignal} {
			assert.Equal(t, "Rajesh (Roads)", routing.Assign(cat, nil).Name)
		}
	})

	t.Run("water categories go to the water authority", func(t *testing.T) {
		for _, cat := range []models.IssueCategory{models.WaterLeakage, models.SewageDrainage} {
			assert.Equal(t, "Priya (Water)", routing.Assign(cat, nil).Name)
		}
	})

	t.Run("sanitation categories go to the sanitation authority", func(t *testing.T) {
		for _, cat := range []models.IssueCategory{models.Garbage, models.PublicPark} {
			assert.Equal(t, "Amit (Sanitation)", routing.Assign(cat, nil).Name)
		}
	})

	t.Run("unmapped categories fall back to the default", func(t *testing.T) {
		assert.Equal(t, models.DefaultAuthority, routing.Assign(models.NoiseComplaint, nil))
		assert.Equal(t, models.DefaultAuthority, routing.Assign(models.IllegalConstruction, nil))
		assert.Equal(t, models.DefaultAuthority, routing.Assign("Alien Landing", nil))
	})

	t.Run("deterministic for the same inputs", func(t *testing.T) {
		snapshot := []models.Issue{assigned("Priya (Water)")}
		first := routing.Assign(models.Garbage, snapshot)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, routing.Assign(models.Garbage, snapshot))
		}
	})
}

func TestLeastWorkload(t *testing.T) {
	t.Run("picks the least loaded authority", func(t *testing.T) {
		policy := NewLeastWorkload(nil)
		current := []models.Issue{
			assigned("Rajesh (Roads)"),
			assigned("Rajesh (Roads)"),
			assigned("Priya (Water)"),
			assigned("Amit (Sanitation)"),
		}

		// Vikram has zero assignments.
		assert.Equal(t, "Vikram (Municipal)", policy.Assign(models.Pothole, current).Name)
	})

	t.Run("ties break by declaration order", func(t *testing.T) {
		policy := NewLeastWorkload(nil)

		assert.Equal(t, models.Directory[0], policy.Assign(models.Garbage, nil))
	})

	t.Run("spread never exceeds one", func(t *testing.T) {
		policy := NewLeastWorkload(nil)
		var current []models.Issue
		for i := 0; i < 25; i++ {
			a := policy.Assign(models.Garbage, current)
			current = append(current, assigned(a.Name))
		}

		counts := map[string]int{}
		for _, issue := range current {
			counts[issue.AssignedName]++
		}
		require.Len(t, counts, len(models.Directory))
		min, max := 25, 0
		for _, n := range counts {
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		assert.LessOrEqual(t, max-min, 1)
	})

	t.Run("ignores assignments to unknown authorities", func(t *testing.T) {
		policy := NewLeastWorkload(nil)
		current := []models.Issue{
			assigned("Decommissioned Dept"),
			assigned("Decommissioned Dept"),
		}

		assert.Equal(t, models.Directory[0], policy.Assign(models.Pothole, current))
	})
}

func TestCustomRoutingTable(t *testing.T) {
	water := models.Directory[1]
	routing := NewCategoryRouting(map[models.IssueCategory]models.Authority{
		models.Pothole: water,
	}, models.Directory[2])

	assert.Equal(t, water, routing.Assign(models.Pothole, nil))
	assert.Equal(t, models.Directory[2], routing.Assign(models.Garbage, nil))
}
