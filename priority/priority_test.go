package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicdispatch-be/dispatch"
	"civicdispatch-be/models"
)

var nextID int64 = 1700000000000

func report(category models.IssueCategory, coords *models.Coordinates, authority string) models.Issue {
	nextID++
	return models.Issue{
		ID:           nextID,
		IssueType:    category,
		Coordinates:  coords,
		Status:       models.Pending,
		AssignedName: authority,
	}
}

func at(lat, lng float64) *models.Coordinates {
	return &models.Coordinates{Lat: lat, Lng: lng}
}

func TestClassifyNoLocationNeverHigh(t *testing.T) {
	var all []models.Issue
	for i := 0; i < 5; i++ {
		all = append(all, report(models.Garbage, nil, "Amit (Sanitation)"))
	}

	classified := Classify(all, "Amit (Sanitation)")

	require.Len(t, classified, 5)
	for _, ci := range classified {
		assert.Equal(t, models.PriorityNormal, ci.Priority)
	}
}

func TestClassifyClusterOfThreeGoesHigh(t *testing.T) {
	all := []models.Issue{
		report(models.Pothole, at(28.613901, 77.209001), "Rajesh (Roads)"),
		report(models.Pothole, at(28.613899, 77.208999), "Rajesh (Roads)"),
		report(models.Pothole, at(28.614010, 77.209020), "Rajesh (Roads)"),
		report(models.Pothole, at(12.971600, 77.594600), "Rajesh (Roads)"),
	}

	classified := Classify(all, "Rajesh (Roads)")

	require.Len(t, classified, 4)
	assert.Equal(t, models.PriorityHigh, classified[0].Priority)
	assert.Equal(t, models.PriorityHigh, classified[1].Priority)
	assert.Equal(t, models.PriorityHigh, classified[2].Priority)
	// Lone report at a different location stays normal.
	assert.Equal(t, models.PriorityNormal, classified[3].Priority)
	assert.Equal(t, 12.9716, classified[3].Coordinates.Lat)
}

func TestClassifyTwoIsNotACluster(t *testing.T) {
	all := []models.Issue{
		report(models.StreetLight, at(19.076, 72.8777), "Rajesh (Roads)"),
		report(models.StreetLight, at(19.076, 72.8777), "Rajesh (Roads)"),
	}

	classified := Classify(all, "Rajesh (Roads)")

	require.Len(t, classified, 2)
	assert.Equal(t, models.PriorityNormal, classified[0].Priority)
	assert.Equal(t, models.PriorityNormal, classified[1].Priority)
}

func TestClassifyCategorySplitsClusters(t *testing.T) {
	// Same spot, different categories: never the same cluster.
	all := []models.Issue{
		report(models.Pothole, at(28.6139, 77.2090), "Rajesh (Roads)"),
		report(models.StreetLight, at(28.6139, 77.2090), "Rajesh (Roads)"),
		report(models.TrafficSignal, at(28.6139, 77.2090), "Rajesh (Roads)"),
	}

	classified := Classify(all, "Rajesh (Roads)")

	require.Len(t, classified, 3)
	for _, ci := range classified {
		assert.Equal(t, models.PriorityNormal, ci.Priority)
	}
}

func TestClassifyCountsAcrossWholeCollection(t *testing.T) {
	// Two of the cluster's reports belong to another authority, but the
	// cluster count still reaches three for the one we view.
	all := []models.Issue{
		report(models.WaterLeakage, at(28.61, 77.20), "Priya (Water)"),
		report(models.WaterLeakage, at(28.61, 77.20), "Vikram (Municipal)"),
		report(models.WaterLeakage, at(28.61, 77.20), "Vikram (Municipal)"),
	}

	classified := Classify(all, "Priya (Water)")

	require.Len(t, classified, 1)
	assert.Equal(t, models.PriorityHigh, classified[0].Priority)
}

func TestClassifyStablePartition(t *testing.T) {
	cluster := at(28.6139, 77.2090)
	a := report(models.Pothole, at(1, 1), "Rajesh (Roads)")
	b := report(models.Pothole, cluster, "Rajesh (Roads)")
	c := report(models.Pothole, at(2, 2), "Rajesh (Roads)")
	d := report(models.Pothole, cluster, "Rajesh (Roads)")
	e := report(models.Pothole, cluster, "Rajesh (Roads)")
	all := []models.Issue{a, b, c, d, e}

	classified := Classify(all, "Rajesh (Roads)")

	require.Len(t, classified, 5)
	// High band first, original order preserved inside each band.
	assert.Equal(t, []int64{b.ID, d.ID, e.ID, a.ID, c.ID}, []int64{
		classified[0].ID, classified[1].ID, classified[2].ID,
		classified[3].ID, classified[4].ID,
	})
}

func TestRepeatedWaterLeakageScenario(t *testing.T) {
	// Three Water Leakage reports at the same rounded spot: category routing
	// sends each to the Water authority, and once all three are visible that
	// authority sees them all flagged High.
	routing := dispatch.DefaultRouting()
	spot := at(28.61, 77.20)

	var all []models.Issue
	for i := 0; i < 3; i++ {
		assigned := routing.Assign(models.WaterLeakage, all)
		assert.Equal(t, "Priya (Water)", assigned.Name)
		issue := report(models.WaterLeakage, spot, assigned.Name)
		issue.AssignedPhone = assigned.Phone
		all = append(all, issue)
	}

	classified := Classify(all, "Priya (Water)")

	require.Len(t, classified, 3)
	for _, ci := range classified {
		assert.Equal(t, models.PriorityHigh, ci.Priority)
	}
}
