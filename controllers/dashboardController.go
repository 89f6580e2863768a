package controllers

import (
	"context"
	"net/http"
	"time"

	"civicdispatch-be/models"
	"civicdispatch-be/priority"
	"civicdispatch-be/scoring"

	"github.com/gin-gonic/gin"
	"github.com/montanaflynn/stats"
)

// GetDashboard returns the authority's working view: city-wide metrics, the
// authority's issues with derived priority (High clusters first), and the
// authority's performance score.
func GetDashboard(c *gin.Context) {
	name := c.GetString("authority_name")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues := issueStore.LoadAll(ctx)

	total := len(issues)
	pending, resolved := 0, 0
	var mine []models.Issue
	for _, issue := range issues {
		switch issue.Status {
		case models.Pending:
			pending++
		case models.Resolved:
			resolved++
		}
		if issue.AssignedName == name {
			mine = append(mine, issue)
		}
	}

	classified := priority.Classify(issues, name)
	score := scoring.Score(mine)

	c.JSON(http.StatusOK, gin.H{
		"metrics": gin.H{
			"total":    total,
			"pending":  pending,
			"resolved": resolved,
		},
		"issues": classified,
		"score":  score,
	})
}

// GetAlerts returns the live change alerts for this viewer. Alerts expire on
// their own a few seconds after the change arrives.
func GetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alerts": alerts.Active()})
}

// GetAnalytics returns analytical data about issues
func GetAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues := issueStore.LoadAll(ctx)

	// Issues by category
	byCategory := make(map[string]int)
	for _, issue := range issues {
		byCategory[string(issue.IssueType)]++
	}
	issuesByCategory := make([]gin.H, 0, len(byCategory))
	for _, category := range models.Categories {
		if count := byCategory[string(category)]; count > 0 {
			issuesByCategory = append(issuesByCategory, gin.H{
				"name":  string(category),
				"value": count,
			})
		}
	}

	// Resolution time distribution in hours
	var resolutionHours []float64
	for i := range issues {
		if d, ok := issues[i].ResolutionTime(); ok {
			resolutionHours = append(resolutionHours, d.Hours())
		}
	}
	meanHours, medianHours := 0.0, 0.0
	if len(resolutionHours) > 0 {
		meanHours, _ = stats.Mean(resolutionHours)
		medianHours, _ = stats.Median(resolutionHours)
	}

	// Get last 7 days data
	var last7Days []gin.H
	now := time.Now()
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		nextDate := date.AddDate(0, 0, 1)

		count := 0
		for j := range issues {
			created := issues[j].CreatedAt()
			if !created.Before(date) && created.Before(nextDate) {
				count++
			}
		}

		last7Days = append(last7Days, gin.H{
			"date":  date.Format("2006-01-02"),
			"count": count,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"issuesByCategory":    issuesByCategory,
		"last7Days":           last7Days,
		"totalIssues":         len(issues),
		"meanResolutionHrs":   meanHours,
		"medianResolutionHrs": medianHours,
	})
}
