package controllers

import (
	"context"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"civicdispatch-be/models"
	"civicdispatch-be/store"

	"github.com/gin-gonic/gin"
)

// nextIssueID hands out the current epoch-ms timestamp, bumped when two
// submissions land inside the same millisecond. IDs double as createdAt.
func nextIssueID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

// CreateIssue handles a citizen submission. Dispatch picks the authority at
// creation time; an unknown category falls back to the default authority
// rather than failing the submission.
func CreateIssue(c *gin.Context) {
	var input struct {
		IssueType    string              `json:"issueType" binding:"required"`
		Description  string              `json:"description" binding:"required,max=1000"`
		CitizenName  string              `json:"citizenName" binding:"required,max=100"`
		CitizenPhone string              `json:"citizenPhone" binding:"required,max=20"`
		Coordinates  *models.Coordinates `json:"coordinates,omitempty"`
		EvidenceRef  *string             `json:"evidenceRef,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidCategory(input.IssueType) {
		log.Printf("Unknown issue category %q, dispatching to default authority", input.IssueType)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	current := issueStore.LoadAll(ctx)
	assigned := policy.Assign(models.IssueCategory(input.IssueType), current)

	issue := models.Issue{
		ID:            nextIssueID(),
		IssueType:     models.IssueCategory(input.IssueType),
		Description:   input.Description,
		Coordinates:   input.Coordinates,
		EvidenceRef:   input.EvidenceRef,
		Status:        models.Pending,
		AssignedName:  assigned.Name,
		AssignedPhone: assigned.Phone,
		Comments:      []models.Comment{},
		CitizenName:   input.CitizenName,
		CitizenPhone:  input.CitizenPhone,
	}

	if err := issueStore.SaveAll(ctx, append(current, issue)); err != nil {
		log.Printf("Failed to save issue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	publishChange(ctx)
	points := creditRewardPoints(ctx, input.CitizenPhone)

	c.JSON(http.StatusCreated, gin.H{
		"issue":         issue,
		"pointsAwarded": points,
	})
}

// GetAllIssues returns the collection newest first, with an optional ?id=
// filter for tracking a specific complaint and an optional ?limit=.
func GetAllIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues := issueStore.LoadAll(ctx)

	if idParam := c.Query("id"); idParam != "" {
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
			return
		}
		filtered := make([]models.Issue, 0, 1)
		for _, issue := range issues {
			if issue.ID == id {
				filtered = append(filtered, issue)
			}
		}
		issues = filtered
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].ID > issues[j].ID
	})

	if limitParam := c.Query("limit"); limitParam != "" {
		if limit, err := strconv.Atoi(limitParam); err == nil && limit > 0 && limit < len(issues) {
			issues = issues[:limit]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": len(issues),
	})
}

// RecentIssues returns the newest three reports for the city activity feed.
func RecentIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues := issueStore.LoadAll(ctx)
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].ID > issues[j].ID
	})
	if len(issues) > 3 {
		issues = issues[:3]
	}

	c.JSON(http.StatusOK, issues)
}

// parseIssueID reads the :id path param. The second return is false when the
// param is not an integer (already responded with 400).
func parseIssueID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return 0, false
	}
	return id, true
}

// VoteOnIssue bumps a sentiment counter. Voting on an unknown id leaves the
// collection unchanged and still answers 200: the mutation is a map-if-match
// over the whole collection.
func VoteOnIssue(c *gin.Context) {
	id, ok := parseIssueID(c)
	if !ok {
		return
	}

	var input struct {
		Direction string `json:"direction" binding:"required,oneof=up down"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	changed, err := store.Mutate(ctx, issueStore, id, func(issue *models.Issue) bool {
		if input.Direction == "up" {
			issue.Upvote()
		} else {
			issue.Downvote()
		}
		return true
	})
	if err != nil {
		log.Printf("Failed to record vote: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		return
	}
	if changed {
		publishChange(ctx)
	}

	c.JSON(http.StatusOK, gin.H{"voted": changed})
}

// CommentOnIssue appends a public comment to an issue.
func CommentOnIssue(c *gin.Context) {
	id, ok := parseIssueID(c)
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text" binding:"required,max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	changed, err := store.Mutate(ctx, issueStore, id, func(issue *models.Issue) bool {
		issue.AddComment(input.Text, time.Now())
		return true
	})
	if err != nil {
		log.Printf("Failed to add comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}
	if changed {
		publishChange(ctx)
	}

	c.JSON(http.StatusOK, gin.H{"commented": changed})
}

// ResolveIssue marks a pending issue resolved and stamps resolvedAt once.
// Resolving an already-resolved or unknown issue is a no-op.
func ResolveIssue(c *gin.Context) {
	id, ok := parseIssueID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	changed, err := store.Mutate(ctx, issueStore, id, func(issue *models.Issue) bool {
		return issue.Resolve(time.Now())
	})
	if err != nil {
		log.Printf("Failed to resolve issue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve issue"})
		return
	}
	if changed {
		publishChange(ctx)
	}

	c.JSON(http.StatusOK, gin.H{"resolved": changed})
}

// AssignIssue reassigns an issue to the session authority.
func AssignIssue(c *gin.Context) {
	id, ok := parseIssueID(c)
	if !ok {
		return
	}

	name := c.GetString("authority_name")
	phone := c.GetString("authority_phone")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	changed, err := store.Mutate(ctx, issueStore, id, func(issue *models.Issue) bool {
		if issue.AssignedName == name && issue.AssignedPhone == phone {
			return false
		}
		issue.AssignedName = name
		issue.AssignedPhone = phone
		return true
	})
	if err != nil {
		log.Printf("Failed to reassign issue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reassign issue"})
		return
	}
	if changed {
		publishChange(ctx)
	}

	c.JSON(http.StatusOK, gin.H{"assigned": changed})
}

// AddNote sets the authority note visible to the reporter.
func AddNote(c *gin.Context) {
	id, ok := parseIssueID(c)
	if !ok {
		return
	}

	var input struct {
		Note string `json:"note" binding:"required,max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	changed, err := store.Mutate(ctx, issueStore, id, func(issue *models.Issue) bool {
		issue.AuthorityNote = &input.Note
		return true
	})
	if err != nil {
		log.Printf("Failed to add note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add note"})
		return
	}
	if changed {
		publishChange(ctx)
	}

	c.JSON(http.StatusOK, gin.H{"noted": changed})
}
