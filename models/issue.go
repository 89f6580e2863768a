package models

import (
	"time"
)

// IssueCategory enum
type IssueCategory string

const (
	Pothole             IssueCategory = "Pothole"
	WaterLeakage        IssueCategory = "Water Leakage"
	Garbage             IssueCategory = "Garbage"
	StreetLight         IssueCategory = "Street Light"
	SewageDrainage      IssueCategory = "Sewage/Drainage"
	PublicPark          IssueCategory = "Public Park/Property"
	TrafficSignal       IssueCategory = "Traffic Signal"
	NoiseComplaint      IssueCategory = "Noise Complaint"
	IllegalConstruction IssueCategory = "Illegal Construction"
)

// Categories lists every valid issue category in declaration order.
var Categories = []IssueCategory{
	Pothole, WaterLeakage, Garbage, StreetLight, SewageDrainage,
	PublicPark, TrafficSignal, NoiseComplaint, IllegalConstruction,
}

// ValidCategory reports whether s is one of the known categories.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// IssueStatus enum
type IssueStatus string

const (
	Pending  IssueStatus = "Pending"
	Resolved IssueStatus = "Resolved"
)

// IssuePriority is derived by the priority classifier, never persisted.
type IssuePriority string

const (
	PriorityHigh   IssuePriority = "High"
	PriorityNormal IssuePriority = "Normal"
)

// Coordinates is a geo point supplied by the geolocation collaborator.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Comment is one public comment on an issue. Date is ISO-8601.
type Comment struct {
	Text string `bson:"text" json:"text"`
	Date string `bson:"date" json:"date"`
}

// Issue represents a civic issue reported by a citizen. The ID doubles as
// the creation timestamp in epoch milliseconds, so creation events must be
// serialized by the caller for IDs to stay unique.
type Issue struct {
	ID            int64         `bson:"id" json:"id"`
	IssueType     IssueCategory `bson:"issueType" json:"issueType"`
	Description   string        `bson:"description" json:"description"`
	Coordinates   *Coordinates  `bson:"coordinates" json:"coordinates"`
	EvidenceRef   *string       `bson:"evidenceRef" json:"evidenceRef"`
	Status        IssueStatus   `bson:"status" json:"status"`
	AssignedName  string        `bson:"assignedName" json:"assignedName"`
	AssignedPhone string        `bson:"assignedPhone" json:"assignedPhone"`
	AuthorityNote *string       `bson:"authorityNote" json:"authorityNote"`
	Upvotes       int           `bson:"upvotes" json:"upvotes"`
	Downvotes     int           `bson:"downvotes" json:"downvotes"`
	Comments      []Comment     `bson:"comments" json:"comments"`
	CitizenName   string        `bson:"citizenName" json:"citizenName"`
	CitizenPhone  string        `bson:"citizenPhone" json:"citizenPhone"`
	ResolvedAt    *int64        `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
}

// CreatedAt derives the creation time from the ID.
func (i *Issue) CreatedAt() time.Time {
	return time.UnixMilli(i.ID)
}

// Resolve transitions the issue to Resolved and stamps resolvedAt exactly
// once. Resolving an already-resolved issue is a no-op.
func (i *Issue) Resolve(now time.Time) bool {
	if i.Status == Resolved {
		return false
	}
	i.Status = Resolved
	ts := now.UnixMilli()
	i.ResolvedAt = &ts
	return true
}

// AddComment appends a public comment. Comments are append-only.
func (i *Issue) AddComment(text string, now time.Time) {
	i.Comments = append(i.Comments, Comment{
		Text: text,
		Date: now.UTC().Format(time.RFC3339),
	})
}

// Upvote and Downvote bump the sentiment counters; counters only grow.
func (i *Issue) Upvote()   { i.Upvotes++ }
func (i *Issue) Downvote() { i.Downvotes++ }

// ResolutionTime returns how long the issue took to resolve, or false if
// it is still pending.
func (i *Issue) ResolutionTime() (time.Duration, bool) {
	if i.ResolvedAt == nil {
		return 0, false
	}
	return time.UnixMilli(*i.ResolvedAt).Sub(i.CreatedAt()), true
}
