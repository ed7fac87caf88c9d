package models

import "time"

// Argument defines a single submission in a debate. Arguments are immutable
// after creation except for score attachment; Score stays nil when the
// judge was unavailable.
type Argument struct {
	ID             int64     `bson:"_id" json:"id"`
	DebateID       int64     `bson:"debateId" json:"debateId"`
	AuthorUsername string    `bson:"authorUsername" json:"authorUsername"`
	Content        string    `bson:"content" json:"content"`
	Score          *int      `bson:"score,omitempty" json:"score,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
