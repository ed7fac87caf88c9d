package models

import "time"

// Debate kinds. Private debates alternate turns between exactly two
// participants; public debates accept arguments from anyone at any time.
const (
	DebateTypePrivate = "PRIVATE"
	DebateTypePublic  = "PUBLIC"
)

// Debate defines a single debate record. TurnUsername is the only mutable
// field after creation and is always a member of Participants.
type Debate struct {
	ID             int64      `bson:"_id" json:"id"`
	Title          string     `bson:"title" json:"title"`
	DebateType     string     `bson:"debateType" json:"debateType"`
	AuthorUsername string     `bson:"authorUsername" json:"authorUsername"`
	TurnUsername   string     `bson:"turnUsername" json:"turnUsername"`
	Participants   []string   `bson:"participants" json:"participants"`
	ArgumentIDs    []int64    `bson:"argumentIds,omitempty" json:"-"`
	Arguments      []Argument `bson:"-" json:"arguments"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// HasParticipant reports whether username is a member of the debate.
func (d *Debate) HasParticipant(username string) bool {
	for _, p := range d.Participants {
		if p == username {
			return true
		}
	}
	return false
}

// OtherParticipant returns the participant that is not username. It is only
// meaningful for private debates, where exactly two participants exist.
func (d *Debate) OtherParticipant(username string) (string, bool) {
	for _, p := range d.Participants {
		if p != username {
			return p, true
		}
	}
	return "", false
}
