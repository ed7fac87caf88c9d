package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines a registered player. The username is the public identity
// and never changes once created.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username    string             `bson:"username" json:"username"`
	ArgumentIDs []int64            `bson:"argumentIds,omitempty" json:"argumentIds,omitempty"`
	DebateIDs   []int64            `bson:"debateIds,omitempty" json:"debateIds,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
