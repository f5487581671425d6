package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactStatus string

const (
	ContactNew     ContactStatus = "new"
	ContactRead    ContactStatus = "read"
	ContactReplied ContactStatus = "replied"
)

var contactRank = map[ContactStatus]int{
	ContactNew:     0,
	ContactRead:    1,
	ContactReplied: 2,
}

// IsBackward reports whether moving from s to next goes against
// new -> read -> replied. Such moves are allowed but worth noticing.
func (s ContactStatus) IsBackward(next ContactStatus) bool {
	return contactRank[next] < contactRank[s]
}

type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Message   string             `json:"message" bson:"message" validate:"required"`
	Status    ContactStatus      `json:"status" bson:"status" validate:"oneof=new read replied"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type UpdateContactStatusInput struct {
	ID     string        `json:"id" validate:"required"`
	Status ContactStatus `json:"status" validate:"required,oneof=new read replied"`
}

func (s ContactStatus) Valid() bool {
	_, ok := contactRank[s]
	return ok
}
