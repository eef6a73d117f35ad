package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a fundraising campaign.
type Project struct {
	Id          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title       string               `json:"title" bson:"title"`
	Description string               `json:"description" bson:"description"`
	Goal        int64                `json:"goal" bson:"goal"`
	Raised      int64                `json:"raised" bson:"raised"`
	Donors      []primitive.ObjectID `json:"donors" bson:"donors"`
	Donations   []Donation           `json:"donations" bson:"donations"`
	Category    string               `json:"category" bson:"category"`
	Image       string               `json:"image" bson:"image"`
	CreatedBy   primitive.ObjectID   `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
}

// Donation is an immutable record of a single contribution.
type Donation struct {
	Donor  primitive.ObjectID `json:"donor" bson:"donor"`
	Amount int64              `json:"amount" bson:"amount"`
	Date   time.Time          `json:"date" bson:"date"`
}

// HasDonor reports whether id is already in the project's donor set.
func (p *Project) HasDonor(id primitive.ObjectID) bool {
	for _, d := range p.Donors {
		if d == id {
			return true
		}
	}
	return false
}
