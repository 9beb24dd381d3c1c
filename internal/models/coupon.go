package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Coupon struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Discount int                `bson:"discount" json:"discount"` // pourcentage entier
	Expiry   time.Time          `bson:"expiry" json:"expiry"`
}
