package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating : au plus une note par utilisateur et par produit.
type Rating struct {
	Star     int                `bson:"star" json:"star"`
	Comment  string             `bson:"comment,omitempty" json:"comment,omitempty"`
	PostedBy primitive.ObjectID `bson:"postedby" json:"postedby"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Price       Cents              `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Brand       string             `bson:"brand" json:"brand"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Sold        int                `bson:"sold" json:"sold"`
	Images      []string           `bson:"images,omitempty" json:"images,omitempty"`
	Color       string             `bson:"color,omitempty" json:"color,omitempty"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Ratings     []Rating           `bson:"ratings" json:"ratings"`
	TotalRating int                `bson:"totalrating" json:"totalrating"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
