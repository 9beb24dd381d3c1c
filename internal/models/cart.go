package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartProduct est une ligne de panier : le prix unitaire est figé au moment
// de la création du panier, pas relu depuis le catalogue ensuite.
type CartProduct struct {
	Product primitive.ObjectID `bson:"product" json:"product"`
	Count   int                `bson:"count" json:"count"`
	Color   string             `bson:"color,omitempty" json:"color,omitempty"`
	Price   Cents              `bson:"price" json:"price"`
}

type Cart struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Products           []CartProduct      `bson:"products" json:"products"`
	CartTotal          Cents              `bson:"cartTotal" json:"cartTotal"`
	TotalAfterDiscount *Cents             `bson:"totalAfterDiscount,omitempty" json:"totalAfterDiscount,omitempty"`
	OrderBy            primitive.ObjectID `bson:"orderby" json:"orderby"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
