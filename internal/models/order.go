package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentIntent struct {
	ID       string    `bson:"id" json:"id"`
	Method   string    `bson:"method" json:"method"`
	Amount   Cents     `bson:"amount" json:"amount"`
	Status   string    `bson:"status" json:"status"`
	Created  time.Time `bson:"created" json:"created"`
	Currency string    `bson:"currency" json:"currency"`
}

// Order est un instantané immuable du panier au moment du checkout :
// seuls orderStatus et paymentIntent.status évoluent ensuite.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Products      []CartProduct      `bson:"products" json:"products"`
	PaymentIntent PaymentIntent      `bson:"paymentIntent" json:"paymentIntent"`
	OrderBy       primitive.ObjectID `bson:"orderby" json:"orderby"`
	OrderStatus   string             `bson:"orderStatus" json:"orderStatus"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
