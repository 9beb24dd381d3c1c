package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                   primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Firstname            string               `bson:"firstname" json:"firstname"`
	Lastname             string               `bson:"lastname" json:"lastname"`
	Email                string               `bson:"email" json:"email"`
	Mobile               string               `bson:"mobile" json:"mobile"`
	Password             string               `bson:"password" json:"-"`
	Role                 string               `bson:"role" json:"role,omitempty"`
	IsBlocked            bool                 `bson:"isBlocked" json:"isBlocked"`
	Address              string               `bson:"address,omitempty" json:"address,omitempty"`
	Wishlist             []primitive.ObjectID `bson:"wishlist,omitempty" json:"wishlist,omitempty"`
	RefreshToken         string               `bson:"refreshToken,omitempty" json:"-"`
	PasswordChangedAt    *time.Time           `bson:"passwordChangedAt,omitempty" json:"-"`
	PasswordResetToken   string               `bson:"passwordResetToken,omitempty" json:"-"`
	PasswordResetExpires *time.Time           `bson:"passwordResetExpires,omitempty" json:"-"`
	CreatedAt            time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time            `bson:"updatedAt" json:"updatedAt"`
}
