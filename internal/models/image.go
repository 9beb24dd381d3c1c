package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductImage référence un objet stocké dans MinIO.
type ProductImage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	URL        string             `bson:"url" json:"url"`
	ObjectName string             `bson:"object_name" json:"-"`
	FileName   string             `bson:"file_name" json:"file_name"`
	UploadedAt time.Time          `bson:"uploaded_at" json:"uploaded_at"`
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
}
