package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdvertisementModel is the stored shape of a seller advertisement.
type AdvertisementModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	SellerEmail  string             `bson:"sellerEmail"`
	MedicineName string             `bson:"medicineName"`
	ImageURL     string             `bson:"imageUrl"`
	Description  string             `bson:"description,omitempty"`
	Active       bool               `bson:"active"`
	CreatedAt    time.Time          `bson:"createdAt"`
}
