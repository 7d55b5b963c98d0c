package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SellerRequestModel is the stored shape of a seller onboarding request.
type SellerRequestModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email"`
	Name        string             `bson:"name"`
	Message     string             `bson:"message"`
	Status      string             `bson:"status"`
	RequestedAt time.Time          `bson:"requestedAt"`
	ProcessedAt *time.Time         `bson:"processedAt,omitempty"`
}
