package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryModel is the stored shape of a medicine category.
type CategoryModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Slug        string             `bson:"slug"`
	ImageURL    string             `bson:"imageUrl,omitempty"`
	Description string             `bson:"description,omitempty"`
}

// MedicineModel is the stored shape of a marketplace listing.
type MedicineModel struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	GenericName     string             `bson:"genericName,omitempty"`
	ImageURL        string             `bson:"imageUrl,omitempty"`
	Description     string             `bson:"description,omitempty"`
	CategorySlug    string             `bson:"categorySlug"`
	Company         string             `bson:"company,omitempty"`
	MassUnit        string             `bson:"massUnit,omitempty"`
	PricePerUnit    float64            `bson:"pricePerUnit"`
	DiscountPercent float64            `bson:"discountPercent,omitempty"`
	SellerEmail     string             `bson:"sellerEmail"`
	CreatedAt       time.Time          `bson:"createdAt"`
}
