package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItemModel is the stored shape of a shopping cart entry.
type CartItemModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail    string             `bson:"userEmail"`
	MedicineID   primitive.ObjectID `bson:"medicineId"`
	MedicineName string             `bson:"medicineName"`
	Company      string             `bson:"company,omitempty"`
	Price        float64            `bson:"price"`
	Quantity     int                `bson:"quantity"`
	SellerEmail  string             `bson:"sellerEmail"`
}
