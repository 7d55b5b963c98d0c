package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentModel is the stored shape of a settled payment.
type PaymentModel struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	UserEmail     string               `bson:"userEmail"`
	Amount        float64              `bson:"amount"`
	Currency      string               `bson:"currency"`
	TransactionID string               `bson:"transactionId"`
	CartIDs       []primitive.ObjectID `bson:"cartIds"`
	MedicineNames []string             `bson:"medicineNames,omitempty"`
	Status        string               `bson:"status"`
	PaidAt        time.Time            `bson:"paidAt"`
}
