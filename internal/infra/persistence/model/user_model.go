// Package model contains the persistence representations of the domain
// entities, annotated for the document store.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel is the stored shape of an account document in the users collection.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	PhotoURL  string             `bson:"photoUrl,omitempty"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"createdAt"`
}
