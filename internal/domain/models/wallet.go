// internal/domain/models/wallet.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Wallet holds a user's balance. Documents live in the wallets collection
// and point back to their owner through UserID; the same shape is used for
// the snapshot embedded on User.
type Wallet struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID      *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	UserBalance float64             `bson:"userBalance" json:"userBalance"`
}
