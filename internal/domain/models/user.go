// internal/domain/models/user.go
package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a platform member as stored in the users collection.
//
// NOTE:
//   - Deletion is logical. IsDeleted is set by the admin soft-delete and the
//     document is never removed.
//   - UserWallet is optional and comes in two shapes: an embedded wallet
//     snapshot, or the ObjectID of a document in the wallets collection
//     (see WalletRef).
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserName   string             `bson:"userName" json:"userName"`
	FirstName  string             `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName   string             `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	TotalNode  int64              `bson:"totalNode" json:"totalNode"`
	OutReach   int64              `bson:"outReach,omitempty" json:"outReach,omitempty"`
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
	IsDeleted  bool               `bson:"isDeleted,omitempty" json:"isDeleted,omitempty"`
	UserWallet *WalletRef         `bson:"userWallet,omitempty" json:"userWallet,omitempty"`
}

// Balance returns the embedded wallet balance. A referenced or missing
// wallet yields 0; resolving a reference is the store's job.
func (u User) Balance() float64 {
	if u.UserWallet == nil || u.UserWallet.Embedded == nil {
		return 0
	}
	return u.UserWallet.Embedded.UserBalance
}

// WalletRef is the userWallet field of a user. At most one of Embedded and
// ID is set. Values of any other BSON type decode to an empty WalletRef.
type WalletRef struct {
	Embedded *Wallet            `json:"wallet,omitempty"`
	ID       *primitive.ObjectID `json:"walletId,omitempty"`
}

// EmbeddedWallet wraps w as an embedded wallet snapshot.
func EmbeddedWallet(w Wallet) *WalletRef { return &WalletRef{Embedded: &w} }

// WalletID wraps id as a reference to a wallets document.
func WalletID(id primitive.ObjectID) *WalletRef { return &WalletRef{ID: &id} }

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (r *WalletRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*r = WalletRef{}
	switch t {
	case bsontype.EmbeddedDocument:
		var w Wallet
		if err := bson.Unmarshal(data, &w); err != nil {
			return fmt.Errorf("decode embedded userWallet: %w", err)
		}
		r.Embedded = &w
	case bsontype.ObjectID:
		if oid, ok := (bson.RawValue{Type: t, Value: data}).ObjectIDOK(); ok {
			r.ID = &oid
		}
	}
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (r WalletRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch {
	case r.Embedded != nil:
		return bson.MarshalValue(r.Embedded)
	case r.ID != nil:
		return bson.MarshalValue(*r.ID)
	default:
		return bson.MarshalValue(nil)
	}
}
