package domain

import "time"

// Message is an inquiry sent by a buyer to the realtor of a home.
type Message struct {
	ID        int64     `json:"id" bson:"_id"`
	Message   string    `json:"message" bson:"message"`
	HomeID    int64     `json:"home_id" bson:"home_id"`
	RealtorID int64     `json:"realtor_id" bson:"realtor_id"`
	BuyerID   int64     `json:"buyer_id" bson:"buyer_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
