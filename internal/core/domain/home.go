package domain

import "time"

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyResidential PropertyType = "RESIDENTIAL"
	PropertyCondo       PropertyType = "CONDO"
)

// Image is a hosted picture attached to a home.
type Image struct {
	URL string `json:"url" bson:"url"`
}

// Contact is the public contact card of a user.
type Contact struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// Home is a property listed by a realtor.
type Home struct {
	ID                int64        `json:"id" bson:"_id"`
	Address           string       `json:"address" bson:"address"`
	City              string       `json:"city" bson:"city"`
	Price             float64      `json:"price" bson:"price"`
	LandSize          float64      `json:"land_size" bson:"land_size"`
	PropertyType      PropertyType `json:"property_type" bson:"property_type"`
	NumberOfBedrooms  int          `json:"number_of_bedrooms" bson:"number_of_bedrooms"`
	NumberOfBathrooms float64      `json:"number_of_bathrooms" bson:"number_of_bathrooms"`
	RealtorID         int64        `json:"realtor_id" bson:"realtor_id"`
	Images            []Image      `json:"images" bson:"images"`
	ListedDate        time.Time    `json:"listed_date" bson:"listed_date"`
	CreatedAt         time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at" bson:"updated_at"`
}

// OwnedBy reports whether the home was listed by the given realtor.
func (h *Home) OwnedBy(userID int64) bool {
	return h.RealtorID == userID
}

// HomePatch carries the optional fields of a listing update.
type HomePatch struct {
	Address           *string
	City              *string
	Price             *float64
	LandSize          *float64
	PropertyType      *PropertyType
	NumberOfBedrooms  *int
	NumberOfBathrooms *float64
}

// Empty reports whether the patch changes nothing.
func (p HomePatch) Empty() bool {
	return p.Address == nil && p.City == nil && p.Price == nil && p.LandSize == nil &&
		p.PropertyType == nil && p.NumberOfBedrooms == nil && p.NumberOfBathrooms == nil
}
