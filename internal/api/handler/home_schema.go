package handler

import "time"

type imageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type homeQuery struct {
	City         string  `query:"city"`
	MinPrice     float64 `query:"min_price"     validate:"gte=0"`
	MaxPrice     float64 `query:"max_price"     validate:"gte=0"`
	PropertyType string  `query:"property_type" validate:"omitempty,oneof=RESIDENTIAL CONDO"`
}

type createHomeRequest struct {
	Address           string         `json:"address"             validate:"required"`
	City              string         `json:"city"                validate:"required"`
	Price             float64        `json:"price"               validate:"gt=0"`
	LandSize          float64        `json:"land_size"           validate:"gt=0"`
	PropertyType      string         `json:"property_type"       validate:"required,oneof=RESIDENTIAL CONDO"`
	NumberOfBedrooms  int            `json:"number_of_bedrooms"  validate:"gte=0"`
	NumberOfBathrooms float64        `json:"number_of_bathrooms" validate:"gte=0"`
	Images            []imageRequest `json:"images"              validate:"dive"`
}

type updateHomeRequest struct {
	Address           *string  `json:"address"             validate:"omitempty,min=1"`
	City              *string  `json:"city"                validate:"omitempty,min=1"`
	Price             *float64 `json:"price"               validate:"omitempty,gt=0"`
	LandSize          *float64 `json:"land_size"           validate:"omitempty,gt=0"`
	PropertyType      *string  `json:"property_type"       validate:"omitempty,oneof=RESIDENTIAL CONDO"`
	NumberOfBedrooms  *int     `json:"number_of_bedrooms"  validate:"omitempty,gte=0"`
	NumberOfBathrooms *float64 `json:"number_of_bathrooms" validate:"omitempty,gte=0"`
}

type homeSummaryResponse struct {
	ID                int64   `json:"id"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	Price             float64 `json:"price"`
	PropertyType      string  `json:"property_type"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms"`
	NumberOfBathrooms float64 `json:"number_of_bathrooms"`
	Image             string  `json:"image"`
}

type contactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type homeResponse struct {
	ID                int64     `json:"id"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	Price             float64   `json:"price"`
	LandSize          float64   `json:"land_size"`
	PropertyType      string    `json:"property_type"`
	NumberOfBedrooms  int       `json:"number_of_bedrooms"`
	NumberOfBathrooms float64   `json:"number_of_bathrooms"`
	ListedDate        time.Time `json:"listed_date"`
	Images            []string  `json:"images"`
}

type homeDetailResponse struct {
	homeResponse
	Realtor contactResponse `json:"realtor"`
}

type inquireRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type messageResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	HomeID    int64     `json:"home_id"`
	CreatedAt time.Time `json:"created_at"`
}

type inquiryResponse struct {
	ID        int64           `json:"id"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"created_at"`
	Buyer     contactResponse `json:"buyer"`
}
