package ports

import (
	"context"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

// CreateHomeInput carries a new listing.
type CreateHomeInput struct {
	Address           string
	City              string
	Price             float64
	LandSize          float64
	PropertyType      domain.PropertyType
	NumberOfBedrooms  int
	NumberOfBathrooms float64
	ImageURLs         []string
}

// HomeSummary is the list view: the first image only.
type HomeSummary struct {
	ID                int64
	Address           string
	City              string
	Price             float64
	PropertyType      domain.PropertyType
	NumberOfBedrooms  int
	NumberOfBathrooms float64
	Image             string
}

// HomeDetail is the single-listing view with the realtor contact card.
type HomeDetail struct {
	Home    *domain.Home
	Realtor domain.Contact
}

type HomeService interface {
	ListHomes(ctx context.Context, filter HomeFilter) ([]HomeSummary, error)
	GetHome(ctx context.Context, id int64) (*HomeDetail, error)
	CreateHome(ctx context.Context, in CreateHomeInput, realtor *domain.User) (*domain.Home, error)
	UpdateHome(ctx context.Context, id int64, patch domain.HomePatch, caller *domain.User) (*domain.Home, error)
	DeleteHome(ctx context.Context, id int64, caller *domain.User) error
}
