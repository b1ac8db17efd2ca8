package ports

import (
	"context"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

// HomeFilter narrows a listing search. Zero values mean "no filter".
type HomeFilter struct {
	City         string
	MinPrice     float64
	MaxPrice     float64
	PropertyType domain.PropertyType
}

// HomeRepository defines persistence operations for listings and their images.
type HomeRepository interface {
	Create(ctx context.Context, home *domain.Home) (*domain.Home, error)
	FindByID(ctx context.Context, id int64) (*domain.Home, error)
	List(ctx context.Context, filter HomeFilter) ([]*domain.Home, error)
	Update(ctx context.Context, id int64, patch domain.HomePatch) (*domain.Home, error)
	Delete(ctx context.Context, id int64) error
}
