package ports

import (
	"context"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

// MessageRepository persists buyer inquiries.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	ListByHome(ctx context.Context, homeID int64) ([]*domain.Message, error)
	DeleteByHome(ctx context.Context, homeID int64) error
}
