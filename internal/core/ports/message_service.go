package ports

import (
	"context"
	"time"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

// InquiryView is a message as shown to the realtor, with the buyer contact.
type InquiryView struct {
	ID        int64
	Message   string
	CreatedAt time.Time
	Buyer     domain.Contact
}

type MessageService interface {
	Inquire(ctx context.Context, buyer *domain.User, homeID int64, message string) (*domain.Message, error)
	MessagesByHome(ctx context.Context, homeID int64, caller *domain.User) ([]InquiryView, error)
}
