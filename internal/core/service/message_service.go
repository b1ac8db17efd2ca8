package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/homefinder/realtor-api/internal/core/domain"
	"github.com/homefinder/realtor-api/internal/core/ports"
)

// InquiryDedup suppresses repeated submissions of the same inquiry.
type InquiryDedup interface {
	// Claim returns true the first time a (buyer, home, message) triple is
	// seen within the dedup window.
	Claim(ctx context.Context, buyerID, homeID int64, message string) (bool, error)
	// Release forgets a claim so the same inquiry can be sent again.
	Release(ctx context.Context, buyerID, homeID int64, message string) error
}

type MessageService struct {
	homes    ports.HomeRepository
	users    ports.UserRepository
	messages ports.MessageRepository
	dedup    InquiryDedup
	log      zerolog.Logger
}

func NewMessageService(
	homes ports.HomeRepository,
	users ports.UserRepository,
	messages ports.MessageRepository,
	dedup InquiryDedup,
	log zerolog.Logger,
) *MessageService {
	return &MessageService{homes: homes, users: users, messages: messages, dedup: dedup, log: log}
}

// Inquire sends message from buyer to the realtor who listed homeID.
func (s *MessageService) Inquire(ctx context.Context, buyer *domain.User, homeID int64, message string) (*domain.Message, error) {
	if buyer == nil {
		return nil, domain.ErrForbidden
	}

	home, err := s.homes.FindByID(ctx, homeID)
	if err != nil {
		return nil, err
	}

	first, err := s.dedup.Claim(ctx, buyer.ID, homeID, message)
	claimed := err == nil
	if err != nil {
		s.log.Warn().Err(err).Int64("home_id", homeID).Msg("inquiry dedup check failed, sending anyway")
	} else if !first {
		return nil, domain.ErrDuplicateInquiry
	}

	msg, err := s.messages.Create(ctx, &domain.Message{
		Message:   message,
		HomeID:    homeID,
		RealtorID: home.RealtorID,
		BuyerID:   buyer.ID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if claimed {
			if relErr := s.dedup.Release(ctx, buyer.ID, homeID, message); relErr != nil {
				s.log.Warn().Err(relErr).Int64("home_id", homeID).Int64("buyer_id", buyer.ID).Msg("release inquiry claim")
			}
		}
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.log.Info().
		Int64("home_id", homeID).
		Int64("buyer_id", buyer.ID).
		Int64("realtor_id", home.RealtorID).
		Msg("inquiry sent")
	return msg, nil
}

// MessagesByHome lists the inquiries received for a home owned by caller.
func (s *MessageService) MessagesByHome(ctx context.Context, homeID int64, caller *domain.User) ([]ports.InquiryView, error) {
	home, err := s.homes.FindByID(ctx, homeID)
	if err != nil {
		return nil, err
	}
	if caller == nil || !home.OwnedBy(caller.ID) {
		return nil, domain.ErrForbidden
	}

	msgs, err := s.messages.ListByHome(ctx, homeID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	buyers := make(map[int64]domain.Contact)
	out := make([]ports.InquiryView, 0, len(msgs))
	for _, m := range msgs {
		contact, ok := buyers[m.BuyerID]
		if !ok {
			if u, err := s.users.FindByID(ctx, m.BuyerID); err == nil {
				contact = contactOf(u)
			} else {
				s.log.Debug().Err(err).Int64("buyer_id", m.BuyerID).Msg("buyer of inquiry not found")
			}
			buyers[m.BuyerID] = contact
		}
		out = append(out, ports.InquiryView{
			ID:        m.ID,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
			Buyer:     contact,
		})
	}
	return out, nil
}
