package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/homefinder/realtor-api/internal/core/domain"
	"github.com/homefinder/realtor-api/internal/core/ports"
)

// imageFolder is the image host folder listing pictures are uploaded to.
const imageFolder = "homes"

// CleanupQueue accepts image removal work for the background workers.
type CleanupQueue interface {
	Enqueue(job ports.ImageCleanupJob)
}

type HomeService struct {
	homes    ports.HomeRepository
	users    ports.UserRepository
	messages ports.MessageRepository
	cleanup  CleanupQueue
	log      zerolog.Logger
}

func NewHomeService(
	homes ports.HomeRepository,
	users ports.UserRepository,
	messages ports.MessageRepository,
	cleanup CleanupQueue,
	log zerolog.Logger,
) *HomeService {
	return &HomeService{homes: homes, users: users, messages: messages, cleanup: cleanup, log: log}
}

// ListHomes returns the listings matching filter, each with its first image.
func (s *HomeService) ListHomes(ctx context.Context, filter ports.HomeFilter) ([]ports.HomeSummary, error) {
	homes, err := s.homes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list homes: %w", err)
	}

	out := make([]ports.HomeSummary, 0, len(homes))
	for _, h := range homes {
		summary := ports.HomeSummary{
			ID:                h.ID,
			Address:           h.Address,
			City:              h.City,
			Price:             h.Price,
			PropertyType:      h.PropertyType,
			NumberOfBedrooms:  h.NumberOfBedrooms,
			NumberOfBathrooms: h.NumberOfBathrooms,
		}
		if len(h.Images) > 0 {
			summary.Image = h.Images[0].URL
		}
		out = append(out, summary)
	}
	return out, nil
}

// GetHome returns a listing with its realtor's contact card.
func (s *HomeService) GetHome(ctx context.Context, id int64) (*ports.HomeDetail, error) {
	home, err := s.homes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.HomeDetail{Home: home}
	realtor, err := s.users.FindByID(ctx, home.RealtorID)
	if err != nil {
		s.log.Warn().Err(err).Int64("home_id", id).Int64("realtor_id", home.RealtorID).Msg("realtor of listing not found")
		return detail, nil
	}
	detail.Realtor = contactOf(realtor)
	return detail, nil
}

// CreateHome lists a new home on behalf of realtor.
func (s *HomeService) CreateHome(ctx context.Context, in ports.CreateHomeInput, realtor *domain.User) (*domain.Home, error) {
	if realtor == nil {
		return nil, domain.ErrForbidden
	}

	images := make([]domain.Image, 0, len(in.ImageURLs))
	for _, u := range in.ImageURLs {
		images = append(images, domain.Image{URL: u})
	}

	now := time.Now().UTC()
	home, err := s.homes.Create(ctx, &domain.Home{
		Address:           in.Address,
		City:              in.City,
		Price:             in.Price,
		LandSize:          in.LandSize,
		PropertyType:      in.PropertyType,
		NumberOfBedrooms:  in.NumberOfBedrooms,
		NumberOfBathrooms: in.NumberOfBathrooms,
		RealtorID:         realtor.ID,
		Images:            images,
		ListedDate:        now,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, fmt.Errorf("create home: %w", err)
	}

	s.log.Info().Int64("home_id", home.ID).Int64("realtor_id", realtor.ID).Msg("home listed")
	return home, nil
}

// UpdateHome applies patch to a listing owned by caller.
func (s *HomeService) UpdateHome(ctx context.Context, id int64, patch domain.HomePatch, caller *domain.User) (*domain.Home, error) {
	home, err := s.ownedHome(ctx, id, caller)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return home, nil
	}

	updated, err := s.homes.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update home: %w", err)
	}
	return updated, nil
}

// DeleteHome removes a listing owned by caller, then its messages, and
// schedules removal of its pictures from the image host.
func (s *HomeService) DeleteHome(ctx context.Context, id int64, caller *domain.User) error {
	home, err := s.ownedHome(ctx, id, caller)
	if err != nil {
		return err
	}

	if err := s.homes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete home: %w", err)
	}
	// The listing is gone; leftover inquiries are unreachable, not lost.
	if err := s.messages.DeleteByHome(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("home_id", id).Msg("delete messages of removed home")
	}

	if ids := imagePublicIDs(home.Images); len(ids) > 0 {
		s.cleanup.Enqueue(ports.ImageCleanupJob{HomeID: id, PublicIDs: ids})
	}

	s.log.Info().Int64("home_id", id).Int64("realtor_id", caller.ID).Msg("home deleted")
	return nil
}

func (s *HomeService) ownedHome(ctx context.Context, id int64, caller *domain.User) (*domain.Home, error) {
	home, err := s.homes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller == nil || !home.OwnedBy(caller.ID) {
		return nil, domain.ErrForbidden
	}
	return home, nil
}

// imagePublicIDs maps hosted URLs such as
// https://host/.../homes/abc123.jpg to the host's public id "homes/abc123".
func imagePublicIDs(images []domain.Image) []string {
	ids := make([]string, 0, len(images))
	for _, img := range images {
		base := path.Base(img.URL)
		if i := strings.IndexByte(base, '.'); i >= 0 {
			base = base[:i]
		}
		if base == "" || base == "/" || base == "." {
			continue
		}
		ids = append(ids, imageFolder+"/"+base)
	}
	return ids
}

func contactOf(u *domain.User) domain.Contact {
	return domain.Contact{Name: u.Name, Email: u.Email, Phone: u.Phone}
}
