// Package imagehost talks to the image hosting provider that stores listing
// pictures.
package imagehost

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/rs/zerolog"
)

const defaultTimeout = 10 * time.Second

// Config holds the Cloudinary admin API credentials. BaseURL overrides the
// API host and is only set in tests.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	BaseURL   string
	Timeout   time.Duration
}

// Enabled reports whether enough credentials are set to call the provider.
func (c Config) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// Cloudinary deletes uploaded images through the admin API.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
	log zerolog.Logger
}

func NewCloudinary(cfg Config, log zerolog.Logger) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cld.Admin.Config.API.Timeout = int64(timeout / time.Second)
	if cfg.BaseURL != "" {
		cld.Admin.Config.API.UploadPrefix = cfg.BaseURL
	}
	return &Cloudinary{cld: cld, log: log}, nil
}

// DeleteResources removes the given public ids in one admin call. Ids the
// provider no longer knows are not an error.
func (c *Cloudinary) DeleteResources(ctx context.Context, publicIDs []string) error {
	res, err := c.cld.Admin.DeleteAssets(ctx, admin.DeleteAssetsParams{
		AssetType:    api.Image,
		DeliveryType: api.Upload,
		PublicIDs:    publicIDs,
	})
	if err != nil {
		return fmt.Errorf("delete resources: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("delete resources: %s", res.Error.Message)
	}

	for id, status := range res.Deleted {
		if status == "not_found" {
			c.log.Debug().Str("public_id", id).Msg("image already gone")
		}
	}
	return nil
}

// LogHost stands in for the provider when no credentials are configured.
type LogHost struct {
	log zerolog.Logger
}

func NewLogHost(log zerolog.Logger) *LogHost {
	return &LogHost{log: log}
}

func (h *LogHost) DeleteResources(_ context.Context, publicIDs []string) error {
	h.log.Info().Strs("public_ids", publicIDs).Msg("image host not configured, skipping delete")
	return nil
}
