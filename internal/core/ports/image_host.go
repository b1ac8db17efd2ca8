package ports

import "context"

// ImageHost is the external image hosting provider.
type ImageHost interface {
	DeleteResources(ctx context.Context, publicIDs []string) error
}

// ImageCleanupJob asks the image host to drop the pictures of a deleted home.
type ImageCleanupJob struct {
	HomeID    int64
	PublicIDs []string
}
