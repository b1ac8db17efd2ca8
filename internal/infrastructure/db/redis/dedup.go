package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InquiryWindow is how long an identical inquiry is rejected as a resend.
const InquiryWindow = 10 * time.Minute

// InquiryDedup rejects repeated inquiries backed by Redis.
// Key format: inquiry:<buyer_id>:<home_id>:<sha256(message)>
type InquiryDedup struct {
	client *redis.Client
	window time.Duration
}

// NewInquiryDedup creates an InquiryDedup wrapping the given Redis client.
// A non-positive window falls back to InquiryWindow.
func NewInquiryDedup(client *redis.Client, window time.Duration) *InquiryDedup {
	if window <= 0 {
		window = InquiryWindow
	}
	return &InquiryDedup{client: client, window: window}
}

// Claim records the inquiry and reports whether it is the first one inside
// the window.
func (d *InquiryDedup) Claim(ctx context.Context, buyerID, homeID int64, message string) (bool, error) {
	ok, err := d.client.SetNX(ctx, inquiryKey(buyerID, homeID, message), "1", d.window).Result()
	if err != nil {
		return false, fmt.Errorf("inquiry dedup: %w", err)
	}
	return ok, nil
}

// Release drops a claim whose inquiry was never stored, so the buyer can
// send it again.
func (d *InquiryDedup) Release(ctx context.Context, buyerID, homeID int64, message string) error {
	if err := d.client.Del(ctx, inquiryKey(buyerID, homeID, message)).Err(); err != nil {
		return fmt.Errorf("inquiry dedup release: %w", err)
	}
	return nil
}

func inquiryKey(buyerID, homeID int64, message string) string {
	sum := sha256.Sum256([]byte(message))
	return fmt.Sprintf("inquiry:%d:%d:%s", buyerID, homeID, hex.EncodeToString(sum[:]))
}
