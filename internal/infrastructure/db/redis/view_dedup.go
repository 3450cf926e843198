package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// viewWindow is how long a viewer's read of a post counts as "the same view".
const viewWindow = time.Hour

// ViewDedup collapses repeated reads of a post by the same viewer within
// viewWindow to a single counted view.
// Key format: view:<post_id>:<viewer_key>:<window_start_unix>
type ViewDedup struct {
	client *redis.Client
}

func NewViewDedup(client *redis.Client) *ViewDedup {
	return &ViewDedup{client: client}
}

// IsDuplicate reports whether this viewer was already counted in the current window.
func (d *ViewDedup) IsDuplicate(ctx context.Context, postID, viewerKey string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(postID, viewerKey, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("view dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the view; the key expires with the window.
func (d *ViewDedup) Mark(ctx context.Context, postID, viewerKey string, ts time.Time) error {
	return d.client.Set(ctx, d.key(postID, viewerKey, ts), "1", viewWindow).Err()
}

func (d *ViewDedup) key(postID, viewerKey string, ts time.Time) string {
	return fmt.Sprintf("view:%s:%s:%d", postID, viewerKey, ts.Truncate(viewWindow).Unix())
}
