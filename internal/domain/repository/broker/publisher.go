package broker

import "context"

// Publisher feeds asset ids into the human-review queue. Publish failures are
// logged and absorbed; they never fail an upload.
type Publisher interface {
	Publish(ctx context.Context, assetID string) error
}
