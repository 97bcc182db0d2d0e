package classifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"pixgate/internal/domain/entity"
)

// Client talks to the external content-classification service. Any transport
// failure, timeout or non-2xx response surfaces as ErrClassifierUnavailable;
// the safety gate decides what that means for the upload.
type Client struct {
	http *resty.Client
}

func New(cfg *Config) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(time.Duration(cfg.Timeout) * time.Millisecond).
		SetAuthToken(cfg.APIKey)

	return &Client{http: httpClient}
}

func (c *Client) Classify(ctx context.Context, image []byte) (entity.Classification, error) {
	var result entity.Classification

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(image).
		SetResult(&result).
		Post("/v1/classify")
	if err != nil {
		return entity.Classification{}, fmt.Errorf("%w: %v", entity.ErrClassifierUnavailable, err)
	}
	if resp.IsError() {
		return entity.Classification{}, fmt.Errorf("%w: status %d", entity.ErrClassifierUnavailable, resp.StatusCode())
	}

	return result, nil
}
