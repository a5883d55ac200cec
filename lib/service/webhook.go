package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/getAlby/nftmarket.go/common"
	"github.com/getAlby/nftmarket.go/db/models"
)

func (svc *MarketService) StartWebhookSubscription(ctx context.Context, url string) {
	svc.Logger.Infof("Starting webhook subscription with webhook url %s", url)
	events, unsubscribe, err := svc.SubscribeMarketEvents()
	if err != nil {
		svc.Logger.Error(err)
		return
	}
	defer unsubscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-events:
			if !svc.webhookWants(event.Type) {
				continue
			}
			svc.postToWebhook(ctx, url, event)
		}
	}
}

func (svc *MarketService) webhookWants(eventType string) bool {
	for _, wanted := range svc.Config.WebhookEventTypes {
		if wanted == common.EventTopicAll || wanted == eventType {
			return true
		}
	}
	return false
}

func (svc *MarketService) postToWebhook(ctx context.Context, url string, event models.MarketEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		svc.Logger.Error(err)
		return
	}

	exponentialBackoff := backoff.NewExponentialBackOff()
	exponentialBackoff.MaxInterval = time.Second * 10
	exponentialBackoff.MaxElapsedTime = time.Minute

	post := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			msg, _ := io.ReadAll(resp.Body)
			err = fmt.Errorf("webhook status code was %d, body: %s", resp.StatusCode, msg)
			// client errors will not go away by retrying
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}
	err = backoff.Retry(post, backoff.WithContext(exponentialBackoff, ctx))
	if err != nil {
		svc.Logger.Errorf("Failed to post %s event %s to webhook: %v", event.Type, event.EventID, err)
	}
}
