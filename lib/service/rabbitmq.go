package service

import (
	"context"

	"github.com/getAlby/nftmarket.go/db/models"
)

func (svc *MarketService) StartRabbitMqPublisher(ctx context.Context) error {
	return svc.RabbitMQClient.StartPublishMarketEvents(ctx, svc)
}

// RepublishEvents publishes logged events again, e.g. after a broker outage.
func (svc *MarketService) RepublishEvents(ctx context.Context, events []models.MarketEvent) error {
	for _, event := range events {
		if err := svc.RabbitMQClient.PublishMarketEvent(ctx, svc, event); err != nil {
			return err
		}
	}
	return nil
}
