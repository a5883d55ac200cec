package rabbitmq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ziflex/lecho/v3"
)

// bufPool is a classic buffer pool pattern that allows more clever reuse of heap memory.
// Instead of allocating new memory everytime we need to encode the events we
// reuse buffers from this buffer pool. If we consume events sequentially there will
// only be one buffer in this pool at all times, but when scaling to multiple go
// routines this memory pool will scale with it.
var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

const (
	contentTypeJSON = "application/json"
)

type Client interface {
	StartPublishMarketEvents(context.Context, MarketEventSource) error
	PublishMarketEvent(context.Context, MarketEventSource, models.MarketEvent) error
	// Close will close all connections to rabbitmq
	Close() error
}

// MarketEventSource is the side of the market service the publisher depends on
type MarketEventSource interface {
	SubscribeMarketEvents() (chan models.MarketEvent, func(), error)
	EncodeMarketEvent(ctx context.Context, w io.Writer, event models.MarketEvent) error
	MarkEventPublished(ctx context.Context, event models.MarketEvent) error
}

type DefaultClient struct {
	amqpClient AMQPClient

	logger *lecho.Logger

	marketEventExchange string
}

type ClientOption = func(client *DefaultClient)

func WithMarketEventExchange(exchange string) ClientOption {
	return func(client *DefaultClient) {
		client.marketEventExchange = exchange
	}
}

func WithLogger(logger *lecho.Logger) ClientOption {
	return func(client *DefaultClient) {
		client.logger = logger
	}
}

// Dial sets up a reconnecting connection to rabbitmq that is ready to publish
func Dial(uri string, options ...ClientOption) (Client, error) {
	amqpClient, err := DialAMQP(uri)
	if err != nil {
		return nil, err
	}
	return NewClient(amqpClient, options...)
}

func NewClient(amqpClient AMQPClient, options ...ClientOption) (Client, error) {
	client := &DefaultClient{
		amqpClient: amqpClient,

		logger: lecho.New(
			os.Stdout,
			lecho.WithLevel(log.DEBUG),
			lecho.WithTimestamp(),
		),

		marketEventExchange: "nftmarket_event",
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (client *DefaultClient) Close() error { return client.amqpClient.Close() }

func (client *DefaultClient) declareExchange() error {
	return client.amqpClient.ExchangeDeclare(
		client.marketEventExchange,
		// topic is a type of exchange that allows routing messages to different queue's bases on a routing key
		"topic",
		// Durable and Non-Auto-Deleted exchanges will survive server restarts and remain
		// declared when there are no remaining bindings.
		true,
		false,
		// Non-Internal exchange's accept direct publishing
		false,
		// Nowait: We set this to false as we want to wait for a server response
		// to check whether the exchange was created succesfully
		false,
		nil,
	)
}

func (client *DefaultClient) StartPublishMarketEvents(ctx context.Context, source MarketEventSource) error {
	if err := client.declareExchange(); err != nil {
		return err
	}

	client.logger.Info("Starting rabbitmq publisher")

	events, unsubscribe, err := source.SubscribeMarketEvents()
	if err != nil {
		return err
	}
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return context.Canceled
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := client.publishToMarketExchange(ctx, source, event); err != nil {
				captureErr(client.logger, err)
			}
		}
	}
}

// PublishMarketEvent publishes a single event, declaring the exchange first.
func (client *DefaultClient) PublishMarketEvent(ctx context.Context, source MarketEventSource, event models.MarketEvent) error {
	if err := client.declareExchange(); err != nil {
		return err
	}
	return client.publishToMarketExchange(ctx, source, event)
}

func (client *DefaultClient) publishToMarketExchange(ctx context.Context, source MarketEventSource, event models.MarketEvent) error {
	payload := bufPool.Get().(*bytes.Buffer)
	payload.Reset()
	defer bufPool.Put(payload)

	err := source.EncodeMarketEvent(ctx, payload, event)
	if err != nil {
		return err
	}

	key := RoutingKey(event)

	err = client.amqpClient.PublishWithContext(ctx,
		client.marketEventExchange,
		key,
		false,
		false,
		amqp.Publishing{
			ContentType: contentTypeJSON,
			MessageId:   event.EventID,
			Timestamp:   event.CreatedAt,
			Body:        payload.Bytes(),
		},
	)
	if err != nil {
		return err
	}

	if err := source.MarkEventPublished(ctx, event); err != nil {
		return err
	}

	client.logger.Debugf("Successfully published %s event %s to rabbitmq", event.Type, event.EventID)

	return nil
}

// RoutingKey is market.<event type>, e.g. market.sold
func RoutingKey(event models.MarketEvent) string {
	return fmt.Sprintf("market.%s", event.Type)
}

func captureErr(logger *lecho.Logger, err error) {
	logger.Error(err)
	sentry.CaptureException(err)
}
