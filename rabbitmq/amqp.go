package rabbitmq

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ziflex/lecho/v3"
)

const (
	defaultHeartbeat = 10 * time.Second
	defaultLocale    = "en_US"
)

var ErrClosed = errors.New("amqp: connection closed")

type AMQPClient interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Close() error
}

type defaultAMQPClient struct {
	mu   sync.RWMutex
	conn *amqp.Connection
	uri  string
	cfg  amqp.Config

	publishChannel *amqp.Channel

	notifyCloseChan chan *amqp.Error

	reconnecting atomic.Bool
	closed       atomic.Bool

	logger *lecho.Logger
}

type DialOption = func(amqp.Config) amqp.Config

func WithHeartbeat(heartbeat time.Duration) DialOption {
	return func(cfg amqp.Config) amqp.Config {
		cfg.Heartbeat = heartbeat
		return cfg
	}
}

func WithDialTimeout(timeout time.Duration) DialOption {
	return func(cfg amqp.Config) amqp.Config {
		cfg.Dial = amqp.DefaultDial(timeout)
		return cfg
	}
}

// DialAMQP connects to rabbitmq and keeps reconnecting in the background
// whenever the connection is lost.
func DialAMQP(uri string, options ...DialOption) (AMQPClient, error) {
	cfg := amqp.Config{
		Heartbeat: defaultHeartbeat,
		Locale:    defaultLocale,
		Dial:      amqp.DefaultDial(time.Second * 3),
	}
	for _, opt := range options {
		cfg = opt(cfg)
	}
	client := &defaultAMQPClient{
		uri: uri,
		cfg: cfg,
		logger: lecho.New(
			os.Stdout,
			lecho.WithLevel(log.DEBUG),
			lecho.WithTimestamp(),
		),
	}
	err := client.connect()
	if err != nil {
		return client, err
	}

	go client.reconnectionLoop()

	return client, nil
}

func (c *defaultAMQPClient) connect() error {
	conn, err := amqp.DialConfig(c.uri, c.cfg)
	if err != nil {
		return err
	}

	publishChannel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}

	notifyCloseChan := make(chan *amqp.Error, 1)
	conn.NotifyClose(notifyCloseChan)

	c.mu.Lock()
	c.conn = conn
	c.publishChannel = publishChannel
	c.notifyCloseChan = notifyCloseChan
	c.mu.Unlock()

	return nil
}

// reconnectBackOff bounds how long a lost connection is retried before the
// client gives up and reports ErrClosed
func reconnectBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = time.Minute
	return b
}

func (c *defaultAMQPClient) reconnectionLoop() {
	for {
		c.mu.RLock()
		closeNotifications := c.notifyCloseChan
		c.mu.RUnlock()

		amqpErr, ok := <-closeNotifications
		if !ok || amqpErr == nil {
			// closed by us
			return
		}
		c.logger.Errorf("amqp: connection lost: %v", amqpErr)

		c.reconnecting.Store(true)
		if err := backoff.Retry(c.connect, reconnectBackOff()); err != nil {
			c.logger.Errorf("amqp: giving up reconnecting: %v", err)
			c.closed.Store(true)
			c.reconnecting.Store(false)
			return
		}
		c.reconnecting.Store(false)
		c.logger.Info("amqp: reconnected")
	}
}

// waitForReconnect blocks publishers while the background loop redials
func (c *defaultAMQPClient) waitForReconnect(ctx context.Context) error {
	if !c.reconnecting.Load() {
		return nil
	}
	return backoff.Retry(func() error {
		if c.closed.Load() {
			return backoff.Permanent(ErrClosed)
		}
		if c.reconnecting.Load() {
			return errors.New("amqp: publishing during reconnect")
		}
		return nil
	}, backoff.WithContext(reconnectBackOff(), ctx))
}

func (c *defaultAMQPClient) Close() error {
	c.closed.Store(true)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn.Close()
}

// ExchangeDeclare uses a short lived channel so a failed declaration never
// closes the publishing channel.
func (c *defaultAMQPClient) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.ExchangeDeclare(name, kind, durable, autoDelete, internal, noWait, args)
}

func (c *defaultAMQPClient) PublishWithContext(ctx context.Context, exchange string, key string, mandatory bool, immediate bool, msg amqp.Publishing) error {
	if c.closed.Load() {
		return ErrClosed
	}
	if err := c.waitForReconnect(ctx); err != nil {
		return err
	}

	c.mu.RLock()
	ch := c.publishChannel
	c.mu.RUnlock()
	return ch.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}
