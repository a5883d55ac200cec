package service

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	DatabaseUri                 string        `envconfig:"DATABASE_URI" required:"true"`
	DatabaseMaxConns            int           `envconfig:"DATABASE_MAX_CONNS" default:"10"`
	DatabaseMaxIdleConns        int           `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	DatabaseConnMaxLifetime     int           `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"1800"` // 30 minutes
	SentryDSN                   string        `envconfig:"SENTRY_DSN"`
	DatadogAgentUrl             string        `envconfig:"DATADOG_AGENT_URL"`
	SentryTracesSampleRate      float64       `envconfig:"SENTRY_TRACES_SAMPLE_RATE"`
	LogFilePath                 string        `envconfig:"LOG_FILE_PATH"`
	JWTSecret                   []byte        `envconfig:"JWT_SECRET" required:"true"`
	JWTAccessTokenExpiry        int           `envconfig:"JWT_ACCESS_EXPIRY" default:"172800"` // in seconds, default 2 days
	AdminToken                  string        `envconfig:"ADMIN_TOKEN"`
	AdministratorAddress        string        `envconfig:"ADMINISTRATOR_ADDRESS" required:"true"`
	MarketplaceAddress          string        `envconfig:"MARKETPLACE_ADDRESS" default:"marketplace"`
	DefaultFeePercentage        int64         `envconfig:"DEFAULT_FEE_PERCENTAGE" default:"2"`
	ActionLockTimeout           time.Duration `envconfig:"ACTION_LOCK_TIMEOUT" default:"30s"`
	AuthMaxClockSkew            int64         `envconfig:"AUTH_MAX_CLOCK_SKEW" default:"300"` // in seconds
	Host                        string        `envconfig:"HOST" default:"localhost:3000"`
	Port                        int           `envconfig:"PORT" default:"3000"`
	DefaultRateLimit            int           `envconfig:"DEFAULT_RATE_LIMIT" default:"10"`
	StrictRateLimit             int           `envconfig:"STRICT_RATE_LIMIT" default:"10"`
	BurstRateLimit              int           `envconfig:"BURST_RATE_LIMIT" default:"1"`
	InfoCacheTTL                int           `envconfig:"INFO_CACHE_TTL" default:"10"` // in seconds, 0 disables
	EnablePrometheus            bool          `envconfig:"ENABLE_PROMETHEUS" default:"false"`
	PrometheusPort              int           `envconfig:"PROMETHEUS_PORT" default:"9092"`
	WebhookUrl                  string        `envconfig:"WEBHOOK_URL"`
	WebhookEventTypes           EventTypeList `envconfig:"WEBHOOK_EVENT_TYPES" default:"*"`
	RabbitMQUri                 string        `envconfig:"RABBITMQ_URI"`
	RabbitMQMarketEventExchange string        `envconfig:"RABBITMQ_MARKET_EVENT_EXCHANGE" default:"nftmarket_event"`
	RabbitMQHeartbeat           time.Duration `envconfig:"RABBITMQ_HEARTBEAT" default:"10s"`
	RabbitMQDialTimeout         time.Duration `envconfig:"RABBITMQ_DIAL_TIMEOUT" default:"3s"`
}

// envconfig slice decoder uses comma as the separator but trims nothing,
// "listed, sold" should subscribe to both topics

type EventTypeList []string

func (l *EventTypeList) Decode(value string) error {
	result := EventTypeList{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if strings.ContainsAny(item, " \t") {
			return fmt.Errorf("invalid event type: %q", item)
		}
		result = append(result, item)
	}
	*l = result
	return nil
}
