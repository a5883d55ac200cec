package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/getAlby/nftmarket.go/db"
	"github.com/getAlby/nftmarket.go/db/migrations"
	"github.com/getAlby/nftmarket.go/docs"
	"github.com/getAlby/nftmarket.go/lib/ledger"
	"github.com/getAlby/nftmarket.go/lib/logging"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/getAlby/nftmarket.go/lib/tokens"
	"github.com/getAlby/nftmarket.go/lib/transport"
	"github.com/getAlby/nftmarket.go/rabbitmq"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	echoSwagger "github.com/swaggo/echo-swagger"
	ddEcho "gopkg.in/DataDog/dd-trace-go.v1/contrib/labstack/echo.v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// @title        nftmarket.go
// @version      0.1.0
// @description  Fixed-price NFT marketplace with custodial listings and immediate settlement.

// @contact.name   Alby
// @contact.url    https://getalby.com
// @contact.email  hello@getalby.com

// @license.name  GNU GPLv3
// @license.url   https://www.gnu.org/licenses/gpl-3.0.en.html

// @BasePath  /

// @securitydefinitions.oauth2.password  OAuth2Password
// @tokenUrl                             /auth
// @schemes                              https http
func main() {

	c := &service.Config{}

	// Load configruation from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Setup logging to STDOUT or a configured log file
	logger := logging.Logger(c.LogFilePath)

	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatalf("Error initializing db connection: %v", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()
	group, err := migrations.Migrate(startupCtx, dbConn)
	if err != nil {
		logger.Fatalf("Error migrating database: %v", err)
	}
	if !group.IsZero() {
		logger.Infof("Migrated database to %s", group)
	}
	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			IgnoreErrors:     []string{"401"},
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
	}

	// If no RABBITMQ_URI was provided we will not attempt to create a client
	// No rabbitmq features will be available in this case.
	var rabbitmqClient rabbitmq.Client
	if c.RabbitMQUri != "" {
		amqpClient, err := rabbitmq.DialAMQP(c.RabbitMQUri,
			rabbitmq.WithHeartbeat(c.RabbitMQHeartbeat),
			rabbitmq.WithDialTimeout(c.RabbitMQDialTimeout),
		)
		if err != nil {
			logger.Fatal(err)
		}

		rabbitmqClient, err = rabbitmq.NewClient(amqpClient,
			rabbitmq.WithLogger(logger),
			rabbitmq.WithMarketEventExchange(c.RabbitMQMarketEventExchange),
		)
		if err != nil {
			logger.Fatal(err)
		}

		// close the connection gently at the end of the runtime
		defer rabbitmqClient.Close()
	}

	l := ledger.New()
	svc := &service.MarketService{
		Config:         c,
		DB:             dbConn,
		Assets:         l,
		Payments:       l,
		Ledger:         l,
		Admin:          service.NewStaticAdministrator(c.AdministratorAddress),
		Logger:         logger,
		EventPubSub:    service.NewPubsub(),
		RabbitMQClient: rabbitmqClient,
	}
	svc.Custodian = service.NewCustodian(l, c.MarketplaceAddress, logger)
	l.RegisterAssetReceiver(c.MarketplaceAddress, svc.Custodian)

	feeConfig, err := svc.EnsureFeeConfig(startupCtx)
	if err != nil {
		logger.Fatalf("Error loading fee config: %v", err)
	}
	logger.Infof("Marketplace %s, administrator %s, fee %d%%", c.MarketplaceAddress, c.AdministratorAddress, feeConfig.Percentage)

	//init echo server
	e := transport.InitEcho(c, logger)
	//if Datadog is configured, add datadog middleware
	if c.DatadogAgentUrl != "" {
		tracer.Start(tracer.WithAgentAddr(c.DatadogAgentUrl))
		defer tracer.Stop()
		e.Use(ddEcho.Middleware(ddEcho.WithServiceName("nftmarket.go")))
	}

	logMw := transport.CreateLoggingMiddleware(logger)
	// strict rate limit for requests that move value
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(c.StrictRateLimit, c.BurstRateLimit)

	secured := e.Group("", tokens.Middleware(c.JWTSecret), logMw)
	securedWithStrictRateLimit := e.Group("", tokens.Middleware(c.JWTSecret), strictRateLimitMiddleware, logMw)

	transport.RegisterV2Endpoints(svc, e, secured, securedWithStrictRateLimit, strictRateLimitMiddleware, tokens.AdminTokenMiddleware(c.AdminToken), logMw)

	//Swagger API spec
	docs.SwaggerInfo.Host = c.Host
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	var backgroundWg sync.WaitGroup
	backGroundCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	//Start webhook subscription
	if svc.Config.WebhookUrl != "" {
		backgroundWg.Add(1)
		go func() {
			svc.StartWebhookSubscription(backGroundCtx, svc.Config.WebhookUrl)
			svc.Logger.Info("Webhook routine done")
			backgroundWg.Done()
		}()
	}
	//Start rabbit publisher
	if svc.RabbitMQClient != nil {
		backgroundWg.Add(1)
		go func() {
			err := svc.StartRabbitMqPublisher(backGroundCtx)
			if err != nil {
				svc.Logger.Error(err)
				sentry.CaptureException(err)
			}

			svc.Logger.Info("Rabbit market event publisher done")
			backgroundWg.Done()
		}()
	}

	//Start Prometheus server if necessary
	if svc.Config.EnablePrometheus {
		go transport.StartPrometheusEcho(logger, svc, e)
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	<-backGroundCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	//Wait for graceful shutdown of background routines
	backgroundWg.Wait()
	svc.Logger.Info("nftmarket exiting gracefully. Goodbye.")
}
