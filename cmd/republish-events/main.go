package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/getAlby/nftmarket.go/db"
	"github.com/getAlby/nftmarket.go/lib/logging"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/getAlby/nftmarket.go/rabbitmq"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// republishes the market events logged between START_DATE and END_DATE (RFC3339)
// to the market event exchange. DRY_RUN=true only lists them.
func main() {

	c := &service.Config{}
	// Load configruation from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	startDate, endDate, err := loadStartAndEndDateFromEnv()
	if err != nil {
		logrus.Fatalf("Could not load start and end date from env %v", err)
	}
	err = envconfig.Process("", c)
	if err != nil {
		logrus.Fatalf("Error loading environment variables: %v", err)
	}
	if c.RabbitMQUri == "" {
		logrus.Fatal("RABBITMQ_URI is required")
	}
	logger := logging.Logger(c.LogFilePath)
	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logrus.Fatalf("Error initializing db connection: %v", err)
	}

	rabbitmqClient, err := rabbitmq.Dial(c.RabbitMQUri,
		rabbitmq.WithLogger(logger),
		rabbitmq.WithMarketEventExchange(c.RabbitMQMarketEventExchange),
	)
	if err != nil {
		logrus.Fatal(err)
	}
	// close the connection gently at the end of the runtime
	defer rabbitmqClient.Close()

	svc := &service.MarketService{
		Config:         c,
		DB:             dbConn,
		Logger:         logger,
		RabbitMQClient: rabbitmqClient,
		EventPubSub:    service.NewPubsub(),
	}
	ctx := context.Background()
	events, err := svc.EventsBetween(ctx, startDate, endDate)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("Found %d events", len(events))
	if os.Getenv("DRY_RUN") == "true" {
		for _, event := range events {
			logrus.Infof("Would publish %s event %s of %s", event.Type, event.EventID, event.Asset())
		}
		return
	}
	if err := svc.RepublishEvents(ctx, events); err != nil {
		logrus.Fatalf("Republishing stopped: %v", err)
	}
	logrus.Infof("Published %d events", len(events))
}

func loadStartAndEndDateFromEnv() (start, end time.Time, err error) {
	start, err = time.Parse(time.RFC3339, os.Getenv("START_DATE"))
	if err != nil {
		return
	}
	end, err = time.Parse(time.RFC3339, os.Getenv("END_DATE"))
	return
}
