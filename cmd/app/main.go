package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/chris/rental-settlement/pkg/commission"
	"github.com/chris/rental-settlement/pkg/disburser"
	"github.com/chris/rental-settlement/pkg/handlers"
	"github.com/chris/rental-settlement/pkg/notifier"
	"github.com/chris/rental-settlement/pkg/payouts"
	"github.com/chris/rental-settlement/pkg/reporting"
	dydbstore "github.com/chris/rental-settlement/pkg/storage/dynamodb"
	"github.com/chris/rental-settlement/pkg/suspension"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	ledgersTable := os.Getenv("DYNAMODB_LEDGERS_TABLE_NAME")
	withdrawalsTable := os.Getenv("DYNAMODB_WITHDRAWALS_TABLE_NAME")
	creditsTable := os.Getenv("DYNAMODB_CREDITS_TABLE_NAME")
	bookingsTable := os.Getenv("DYNAMODB_BOOKINGS_TABLE_NAME")
	auditTable := os.Getenv("DYNAMODB_AUDIT_TABLE_NAME")

	if ledgersTable == "" || withdrawalsTable == "" || creditsTable == "" || bookingsTable == "" || auditTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store := dydbstore.New(dbClient, ledgersTable, withdrawalsTable, creditsTable, bookingsTable, auditTable)

	// SQS Client and Notifier
	sqsClient := sqs.NewFromConfig(cfg)
	notificationsQueueURL := os.Getenv("NOTIFICATIONS_QUEUE_URL")
	if notificationsQueueURL == "" {
		log.Fatal("NOTIFICATIONS_QUEUE_URL environment variable not set")
	}
	sqsNotifier := notifier.NewSQSNotifier(sqsClient, notificationsQueueURL)

	// Disbursement provider
	disbursementURL := os.Getenv("DISBURSEMENT_URL")
	if disbursementURL == "" {
		log.Fatal("DISBURSEMENT_URL environment variable not set")
	}
	httpDisburser := disburser.NewHTTPDisburser(disbursementURL, disburseTimeout())

	calc, err := commission.NewCalculator(commissionRate())
	if err != nil {
		log.Fatalf("invalid commission rate: %v", err)
	}

	orchestrator := payouts.NewOrchestrator(store, httpDisburser, sqsNotifier)
	orchestrator.MaxRetries = maxRetries()
	orchestrator.DisburseTimeout = disburseTimeout()

	aggregator := reporting.NewAggregator(store, calc)
	cascader := suspension.NewCascader(store, sqsNotifier)

	router := handlers.NewRouter(logger, aggregator, orchestrator, cascader, store)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func commissionRate() decimal.Decimal {
	raw := os.Getenv("COMMISSION_RATE")
	if raw == "" {
		return commission.DefaultRate
	}
	rate, err := commission.ParseRate(raw)
	if err != nil {
		log.Fatalf("invalid COMMISSION_RATE: %v", err)
	}
	return rate
}

func maxRetries() int32 {
	raw := os.Getenv("MAX_PAYOUT_RETRIES")
	if raw == "" {
		return payouts.DefaultMaxRetries
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 1 {
		log.Fatalf("invalid MAX_PAYOUT_RETRIES: %q", raw)
	}
	return int32(n)
}

func disburseTimeout() time.Duration {
	raw := os.Getenv("DISBURSEMENT_TIMEOUT_SECONDS")
	if raw == "" {
		return payouts.DefaultDisburseTimeout
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Fatalf("invalid DISBURSEMENT_TIMEOUT_SECONDS: %q", raw)
	}
	return time.Duration(n) * time.Second
}
