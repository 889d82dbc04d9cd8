package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/chris/rental-settlement/pkg/disburser"
	"github.com/chris/rental-settlement/pkg/notifier"
	"github.com/chris/rental-settlement/pkg/payouts"
	dydbstore "github.com/chris/rental-settlement/pkg/storage/dynamodb"
)

var orchestrator *payouts.Orchestrator

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

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

	store := dydbstore.New(dbClient, ledgersTable, withdrawalsTable, creditsTable, bookingsTable, auditTable)

	disbursementURL := os.Getenv("DISBURSEMENT_URL")
	if disbursementURL == "" {
		log.Fatal("DISBURSEMENT_URL environment variable not set")
	}

	timeout := payouts.DefaultDisburseTimeout
	if raw := os.Getenv("DISBURSEMENT_TIMEOUT_SECONDS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			log.Fatalf("invalid DISBURSEMENT_TIMEOUT_SECONDS: %q", raw)
		}
		timeout = time.Duration(n) * time.Second
	}
	httpDisburser := disburser.NewHTTPDisburser(disbursementURL, timeout)

	sqsClient := sqs.NewFromConfig(cfg)
	notificationsQueueURL := os.Getenv("NOTIFICATIONS_QUEUE_URL")
	if notificationsQueueURL == "" {
		log.Fatal("NOTIFICATIONS_QUEUE_URL environment variable not set")
	}
	sqsNotifier := notifier.NewSQSNotifier(sqsClient, notificationsQueueURL)

	orchestrator = payouts.NewOrchestrator(store, httpDisburser, sqsNotifier)
	orchestrator.DisburseTimeout = timeout
	if raw := os.Getenv("MAX_PAYOUT_RETRIES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 1 {
			log.Fatalf("invalid MAX_PAYOUT_RETRIES: %q", raw)
		}
		orchestrator.MaxRetries = int32(n)
	}
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting retry sweep for failed withdrawals...")

	result, err := orchestrator.RetryFailedWithdrawals(ctx, "retry-sweep")
	if err != nil {
		log.Printf("ERROR: retry sweep failed: %v", err)
		return err
	}

	log.Printf("Retry sweep finished: processed=%d successful=%d failed=%d",
		result.Processed, result.Successful, result.Failed)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
