package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/chris/rental-settlement/pkg/commission"
	"github.com/chris/rental-settlement/pkg/settlement"
	dydbstore "github.com/chris/rental-settlement/pkg/storage/dynamodb"
)

var settler *settlement.Settler

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
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

	if ledgersTable == "" || withdrawalsTable == "" || creditsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	rate := commission.DefaultRate
	if raw := os.Getenv("COMMISSION_RATE"); raw != "" {
		rate, err = commission.ParseRate(raw)
		if err != nil {
			log.Fatalf("invalid COMMISSION_RATE: %v", err)
		}
	}
	calc, err := commission.NewCalculator(rate)
	if err != nil {
		log.Fatalf("invalid commission rate: %v", err)
	}

	store := dydbstore.New(dbClient, ledgersTable, withdrawalsTable, creditsTable, bookingsTable, auditTable)
	settler = settlement.NewSettler(store, calc)
}

// HandleRequest processes completed booking events and credits realtor
// escrow. Crediting is idempotent, so SQS redeliveries are safe.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var event settlement.CompletedBookingEvent
		if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
			log.Printf("ERROR: failed to unmarshal booking event from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		log.Printf("Attempting to settle booking %s", event.BookingId)

		if _, err := settler.SettleBooking(ctx, &event); err != nil {
			log.Printf("ERROR: failed to settle booking %s: %v", event.BookingId, err)
			// In a production system, persistent failures would be sent to a DLQ.
			return err
		}

		log.Printf("Successfully settled booking %s", event.BookingId)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
