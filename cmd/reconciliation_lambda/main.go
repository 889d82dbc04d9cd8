package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/chris/rental-settlement/pkg/payouts"
	dydbstore "github.com/chris/rental-settlement/pkg/storage/dynamodb"
)

var orchestrator *payouts.Orchestrator

const stuckClaimThreshold = 20 * time.Minute

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

	// The reconciler only transitions stuck rows; it never disburses, so no
	// provider client is wired.
	orchestrator = payouts.NewOrchestrator(store, nil, nil)
}

// HandleRequest is triggered by an EventBridge Schedule. It releases claims
// orphaned by a crash between claim and completion, making them retryable.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation process for stuck withdrawals...")

	result, err := orchestrator.ReconcileStuckWithdrawals(ctx, stuckClaimThreshold)
	if err != nil {
		log.Printf("ERROR: reconciliation failed: %v", err)
		return err
	}

	if result.Processed == 0 {
		log.Println("No stuck withdrawals found.")
		return nil
	}

	log.Printf("Reconciliation finished: processed=%d released=%d failed=%d",
		result.Processed, result.Successful, result.Failed)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
