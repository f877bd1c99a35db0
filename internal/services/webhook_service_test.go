package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payhub/internal/gateways"
	"payhub/internal/models/db_models"
	"payhub/pkg/utils"
)

func stripeRouter() *gateways.Router {
	return gateways.NewRouter(gateways.NewStripeAdapter(gateways.StripeConfig{}))
}

func seedPendingTxn(t *testing.T, repo *fakeTransactionRepo, gateway, reference string) *db_models.Transaction {
	t.Helper()
	txn := &db_models.Transaction{
		AccountID:            uuid.New(),
		Status:               db_models.TxnStatusPending,
		Gateway:              gateway,
		GatewayTransactionID: reference,
	}
	require.NoError(t, repo.Create(txn, context.Background()))
	return txn
}

func stripeEvent(eventType, reference string) []byte {
	return []byte(fmt.Sprintf(`{"type":%q,"data":{"object":{"id":%q}}}`, eventType, reference))
}

func TestWebhookService_CapturedCompletesTransaction(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewWebhookService(repo, stripeRouter())

	txn := seedPendingTxn(t, repo, "stripe", "pi_stripe_777")

	err := svc.HandleWebhook(context.Background(), "stripe",
		stripeEvent("payment_intent.succeeded", "pi_stripe_777"))
	require.NoError(t, err)

	got, _ := repo.GetByID(txn.ID, context.Background())
	assert.Equal(t, db_models.TxnStatusCompleted, got.Status)
}

func TestWebhookService_DeniedFailsTransaction(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewWebhookService(repo, stripeRouter())

	txn := seedPendingTxn(t, repo, "stripe", "pi_stripe_888")

	err := svc.HandleWebhook(context.Background(), "stripe",
		stripeEvent("payment_intent.payment_failed", "pi_stripe_888"))
	require.NoError(t, err)

	got, _ := repo.GetByID(txn.ID, context.Background())
	assert.Equal(t, db_models.TxnStatusFailed, got.Status)
}

func TestWebhookService_DuplicateDeliveryIsIdempotent(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewWebhookService(repo, stripeRouter())

	txn := seedPendingTxn(t, repo, "stripe", "pi_stripe_999")
	payload := stripeEvent("payment_intent.succeeded", "pi_stripe_999")

	require.NoError(t, svc.HandleWebhook(context.Background(), "stripe", payload))
	require.NoError(t, svc.HandleWebhook(context.Background(), "stripe", payload))

	got, _ := repo.GetByID(txn.ID, context.Background())
	assert.Equal(t, db_models.TxnStatusCompleted, got.Status)
}

func TestWebhookService_FirstTerminalEventWins(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
		want   db_models.TransactionStatus
	}{
		{"succeeded then failed", "payment_intent.succeeded", "payment_intent.payment_failed", db_models.TxnStatusCompleted},
		{"failed then succeeded", "payment_intent.payment_failed", "payment_intent.succeeded", db_models.TxnStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeTransactionRepo()
			svc := NewWebhookService(repo, stripeRouter())
			txn := seedPendingTxn(t, repo, "stripe", "pi_stripe_abs")

			require.NoError(t, svc.HandleWebhook(context.Background(), "stripe",
				stripeEvent(tt.first, "pi_stripe_abs")))
			require.NoError(t, svc.HandleWebhook(context.Background(), "stripe",
				stripeEvent(tt.second, "pi_stripe_abs")))

			got, _ := repo.GetByID(txn.ID, context.Background())
			assert.Equal(t, tt.want, got.Status, "terminal states are absorbing")
		})
	}
}

func TestWebhookService_OrphanIsAcknowledged(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewWebhookService(repo, stripeRouter())

	err := svc.HandleWebhook(context.Background(), "stripe",
		stripeEvent("payment_intent.succeeded", "pi_stripe_unknown"))
	assert.NoError(t, err, "orphan webhooks acknowledge receipt")
	assert.Empty(t, repo.txns, "a webhook never fabricates a transaction")
}

func TestWebhookService_UnrecognizedEventIsNoOp(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewWebhookService(repo, stripeRouter())

	txn := seedPendingTxn(t, repo, "stripe", "pi_stripe_info")

	require.NoError(t, svc.HandleWebhook(context.Background(), "stripe",
		stripeEvent("payment_intent.created", "pi_stripe_info")))
	require.NoError(t, svc.HandleWebhook(context.Background(), "stripe", []byte("not json")))

	got, _ := repo.GetByID(txn.ID, context.Background())
	assert.Equal(t, db_models.TxnStatusPending, got.Status)
}

func TestWebhookService_UnsupportedGateway(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewWebhookService(repo, stripeRouter())

	err := svc.HandleWebhook(context.Background(), "square", []byte(`{}`))
	assert.ErrorIs(t, err, utils.ErrUnsupportedGateway)
}

func TestWebhookService_ReferenceScopedByGateway(t *testing.T) {
	repo := newFakeTransactionRepo()
	router := gateways.NewRouter(
		gateways.NewStripeAdapter(gateways.StripeConfig{}),
		gateways.NewRazorpayAdapter(gateways.RazorpayConfig{}),
	)
	svc := NewWebhookService(repo, router)

	// Same reference string recorded under razorpay must not be touched by
	// a stripe-shaped event carrying that reference.
	txn := seedPendingTxn(t, repo, "razorpay", "shared_ref")

	err := svc.HandleWebhook(context.Background(), "stripe",
		stripeEvent("payment_intent.succeeded", "shared_ref"))
	require.NoError(t, err)

	got, _ := repo.GetByID(txn.ID, context.Background())
	assert.Equal(t, db_models.TxnStatusPending, got.Status)
}
