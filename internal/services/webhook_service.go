package services

import (
	"context"
	"log"

	"payhub/internal/gateways"
	"payhub/internal/models/db_models"
	"payhub/internal/repositories"
	"payhub/pkg/utils"
)

type WebhookServiceInterface interface {
	HandleWebhook(ctx context.Context, gatewayID string, payload []byte) error
}

// WebhookService reconciles asynchronous gateway notifications onto stored
// transactions. Providers deliver at least once and possibly out of order;
// the terminal states are absorbing, so the first terminal event wins and
// every later delivery resolves to a no-op.
type WebhookService struct {
	txnRepo repositories.TransactionRepositoryInterface
	router  *gateways.Router
}

func NewWebhookService(txnRepo repositories.TransactionRepositoryInterface, router *gateways.Router) WebhookServiceInterface {
	return &WebhookService{
		txnRepo: txnRepo,
		router:  router,
	}
}

func (w *WebhookService) HandleWebhook(ctx context.Context, gatewayID string, payload []byte) error {
	adapter, err := w.router.Resolve(gatewayID)
	if err != nil {
		return err
	}

	event, ok := adapter.HandleWebhook(payload)
	if !ok {
		// Not a terminal event for this provider (or malformed). Acknowledge
		// so the provider does not retry; there is nothing to reconcile.
		return nil
	}

	txn, err := w.txnRepo.GetByGatewayReference(adapter.Name(), event.Reference, ctx)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if txn == nil {
		// Orphan webhook: acknowledge, record the anomaly, never fabricate
		// a transaction from a notification.
		log.Printf("webhook: orphan %s event for unknown reference %s", gatewayID, event.Reference)
		return nil
	}

	target := db_models.TxnStatusCompleted
	if event.Kind == gateways.EventDenied {
		target = db_models.TxnStatusFailed
	}

	if txn.Status.IsTerminal() {
		log.Printf("webhook: transaction %s already %s, ignoring %s event",
			txn.ID, txn.Status, event.Kind)
		return nil
	}

	applied, err := w.txnRepo.FinalizeFromPending(txn.ID, target, ctx)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !applied {
		// Lost the race against a concurrent delivery; the row is terminal now.
		log.Printf("webhook: transaction %s finalized concurrently, %s event ignored",
			txn.ID, event.Kind)
	}
	return nil
}
