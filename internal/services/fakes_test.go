package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"payhub/internal/gateways"
	"payhub/internal/models/db_models"
	"payhub/internal/repositories"
)

// fakeTransactionRepo mirrors the store contract in memory, including the
// compare-and-set semantics of FinalizeFromPending.
type fakeTransactionRepo struct {
	mu         sync.Mutex
	txns       map[uuid.UUID]*db_models.Transaction
	failCreate bool
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txns: make(map[uuid.UUID]*db_models.Transaction)}
}

func (f *fakeTransactionRepo) Create(txn *db_models.Transaction, ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return context.DeadlineExceeded
	}
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	now := time.Now().Unix()
	txn.CreatedAt = now
	txn.UpdatedAt = now
	stored := *txn
	f.txns[txn.ID] = &stored
	return nil
}

func (f *fakeTransactionRepo) GetByID(id uuid.UUID, ctx context.Context) (*db_models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	txn, ok := f.txns[id]
	if !ok {
		return nil, nil
	}
	copied := *txn
	return &copied, nil
}

func (f *fakeTransactionRepo) GetByGatewayReference(gateway string, reference string, ctx context.Context) (*db_models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, txn := range f.txns {
		if txn.Gateway == gateway && txn.GatewayTransactionID == reference && reference != "" {
			copied := *txn
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) SetGatewayReference(id uuid.UUID, reference string, ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if txn, ok := f.txns[id]; ok && txn.GatewayTransactionID == "" {
		txn.GatewayTransactionID = reference
	}
	return nil
}

func (f *fakeTransactionRepo) FinalizeFromPending(id uuid.UUID, to db_models.TransactionStatus, ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	txn, ok := f.txns[id]
	if !ok || txn.Status != db_models.TxnStatusPending {
		return false, nil
	}
	txn.Status = to
	txn.UpdatedAt = time.Now().Unix()
	return true, nil
}

func (f *fakeTransactionRepo) List(filter repositories.TransactionFilter, ctx context.Context) ([]db_models.Transaction, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []db_models.Transaction
	for _, txn := range f.txns {
		if filter.AccountID != nil && txn.AccountID != *filter.AccountID {
			continue
		}
		if filter.Status != "" && string(txn.Status) != filter.Status {
			continue
		}
		if filter.Gateway != "" && txn.Gateway != filter.Gateway {
			continue
		}
		matched = append(matched, *txn)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.PageSize
	if start >= len(matched) {
		return []db_models.Transaction{}, total, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// fakeAdapter is a gateway adapter with scripted outcomes.
type fakeAdapter struct {
	name       string
	outcome    gateways.Outcome
	event      gateways.WebhookEvent
	recognized bool
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) CreatePayment(ctx context.Context, params gateways.PaymentParams) gateways.Outcome {
	return f.outcome
}

func (f *fakeAdapter) HandleWebhook(payload []byte) (gateways.WebhookEvent, bool) {
	return f.event, f.recognized
}

func (f *fakeAdapter) GetStatus(ctx context.Context, externalReference string) (string, error) {
	return "unknown", nil
}

type fakePayoutRepo struct {
	mu      sync.Mutex
	payouts map[uuid.UUID]*db_models.Payout
}

func newFakePayoutRepo() *fakePayoutRepo {
	return &fakePayoutRepo{payouts: make(map[uuid.UUID]*db_models.Payout)}
}

func (f *fakePayoutRepo) Create(payout *db_models.Payout, ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if payout.ID == uuid.Nil {
		payout.ID = uuid.New()
	}
	now := time.Now().Unix()
	payout.CreatedAt = now
	payout.UpdatedAt = now
	stored := *payout
	f.payouts[payout.ID] = &stored
	return nil
}

func (f *fakePayoutRepo) GetByID(id uuid.UUID, ctx context.Context) (*db_models.Payout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payout, ok := f.payouts[id]
	if !ok {
		return nil, nil
	}
	copied := *payout
	return &copied, nil
}

func (f *fakePayoutRepo) GetByToken(token string, ctx context.Context) (*db_models.Payout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, payout := range f.payouts {
		if payout.Token == token {
			copied := *payout
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePayoutRepo) CompleteInitiated(id uuid.UUID, upiID string, now int64, ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payout, ok := f.payouts[id]
	if !ok || payout.Status != db_models.PayoutStatusInitiated || payout.ExpiresAt <= now {
		return false, nil
	}
	payout.Status = db_models.PayoutStatusCompleted
	payout.UpiID = upiID
	return true, nil
}

func (f *fakePayoutRepo) MarkExpired(id uuid.UUID, ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payout, ok := f.payouts[id]
	if !ok || payout.Status != db_models.PayoutStatusInitiated {
		return false, nil
	}
	payout.Status = db_models.PayoutStatusExpired
	return true, nil
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(account *db_models.Account, ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	stored := *account
	f.accounts[account.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) FindByID(id uuid.UUID, ctx context.Context) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccountRepo) FindByEmail(email string, ctx context.Context) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}
