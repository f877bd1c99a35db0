package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payhub/internal/models/db_models"
	"payhub/internal/models/request_models"
	"payhub/pkg/utils"
)

func TestPayoutService_InitiatePayout(t *testing.T) {
	repo := newFakePayoutRepo()
	svc := NewPayoutService(repo)

	resp, err := svc.InitiatePayout(context.Background(), uuid.New(),
		request_models.CreatePayoutRequest{Amount: 250.00})
	require.NoError(t, err)

	assert.Equal(t, string(db_models.PayoutStatusInitiated), resp.Status)
	assert.Equal(t, "250.00", resp.Amount)
	assert.Equal(t, "INR", resp.Currency, "currency defaults to INR")
	assert.Len(t, resp.Token, 64)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestPayoutService_InitiatePayout_InvalidAmount(t *testing.T) {
	svc := NewPayoutService(newFakePayoutRepo())

	_, err := svc.InitiatePayout(context.Background(), uuid.New(),
		request_models.CreatePayoutRequest{Amount: 0})
	assert.ErrorIs(t, err, utils.ErrInvalidAmount)
}

func TestPayoutService_SubmitUpi_CompletesOnce(t *testing.T) {
	repo := newFakePayoutRepo()
	svc := NewPayoutService(repo)

	initiated, err := svc.InitiatePayout(context.Background(), uuid.New(),
		request_models.CreatePayoutRequest{Amount: 100, Currency: "INR"})
	require.NoError(t, err)

	req := request_models.SubmitPayoutUpiRequest{Token: initiated.Token, UpiID: "alice@upi"}

	resp, err := svc.SubmitPayoutUpi(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(db_models.PayoutStatusCompleted), resp.Status)
	assert.Equal(t, "alice@upi", resp.UpiID)

	// The token is single-use.
	_, err = svc.SubmitPayoutUpi(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrPayoutAlreadyCompleted)
}

func TestPayoutService_SubmitUpi_InvalidUpiID(t *testing.T) {
	svc := NewPayoutService(newFakePayoutRepo())

	for _, upi := range []string{"", "no-at-sign", "alice@", "@upi", "alice@upi2"} {
		_, err := svc.SubmitPayoutUpi(context.Background(),
			request_models.SubmitPayoutUpiRequest{Token: "whatever", UpiID: upi})
		assert.ErrorIs(t, err, utils.ErrInvalidUpiID, "upi %q", upi)
	}
}

func TestPayoutService_SubmitUpi_UnknownToken(t *testing.T) {
	svc := NewPayoutService(newFakePayoutRepo())

	_, err := svc.SubmitPayoutUpi(context.Background(),
		request_models.SubmitPayoutUpiRequest{Token: "missing", UpiID: "alice@upi"})
	assert.ErrorIs(t, err, utils.ErrPayoutNotFound)
}

func TestPayoutService_SubmitUpi_Expired(t *testing.T) {
	repo := newFakePayoutRepo()
	svc := NewPayoutService(repo)

	initiated, err := svc.InitiatePayout(context.Background(), uuid.New(),
		request_models.CreatePayoutRequest{Amount: 100})
	require.NoError(t, err)

	payoutID := uuid.MustParse(initiated.ID)
	repo.payouts[payoutID].ExpiresAt = time.Now().Add(-time.Minute).Unix()

	_, err = svc.SubmitPayoutUpi(context.Background(),
		request_models.SubmitPayoutUpiRequest{Token: initiated.Token, UpiID: "alice@upi"})
	assert.ErrorIs(t, err, utils.ErrPayoutExpired)

	stored, _ := repo.GetByID(payoutID, context.Background())
	assert.Equal(t, db_models.PayoutStatusExpired, stored.Status)
}

func TestPayoutService_GetPayoutByToken(t *testing.T) {
	repo := newFakePayoutRepo()
	svc := NewPayoutService(repo)

	initiated, err := svc.InitiatePayout(context.Background(), uuid.New(),
		request_models.CreatePayoutRequest{Amount: 75.50, Currency: "inr"})
	require.NoError(t, err)

	resp, err := svc.GetPayoutByToken(context.Background(), initiated.Token)
	require.NoError(t, err)
	assert.Equal(t, initiated.ID, resp.ID)
	assert.Equal(t, "75.50", resp.Amount)
	assert.Empty(t, resp.Token, "token is not echoed back on lookup")

	_, err = svc.GetPayoutByToken(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrPayoutNotFound)
}

func TestPayoutService_GetPayoutByToken_LazyExpiry(t *testing.T) {
	repo := newFakePayoutRepo()
	svc := NewPayoutService(repo)

	initiated, err := svc.InitiatePayout(context.Background(), uuid.New(),
		request_models.CreatePayoutRequest{Amount: 20})
	require.NoError(t, err)

	payoutID := uuid.MustParse(initiated.ID)
	repo.payouts[payoutID].ExpiresAt = time.Now().Add(-time.Minute).Unix()

	resp, err := svc.GetPayoutByToken(context.Background(), initiated.Token)
	require.NoError(t, err)
	assert.Equal(t, string(db_models.PayoutStatusExpired), resp.Status)
}
