package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bankcli/internal/client/client"
	"github.com/dmitrijs2005/bankcli/internal/client/models"
	"github.com/dmitrijs2005/bankcli/internal/common"
	"github.com/dmitrijs2005/bankcli/internal/logging"
	"github.com/dmitrijs2005/bankcli/internal/money"
)

func TestTransfer_Success(t *testing.T) {
	from := uuid.New()
	fc := &fakeClient{}
	svc := NewTransferService(fc, logging.Nop())

	msg, err := svc.Submit(context.Background(), from, "  bob@example.com ", "12.34")
	require.NoError(t, err)
	assert.Equal(t, "Successfully transferred $12.34.", msg)
	require.NotNil(t, fc.LastTransfer)
	assert.Equal(t, models.TransferRequest{FromAccountID: from, ToIdentifier: "bob@example.com", Amount: 1234}, *fc.LastTransfer)
}

func TestTransfer_ValidationNeverCallsBackend(t *testing.T) {
	from := uuid.New()
	tests := []struct {
		name   string
		from   uuid.UUID
		to     string
		amount string
		want   string
	}{
		{"no source account", uuid.Nil, "bob", "1", MsgNoAccount},
		{"empty destination", from, "", "10", MsgDestinationMissing},
		{"blank destination", from, "   ", "10", MsgDestinationMissing},
		{"empty amount", from, "bob", "", MsgInvalidAmount},
		{"not a number", from, "bob", "ten", MsgInvalidAmount},
		{"zero", from, "bob", "0", MsgInvalidAmount},
		{"negative", from, "bob", "-5", MsgInvalidAmount},
		{"three decimals", from, "bob", "12.345", MsgTooManyDecimals},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{}
			_, err := NewTransferService(fc, logging.Nop()).Submit(context.Background(), tt.from, tt.to, tt.amount)
			assert.EqualError(t, err, tt.want)
			assert.ErrorIs(t, err, common.ErrorValidation)
			assert.Zero(t, fc.calls("Transfer"))
		})
	}
}

func TestTransfer_ThreeDecimalsWrapsMoneyError(t *testing.T) {
	_, err := NewTransferService(&fakeClient{}, logging.Nop()).Submit(context.Background(), uuid.New(), "bob", "12.345")
	assert.ErrorIs(t, err, money.ErrTooManyDecimals)
}

func TestTransfer_TrailingZeroDecimalIsAccepted(t *testing.T) {
	fc := &fakeClient{}
	msg, err := NewTransferService(fc, logging.Nop()).Submit(context.Background(), uuid.New(), "bob", "12.340")
	require.NoError(t, err)
	assert.Equal(t, "Successfully transferred $12.34.", msg)
	assert.Equal(t, int64(1234), fc.LastTransfer.Amount)
}

func TestTransfer_BackendErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"string detail", &client.APIError{StatusCode: 400, Message: "Insufficient funds"}, "Insufficient funds"},
		{"validation array", &client.APIError{StatusCode: 422, Message: "Input should be greater than 0"}, "Input should be greater than 0"},
		{"unrecognized body", &client.APIError{StatusCode: 500}, MsgTransferFailed},
		{"network", client.ErrUnavailable, MsgTransferFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{TransferErr: tt.err}
			_, err := NewTransferService(fc, logging.Nop()).Submit(context.Background(), uuid.New(), "bob", "1.00")
			assert.EqualError(t, err, tt.want)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, 1, fc.calls("Transfer"))
		})
	}
}
