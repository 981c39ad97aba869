package models

import "github.com/google/uuid"

// Transaction types the backend has historically written.
const (
	TxTypeCredit      = "credit"
	TxTypeDebit       = "debit"
	TxTypeTransferIn  = "transfer_in"
	TxTypeTransferOut = "transfer_out"
)

// Transaction is a ledger record as the backend returns it. The sign of
// Amount is not reliable on legacy rows; see txview for how it is read.
type Transaction struct {
	ID               uuid.UUID  `json:"id"`
	AccountID        uuid.UUID  `json:"account_id"`
	Amount           int64      `json:"amount"`
	Type             string     `json:"type"`
	Timestamp        Timestamp  `json:"timestamp"`
	RelatedAccountID *uuid.UUID `json:"related_account_id,omitempty"`
	CounterpartyName *string    `json:"counterparty_name,omitempty"`
}

// Statement aggregates an account's activity.
type Statement struct {
	AccountID        uuid.UUID     `json:"account_id"`
	AccountNumber    string        `json:"account_number"`
	Currency         string        `json:"currency"`
	StartingBalance  int64         `json:"starting_balance"`
	EndingBalance    int64         `json:"ending_balance"`
	TotalCredits     int64         `json:"total_credits"`
	TotalDebits      int64         `json:"total_debits"`
	TransactionCount int           `json:"transaction_count"`
	Transactions     []Transaction `json:"transactions"`
}

// TransferRequest is the body of a transfer submission. Amount is a positive
// number of minor units; ToIdentifier is an email or an account id and is
// resolved by the backend.
type TransferRequest struct {
	FromAccountID uuid.UUID `json:"from_account_id"`
	ToIdentifier  string    `json:"to_identifier"`
	Amount        int64     `json:"amount"`
}
