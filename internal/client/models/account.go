// Package models defines the banking records the CLI receives from the
// backend. Amounts are integer minor units throughout.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// PrimaryAccountPrefix marks accounts issued by the home institution.
const PrimaryAccountPrefix = "100"

// Account is a user's bank account.
type Account struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	AccountNumber string    `json:"account_number"`
	Balance       int64     `json:"balance"`
	Currency      string    `json:"currency"`
}

// SelectPrimary returns the first account whose number starts with
// PrimaryAccountPrefix, falling back to the first account in the given order.
// The result is false only for an empty slice. The order is never changed.
func SelectPrimary(accounts []Account) (Account, bool) {
	if len(accounts) == 0 {
		return Account{}, false
	}
	for _, a := range accounts {
		if strings.HasPrefix(a.AccountNumber, PrimaryAccountPrefix) {
			return a, true
		}
	}
	return accounts[0], true
}
