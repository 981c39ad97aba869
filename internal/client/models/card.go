package models

import "github.com/google/uuid"

const maskedGroup = "••••"

// Card is a payment card linked to an account.
type Card struct {
	ID         uuid.UUID `json:"id"`
	AccountID  uuid.UUID `json:"account_id"`
	CardNumber string    `json:"card_number"`
	CVC        string    `json:"cvc"`
	Expiry     string    `json:"expiry"`
}

// Masked hides all but the last four digits: "•••• •••• •••• 0855".
func (c Card) Masked() string {
	last := c.CardNumber
	if len(last) > 4 {
		last = last[len(last)-4:]
	}
	return maskedGroup + " " + maskedGroup + " " + maskedGroup + " " + last
}

// FirstCardFor returns the first card issued for accountID.
func FirstCardFor(cards []Card, accountID uuid.UUID) (Card, bool) {
	for _, c := range cards {
		if c.AccountID == accountID {
			return c, true
		}
	}
	return Card{}, false
}
