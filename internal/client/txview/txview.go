// Package txview turns raw transaction records into display rows.
//
// Legacy rows store outgoing transfers as positive amounts tagged with an
// outgoing type, newer rows use negative amounts. Direction is resolved by a
// fixed priority order:
//
//	amount < 0                        -> outgoing
//	type in {debit, transfer_out}     -> outgoing
//	anything else                     -> incoming
//
// A negative amount is outgoing even when the type says otherwise.
package txview

import (
	"math"
	"strings"
	"time"

	"github.com/dmitrijs2005/bankcli/internal/client/models"
	"github.com/dmitrijs2005/bankcli/internal/money"
	"github.com/google/uuid"
)

// Direction of money flow relative to the viewed account.
type Direction int

const (
	Incoming Direction = iota
	Outgoing
)

func (d Direction) String() string {
	if d == Outgoing {
		return "outgoing"
	}
	return "incoming"
}

var outgoingTypes = map[string]bool{
	models.TxTypeDebit:       true,
	models.TxTypeTransferOut: true,
}

var canonicalTypes = map[string]bool{
	models.TxTypeCredit:      true,
	models.TxTypeDebit:       true,
	models.TxTypeTransferIn:  true,
	models.TxTypeTransferOut: true,
}

// Display is the direction-resolved projection of a transaction.
type Display struct {
	ID             uuid.UUID
	Direction      Direction
	AbsoluteAmount int64
	Label          string
	Timestamp      time.Time
	// Currency is the ISO code of the account; "" means the default.
	Currency string
}

// SignedAmount renders the amount in the row's currency with its direction
// sign, e.g. "+$10.45".
func (d Display) SignedAmount() string {
	return d.SignedAmountIn(d.Currency)
}

// SignedAmountIn renders the amount in the given currency with its
// direction sign.
func (d Display) SignedAmountIn(code string) string {
	sign := "+"
	if d.Direction == Outgoing {
		sign = "-"
	}
	return sign + money.FormatCurrency(d.AbsoluteAmount, code)
}

// Normalize projects raw into a Display row.
func Normalize(raw models.Transaction) Display {
	dir := direction(raw)
	return Display{
		ID:             raw.ID,
		Direction:      dir,
		AbsoluteAmount: abs(raw.Amount),
		Label:          label(raw, dir),
		Timestamp:      raw.Timestamp.Time,
	}
}

// NormalizeAll keeps the input order.
func NormalizeAll(raw []models.Transaction) []Display {
	out := make([]Display, 0, len(raw))
	for _, r := range raw {
		out = append(out, Normalize(r))
	}
	return out
}

// NormalizeAllIn is NormalizeAll with every row tagged with currency.
func NormalizeAllIn(raw []models.Transaction, currency string) []Display {
	out := NormalizeAll(raw)
	for i := range out {
		out[i].Currency = currency
	}
	return out
}

// HasConflictingSign reports a negative amount on a row whose type alone
// would read as incoming. Such rows are shown as outgoing.
func HasConflictingSign(raw models.Transaction) bool {
	return raw.Amount < 0 && !outgoingTypes[raw.Type]
}

func direction(raw models.Transaction) Direction {
	switch {
	case raw.Amount < 0:
		return Outgoing
	case outgoingTypes[raw.Type]:
		return Outgoing
	default:
		return Incoming
	}
}

func label(raw models.Transaction, dir Direction) string {
	if raw.CounterpartyName != nil && *raw.CounterpartyName != "" {
		name := strings.ToLower(*raw.CounterpartyName)
		if dir == Outgoing {
			return "Sent to: " + name
		}
		return "Received from: " + name
	}

	spaced := strings.ReplaceAll(raw.Type, "_", " ")
	if canonicalTypes[raw.Type] {
		return strings.ToUpper(spaced[:1]) + spaced[1:]
	}
	return spaced
}

// abs saturates at math.MaxInt64, since -math.MinInt64 does not fit.
func abs(n int64) int64 {
	switch {
	case n == math.MinInt64:
		return math.MaxInt64
	case n < 0:
		return -n
	default:
		return n
	}
}
