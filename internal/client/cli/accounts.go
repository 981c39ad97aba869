package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/bankcli/internal/client/models"
	"github.com/dmitrijs2005/bankcli/internal/client/txview"
	"github.com/dmitrijs2005/bankcli/internal/money"
)

const timestampLayout = "2006-01-02 15:04"

// Dashboard prints accounts, the primary card and recent activity. Sections
// that loaded are printed even when another section failed.
func (a *App) Dashboard(ctx context.Context) error {
	d, err := a.dashboardService.Load(ctx)
	if d != nil {
		if len(d.Accounts) > 0 {
			printlnFn(renderAccounts(d.Accounts, d.Primary))
		}
		if d.PrimaryCard != nil {
			printlnFn(fmt.Sprintf("Card: %s  exp %s", d.PrimaryCard.Masked(), d.PrimaryCard.Expiry))
		}
		if d.Primary != nil && err == nil {
			printlnFn("Recent transactions:")
			printlnFn(renderTransactions(d.Transactions))
		}
	}
	if err != nil {
		return report(err)
	}
	if d == nil || len(d.Accounts) == 0 {
		printlnFn("No accounts yet.")
	}
	return nil
}

// History prints the primary account's transactions.
func (a *App) History(ctx context.Context) error {
	rows, err := a.dashboardService.History(ctx)
	if err != nil {
		return report(err)
	}
	printlnFn(renderTransactions(rows))
	return nil
}

// Cards prints every card with its number masked.
func (a *App) Cards(ctx context.Context) error {
	cards, err := a.dashboardService.Cards(ctx)
	if err != nil {
		return report(err)
	}
	if len(cards) == 0 {
		printlnFn("No cards.")
		return nil
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CARD\tEXPIRES")
	for _, c := range cards {
		fmt.Fprintf(w, "%s\t%s\n", c.Masked(), c.Expiry)
	}
	_ = w.Flush()
	printlnFn(strings.TrimRight(b.String(), "\n"))
	return nil
}

func renderAccounts(accounts []models.Account, primary *models.Account) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tBALANCE\t")
	for _, acc := range accounts {
		mark := ""
		if primary != nil && acc.ID == primary.ID {
			mark = "(primary)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", acc.AccountNumber, money.FormatCurrency(acc.Balance, acc.Currency), mark)
	}
	_ = w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func renderTransactions(rows []txview.Display) string {
	if len(rows) == 0 {
		return "No transactions."
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		ts := ""
		if !r.Timestamp.IsZero() {
			ts = r.Timestamp.Local().Format(timestampLayout)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", ts, r.Label, r.SignedAmount())
	}
	_ = w.Flush()
	return strings.TrimRight(b.String(), "\n")
}
