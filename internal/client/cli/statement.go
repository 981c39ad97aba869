package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/bankcli/internal/client/services"
	"github.com/dmitrijs2005/bankcli/internal/money"
)

// Statement prints the primary account's statement.
func (a *App) Statement(ctx context.Context) error {
	acc, err := a.dashboardService.PrimaryAccount(ctx)
	if err != nil {
		return report(err)
	}

	st, err := a.statementService.Generate(ctx, acc.ID)
	if err != nil {
		return report(err)
	}

	printlnFn(renderStatement(st))
	return nil
}

func renderStatement(st *services.Statement) string {
	format := func(v int64) string { return money.FormatCurrency(v, st.Currency) }

	var b strings.Builder
	fmt.Fprintf(&b, "Statement for account %s\n", st.AccountNumber)

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Starting balance:\t%s\n", format(st.StartingBalance))
	fmt.Fprintf(w, "Total credits:\t%s\n", format(st.TotalCredits))
	fmt.Fprintf(w, "Total debits:\t%s\n", format(st.TotalDebits))
	fmt.Fprintf(w, "Ending balance:\t%s\n", format(st.EndingBalance))
	fmt.Fprintf(w, "Transactions:\t%d\n", st.TransactionCount)
	_ = w.Flush()

	b.WriteString(renderTransactions(st.Rows))
	return b.String()
}
