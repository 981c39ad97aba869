package cli

import (
	"context"
)

// Transfer prompts for a destination and an amount and sends money from the
// primary account. Input is validated by the service before any request.
func (a *App) Transfer(ctx context.Context) error {
	acc, err := a.dashboardService.PrimaryAccount(ctx)
	if err != nil {
		return report(err)
	}

	to, err := getSimpleText(a.reader, "Destination (email or account ID)", promptOut)
	if err != nil {
		return err
	}
	amount, err := getSimpleText(a.reader, "Amount (e.g. 12.34)", promptOut)
	if err != nil {
		return err
	}

	msg, err := a.transferService.Submit(ctx, acc.ID, to, amount)
	if err != nil {
		return report(err)
	}
	printlnFn(msg)
	return nil
}
