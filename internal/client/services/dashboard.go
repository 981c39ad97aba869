package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/bankcli/internal/client/client"
	"github.com/dmitrijs2005/bankcli/internal/client/models"
	"github.com/dmitrijs2005/bankcli/internal/client/txview"
	"github.com/dmitrijs2005/bankcli/internal/logging"
)

// Dashboard is what the dashboard command renders. Sections whose fetch
// failed are left empty.
type Dashboard struct {
	Accounts     []models.Account
	Primary      *models.Account
	Cards        []models.Card
	PrimaryCard  *models.Card
	Transactions []txview.Display
}

// DashboardService loads account overview data.
type DashboardService interface {
	// Load fetches accounts, then cards and the primary account's
	// transactions in parallel. On any failure it returns what did load
	// together with a single *Failure.
	Load(ctx context.Context) (*Dashboard, error)
	// PrimaryAccount returns the account transfers and statements use.
	PrimaryAccount(ctx context.Context) (models.Account, error)
	// History returns the primary account's normalized transactions.
	History(ctx context.Context) ([]txview.Display, error)
	// Cards returns every card of the account holder.
	Cards(ctx context.Context) ([]models.Card, error)
}

type dashboardService struct {
	client client.Client
	log    logging.Logger
}

func NewDashboardService(c client.Client, log logging.Logger) DashboardService {
	return &dashboardService{
		client: c,
		log:    log.With(logging.FieldComponent, logging.ComponentDashboard),
	}
}

func (s *dashboardService) Load(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}

	accounts, err := s.client.Accounts(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to load accounts", logging.FieldError, err)
		return d, &Failure{Message: MsgDashboardFailed, Err: err}
	}
	d.Accounts = accounts
	if p, ok := models.SelectPrimary(accounts); ok {
		d.Primary = &p
	}

	// Each branch writes only its own fields, so a failure in one leaves
	// the other's result in place.
	var g errgroup.Group
	g.Go(func() error {
		cards, err := s.client.Cards(ctx)
		if err != nil {
			s.log.Warn(ctx, "failed to load cards", logging.FieldError, err)
			return err
		}
		d.Cards = cards
		if d.Primary != nil {
			if c, ok := models.FirstCardFor(cards, d.Primary.ID); ok {
				d.PrimaryCard = &c
			}
		}
		return nil
	})
	if d.Primary != nil {
		g.Go(func() error {
			txs, err := s.transactions(ctx, *d.Primary)
			if err != nil {
				return err
			}
			d.Transactions = txs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return d, &Failure{Message: MsgDashboardFailed, Err: err}
	}
	return d, nil
}

func (s *dashboardService) PrimaryAccount(ctx context.Context) (models.Account, error) {
	accounts, err := s.client.Accounts(ctx)
	if err != nil {
		return models.Account{}, &Failure{Message: MsgDashboardFailed, Err: err}
	}
	p, ok := models.SelectPrimary(accounts)
	if !ok {
		return models.Account{}, &Failure{Message: MsgNoAccount, Err: client.ErrNotFound}
	}
	return p, nil
}

func (s *dashboardService) History(ctx context.Context) ([]txview.Display, error) {
	p, err := s.PrimaryAccount(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactions(ctx, p)
	if err != nil {
		return nil, &Failure{Message: MsgDashboardFailed, Err: err}
	}
	return txs, nil
}

func (s *dashboardService) Cards(ctx context.Context) ([]models.Card, error) {
	cards, err := s.client.Cards(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to load cards", logging.FieldError, err)
		return nil, &Failure{Message: MsgDashboardFailed, Err: err}
	}
	return cards, nil
}

func (s *dashboardService) transactions(ctx context.Context, acc models.Account) ([]txview.Display, error) {
	raw, err := s.client.Transactions(ctx, acc.ID)
	if err != nil {
		s.log.Warn(ctx, "failed to load transactions", logging.FieldAccountID, acc.ID.String(), logging.FieldError, err)
		return nil, err
	}
	for _, r := range raw {
		if txview.HasConflictingSign(r) {
			s.log.Warn(ctx, "transaction amount sign contradicts its type",
				logging.FieldAccountID, acc.ID.String(), "transaction_id", r.ID.String(), "type", r.Type)
		}
	}
	return txview.NormalizeAllIn(raw, acc.Currency), nil
}
