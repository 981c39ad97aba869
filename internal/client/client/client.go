package client

import (
	"context"

	"github.com/dmitrijs2005/bankcli/internal/client/models"
	"github.com/google/uuid"
)

// Client is the backend API used by the CLI services.
type Client interface {
	Close() error
	Login(ctx context.Context, username, password string) (string, error)
	Signup(ctx context.Context, email, password string) error
	Me(ctx context.Context) (*models.User, error)
	Accounts(ctx context.Context) ([]models.Account, error)
	Cards(ctx context.Context) ([]models.Card, error)
	Transactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error)
	Statement(ctx context.Context, accountID uuid.UUID) (*models.Statement, error)
	Transfer(ctx context.Context, req models.TransferRequest) error
	Ping(ctx context.Context) error
}
