package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/bankcli/internal/client/models"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	mu sync.Mutex

	LoginToken string
	LoginErr   error
	SignupErr  error
	MeRet      *models.User
	MeErr      error

	AccountsRet []models.Account
	AccountsErr error
	CardsRet    []models.Card
	CardsErr    error
	TxRet       []models.Transaction
	TxErr       error
	StmtRet     *models.Statement
	StmtErr     error
	TransferErr error
	PingErr     error
	CloseErr    error

	LastLoginUser     string
	LastLoginPassword string
	LastSignupEmail   string
	LastTxAccount     uuid.UUID
	LastTransfer      *models.TransferRequest
	Calls             map[string]int
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Calls == nil {
		f.Calls = map[string]int{}
	}
	f.Calls[name]++
}

func (f *fakeClient) calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[name]
}

func (f *fakeClient) Close() error {
	f.record("Close")
	return f.CloseErr
}

func (f *fakeClient) Login(_ context.Context, username, password string) (string, error) {
	f.record("Login")
	f.mu.Lock()
	f.LastLoginUser = username
	f.LastLoginPassword = password
	f.mu.Unlock()
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) Signup(_ context.Context, email, _ string) error {
	f.record("Signup")
	f.mu.Lock()
	f.LastSignupEmail = email
	f.mu.Unlock()
	return f.SignupErr
}

func (f *fakeClient) Me(context.Context) (*models.User, error) {
	f.record("Me")
	return f.MeRet, f.MeErr
}

func (f *fakeClient) Accounts(context.Context) ([]models.Account, error) {
	f.record("Accounts")
	return f.AccountsRet, f.AccountsErr
}

func (f *fakeClient) Cards(context.Context) ([]models.Card, error) {
	f.record("Cards")
	return f.CardsRet, f.CardsErr
}

func (f *fakeClient) Transactions(_ context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	f.record("Transactions")
	f.mu.Lock()
	f.LastTxAccount = accountID
	f.mu.Unlock()
	return f.TxRet, f.TxErr
}

func (f *fakeClient) Statement(context.Context, uuid.UUID) (*models.Statement, error) {
	f.record("Statement")
	return f.StmtRet, f.StmtErr
}

func (f *fakeClient) Transfer(_ context.Context, req models.TransferRequest) error {
	f.record("Transfer")
	f.mu.Lock()
	f.LastTransfer = &req
	f.mu.Unlock()
	return f.TransferErr
}

func (f *fakeClient) Ping(context.Context) error {
	f.record("Ping")
	return f.PingErr
}
