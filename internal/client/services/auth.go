package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bankcli/internal/client/client"
	"github.com/dmitrijs2005/bankcli/internal/client/models"
	"github.com/dmitrijs2005/bankcli/internal/client/session"
	"github.com/dmitrijs2005/bankcli/internal/common"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange email and password for a credential and hand it to the
//     session store.
//   - Register: create a new account holder.
//   - Logout: end the local session. Never fails.
//   - WhoAmI: identity derived by the session store, nil when signed out.
//   - Profile: the account holder record from the backend.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context)
	WhoAmI() *session.Identity
	Profile(ctx context.Context) (*models.User, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  *session.Store
}

// NewAuthService constructs an AuthService bound to the API client and the
// session store.
func NewAuthService(c client.Client, store *session.Store) AuthService {
	return &authService{client: c, store: store}
}

// Login authenticates against the backend and stores the issued credential.
// The password buffer is wiped before returning.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return validation(MsgCredentialsMissing, nil)
	}

	tok, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return backend(err, MsgLoginFailed)
	}

	if err := a.store.Login(ctx, tok); err != nil {
		return &Failure{Message: MsgLoginFailed, Err: fmt.Errorf("store credential: %w", err)}
	}
	if a.store.State() != session.Authenticated {
		return &Failure{Message: MsgSessionRejected, Err: ErrSessionRejected}
	}
	return nil
}

// Register creates a new account holder. The password buffer is wiped
// before returning.
func (a *authService) Register(ctx context.Context, email string, password []byte) error {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return validation(MsgCredentialsMissing, nil)
	}

	if err := a.client.Signup(ctx, email, string(password)); err != nil {
		return backend(err, MsgRegisterFailed)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) {
	a.store.Logout(ctx)
}

func (a *authService) WhoAmI() *session.Identity {
	return a.store.Identity()
}

func (a *authService) Profile(ctx context.Context) (*models.User, error) {
	u, err := a.client.Me(ctx)
	if err != nil {
		return nil, backend(err, MsgProfileFailed)
	}
	return u, nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
