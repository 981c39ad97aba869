package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/bankcli/internal/client/config"
	"github.com/dmitrijs2005/bankcli/internal/client/services"
	"github.com/dmitrijs2005/bankcli/internal/client/session"
	"github.com/dmitrijs2005/bankcli/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single liveness probe.
const pingTimeout = 3 * time.Second

// Services groups the use cases the REPL drives.
type Services struct {
	Auth      services.AuthService
	Dashboard services.DashboardService
	Transfer  services.TransferService
	Statement services.StatementService
}

type App struct {
	config *config.Config
	store  *session.Store
	log    logging.Logger

	authService      services.AuthService
	dashboardService services.DashboardService
	transferService  services.TransferService
	statementService services.StatementService

	modeMu sync.RWMutex
	mode   Mode

	// userLogout is set while the logout command runs so the session
	// watcher can tell a requested logout from a rejected credential.
	userLogout atomic.Bool

	reader *bufio.Reader
}

// NewApp builds the interactive client. The store should already be
// hydrated, so the first prompt reflects the persisted session.
func NewApp(c *config.Config, store *session.Store, svc Services, log logging.Logger) *App {
	return &App{
		config:           c,
		store:            store,
		log:              log.With(logging.FieldComponent, logging.ComponentApp),
		authService:      svc.Auth,
		dashboardService: svc.Dashboard,
		transferService:  svc.Transfer,
		statementService: svc.Statement,
		reader:           bufio.NewReader(os.Stdin),
	}
}

// Mode returns the last observed connectivity mode, "" before the first probe.
func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), fmt.Sprintf("switched to %s mode", mode))
	}
}

// Run starts the connectivity watcher and the REPL and blocks until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() {
		if err := a.authService.Close(ctx); err != nil {
			a.log.Warn(ctx, "close client", logging.FieldError, err)
		}
	}()

	unsubscribe := a.store.Subscribe(a.sessionWatcher())
	defer unsubscribe()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	printlnFn("Welcome to the bank CLI (type 'help' for commands)")
	if !a.isLoggedIn() {
		printlnFn("Type 'login' to sign in or 'register' to create an account.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.store.State() == session.Authenticated
}

// getStatus renders the prompt status, e.g. "(alice@example.com online)".
func (a *App) getStatus() string {
	s := ""
	if id := a.store.Identity(); id != nil {
		s = id.Identifier + " "
	}
	if m := a.Mode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// sessionWatcher returns a subscriber that tells the user when the session
// ended without them asking, e.g. after the backend rejected the credential.
func (a *App) sessionWatcher() func(session.Snapshot) {
	last := a.store.State()
	return func(s session.Snapshot) {
		state := s.State()
		if last == session.Authenticated && state == session.Unauthenticated && !a.userLogout.Load() {
			printlnFn(MsgSessionEnded)
		}
		last = state
	}
}

// StartOnlineStatusWatcher probes the backend every interval and flips the
// connectivity mode. It never looks at the credential.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authService.Ping(pctx)
	cancel()

	if ctx.Err() != nil {
		return
	}
	if err != nil {
		a.log.Debug(ctx, "ping failed", logging.FieldError, err)
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
