package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bankcli/internal/client/config"
	"github.com/dmitrijs2005/bankcli/internal/client/models"
	"github.com/dmitrijs2005/bankcli/internal/client/services"
	"github.com/dmitrijs2005/bankcli/internal/client/session"
	"github.com/dmitrijs2005/bankcli/internal/client/token"
	"github.com/dmitrijs2005/bankcli/internal/client/txview"
	"github.com/dmitrijs2005/bankcli/internal/common"
	"github.com/dmitrijs2005/bankcli/internal/logging"
)

func makeToken(t *testing.T, email string, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
		Email:            email,
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

// newStore returns a hydrated store seeded with credential ("" for none).
func newStore(t *testing.T, credential string) *session.Store {
	t.Helper()
	s := session.New(session.NewMemoryCredentialStore(credential))
	s.Hydrate(context.Background())
	return s
}

// output captures printlnFn and silences prompts for the test.
type output struct {
	mu    sync.Mutex
	lines []string
}

func captureOutput(t *testing.T) *output {
	t.Helper()
	o := &output{}
	origPrint, origPrompt := printlnFn, promptOut
	printlnFn = func(a ...any) (int, error) {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.lines = append(o.lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	promptOut = io.Discard
	t.Cleanup(func() {
		printlnFn = origPrint
		promptOut = origPrompt
	})
	return o
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.lines, "\n")
}

// stubInputs answers text prompts from answers in order and password
// prompts with password.
func stubInputs(t *testing.T, password string, answers ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// fakeAuth implements services.AuthService on top of a real session store.
type fakeAuth struct {
	store *session.Store

	loginToken string
	loginErr   error
	regErr     error
	closeErr   error
	profile    *models.User
	profileErr error
	profiles   int

	mu       sync.Mutex
	pingErr  error
	pings    int
	closed   bool
	lastUser string
	lastPass string
}

func (f *fakeAuth) Login(ctx context.Context, email string, password []byte) error {
	f.lastUser, f.lastPass = email, string(password)
	common.WipeByteArray(password)
	if f.loginErr != nil {
		return f.loginErr
	}
	return f.store.Login(ctx, f.loginToken)
}

func (f *fakeAuth) Register(_ context.Context, email string, password []byte) error {
	f.lastUser, f.lastPass = email, string(password)
	return f.regErr
}

func (f *fakeAuth) Logout(ctx context.Context) { f.store.Logout(ctx) }

func (f *fakeAuth) WhoAmI() *session.Identity { return f.store.Identity() }

func (f *fakeAuth) Profile(context.Context) (*models.User, error) {
	f.profiles++
	return f.profile, f.profileErr
}

func (f *fakeAuth) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeAuth) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}

func (f *fakeAuth) Close(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return f.closeErr
}

type fakeDashboard struct {
	dash       *services.Dashboard
	loadErr    error
	primary    models.Account
	primaryErr error
	history    []txview.Display
	historyErr error
	cards      []models.Card
	cardsErr   error
}

func (f *fakeDashboard) Load(context.Context) (*services.Dashboard, error) {
	return f.dash, f.loadErr
}

func (f *fakeDashboard) PrimaryAccount(context.Context) (models.Account, error) {
	return f.primary, f.primaryErr
}

func (f *fakeDashboard) History(context.Context) ([]txview.Display, error) {
	return f.history, f.historyErr
}

func (f *fakeDashboard) Cards(context.Context) ([]models.Card, error) {
	return f.cards, f.cardsErr
}

type fakeTransfer struct {
	from       uuid.UUID
	to, amount string
	calls      int
	msg        string
	err        error
}

func (f *fakeTransfer) Submit(_ context.Context, from uuid.UUID, to, amount string) (string, error) {
	f.calls++
	f.from, f.to, f.amount = from, to, amount
	return f.msg, f.err
}

type fakeStatement struct {
	st  *services.Statement
	err error
	id  uuid.UUID
}

func (f *fakeStatement) Generate(_ context.Context, id uuid.UUID) (*services.Statement, error) {
	f.id = id
	return f.st, f.err
}

type testApp struct {
	*App
	auth      *fakeAuth
	dashboard *fakeDashboard
	transfer  *fakeTransfer
	statement *fakeStatement
}

func newTestApp(t *testing.T, store *session.Store, input string) *testApp {
	t.Helper()
	ta := &testApp{
		auth:      &fakeAuth{store: store},
		dashboard: &fakeDashboard{},
		transfer:  &fakeTransfer{},
		statement: &fakeStatement{},
	}
	cfg := &config.Config{OnlineCheckInterval: time.Hour}
	ta.App = NewApp(cfg, store, Services{
		Auth:      ta.auth,
		Dashboard: ta.dashboard,
		Transfer:  ta.transfer,
		Statement: ta.statement,
	}, logging.Nop())
	ta.App.reader = bufio.NewReader(strings.NewReader(input))
	return ta
}
