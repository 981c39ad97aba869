package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/bankcli/internal/client/token"
	"github.com/dmitrijs2005/bankcli/internal/logging"
)

// State of the session.
type State int

const (
	Hydrating State = iota
	Authenticated
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Hydrating:
		return "hydrating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Identity is the user the current credential was issued to.
type Identity struct {
	Identifier string
}

// Snapshot is a consistent copy of the store's state.
type Snapshot struct {
	Credential string
	Identity   *Identity
	Hydrating  bool
}

// State derives the session state from the snapshot.
func (s Snapshot) State() State {
	switch {
	case s.Hydrating:
		return Hydrating
	case s.Identity != nil:
		return Authenticated
	default:
		return Unauthenticated
	}
}

var errExpired = errors.New("credential expired")

// Store holds the session. It is safe for concurrent use.
//
// Mutations (Hydrate, Login, Logout, Invalidate) are serialized. Subscribers
// are notified while a mutation is in progress, so a callback may read the
// store but must not call a mutating method synchronously.
type Store struct {
	persist CredentialStore
	log     logging.Logger
	now     func() time.Time

	op sync.Mutex

	mu         sync.RWMutex
	credential string
	identity   *Identity
	hydrating  bool
	subs       map[uint64]func(Snapshot)
	nextSub    uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New seeds a Store from the persisted credential. The store starts in the
// Hydrating state whether or not a credential was found; call Hydrate to
// resolve it.
func New(persist CredentialStore, opts ...Option) *Store {
	s := &Store{
		persist:   persist,
		log:       logging.Nop(),
		now:       time.Now,
		hydrating: true,
		subs:      make(map[uint64]func(Snapshot)),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With(logging.FieldComponent, logging.ComponentSession)

	cred, err := persist.Load(context.Background())
	if err != nil {
		s.log.Warn(context.Background(), "failed to load persisted credential", logging.FieldError, err)
	}
	s.credential = cred

	return s
}

// Hydrate decodes the current credential. A missing credential leaves the
// store Unauthenticated; a malformed or expired one is logged out. Calling
// Hydrate again re-checks the current credential.
func (s *Store) Hydrate(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()

	s.mu.RLock()
	cred := s.credential
	s.mu.RUnlock()

	s.resolve(ctx, cred)
}

// Login persists credential and then derives identity from the credential
// read back from the persistent store. If persisting fails the state is left
// untouched and the error is returned. An unusable credential ends in
// Unauthenticated with a nil error; decode problems never leave the store.
// An empty credential is treated as a logout.
func (s *Store) Login(ctx context.Context, credential string) error {
	s.op.Lock()
	defer s.op.Unlock()

	if credential == "" {
		s.logout(ctx)
		return nil
	}

	if err := s.persist.Save(ctx, credential); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	s.update(func() {
		s.credential = credential
		s.identity = nil
		s.hydrating = true
	})

	stored, err := s.persist.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read back credential", logging.FieldError, err)
		stored = credential
	}
	s.resolve(ctx, stored)
	return nil
}

// Logout clears the persisted credential and the in-memory session. It can be
// called in any state, any number of times, from any goroutine.
func (s *Store) Logout(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()
	s.logout(ctx)
}

// Invalidate is called when the backend rejected a request sent with the
// credential sent. The session is logged out unless a different credential
// has been stored since, so a late 401 cannot end a fresh login. An empty
// sent always logs out. It reports whether a logout happened.
func (s *Store) Invalidate(ctx context.Context, sent string) bool {
	s.op.Lock()
	defer s.op.Unlock()

	s.mu.RLock()
	current := s.credential
	s.mu.RUnlock()

	if sent != "" && sent != current {
		s.log.Debug(ctx, "ignoring rejection of a replaced credential")
		return false
	}
	s.log.Info(ctx, "credential rejected by backend, logging out")
	s.logout(ctx)
	return true
}

// Credential returns the current credential, or "" when there is none.
func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// Identity returns the derived identity, or nil when not authenticated.
func (s *Store) Identity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Hydrating reports whether the current credential has not been decoded yet.
func (s *Store) Hydrating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrating
}

func (s *Store) State() State {
	return s.Snapshot().State()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// resolve decodes cred and applies the result. The caller holds s.op.
func (s *Store) resolve(ctx context.Context, cred string) {
	if cred == "" {
		s.update(func() {
			s.credential = ""
			s.identity = nil
			s.hydrating = false
		})
		return
	}

	claims, err := token.Decode(cred)
	if err == nil && token.IsExpired(claims, s.now()) {
		err = errExpired
	}
	if err != nil {
		s.log.Info(ctx, "discarding unusable credential", logging.FieldError, err)
		s.logout(ctx)
		return
	}

	id := &Identity{Identifier: claims.Identifier()}
	s.update(func() {
		s.credential = cred
		s.identity = id
		s.hydrating = false
	})
	s.log.Debug(ctx, "session authenticated", logging.FieldIdentity, id.Identifier)
}

// logout does the work of Logout. The caller holds s.op.
func (s *Store) logout(ctx context.Context) {
	if err := s.persist.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted credential", logging.FieldError, err)
	}
	s.update(func() {
		s.credential = ""
		s.identity = nil
		s.hydrating = false
	})
}

// update applies fn under the state lock and notifies subscribers when the
// snapshot changed.
func (s *Store) update(fn func()) {
	s.mu.Lock()
	before := s.snapshotLocked()
	fn()
	after := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	if sameSnapshot(before, after) {
		return
	}
	s.log.Debug(context.Background(), "session state changed", logging.FieldState, after.State().String())
	for _, sub := range subs {
		sub(after)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Credential: s.credential, Hydrating: s.hydrating}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
	}
	return snap
}

func sameSnapshot(a, b Snapshot) bool {
	if a.Credential != b.Credential || a.Hydrating != b.Hydrating {
		return false
	}
	if (a.Identity == nil) != (b.Identity == nil) {
		return false
	}
	return a.Identity == nil || *a.Identity == *b.Identity
}
