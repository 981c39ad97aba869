package session

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/bankcli/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bankcli/internal/common"
	"github.com/dmitrijs2005/bankcli/internal/dbx"
)

// CredentialStore persists the single session credential. Load returns ""
// when nothing is stored.
type CredentialStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}

// SQLiteCredentialStore keeps the credential in the local metadata table.
type SQLiteCredentialStore struct {
	db *sql.DB
}

func NewSQLiteCredentialStore(db *sql.DB) *SQLiteCredentialStore {
	return &SQLiteCredentialStore{db: db}
}

func (s *SQLiteCredentialStore) Load(ctx context.Context) (string, error) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.TokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Save writes the credential together with the time it was stored.
func (s *SQLiteCredentialStore) Save(ctx context.Context, credential string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenKey, []byte(credential)); err != nil {
			return err
		}
		savedAt := time.Now().UTC().Format(time.RFC3339)
		return repo.Set(ctx, common.TokenSavedAtKey, []byte(savedAt))
	})
}

func (s *SQLiteCredentialStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.TokenKey, common.TokenSavedAtKey)
	})
}

// MemoryCredentialStore keeps the credential in memory only.
type MemoryCredentialStore struct {
	mu         sync.Mutex
	credential string
}

func NewMemoryCredentialStore(initial string) *MemoryCredentialStore {
	return &MemoryCredentialStore{credential: initial}
}

func (m *MemoryCredentialStore) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential, nil
}

func (m *MemoryCredentialStore) Save(_ context.Context, credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = credential
	return nil
}

func (m *MemoryCredentialStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = ""
	return nil
}
