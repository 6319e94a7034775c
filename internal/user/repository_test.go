package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"shopuniverse/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersKey = "shopUniverse_users"

// brokenStore fails reads and/or writes with ErrStorageUnavailable.
type brokenStore struct {
	storage.Store
	failGet, failSet bool
}

func (b *brokenStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if b.failGet {
		return nil, false, fmt.Errorf("%w: read", storage.ErrStorageUnavailable)
	}
	return b.Store.Get(ctx, key)
}

func (b *brokenStore) Set(ctx context.Context, key string, v []byte) error {
	if b.failSet {
		return fmt.Errorf("%w: quota exceeded", storage.ErrStorageUnavailable)
	}
	return b.Store.Set(ctx, key, v)
}

func credential(id, email, password string) Credential {
	return Credential{User: User{ID: id, Email: email, FirstName: "Ada", LastName: "Lovelace"}, Password: password}
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		repo := NewRepository(storage.NewMemoryStore(), usersKey)
		users, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("Malformed", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, usersKey, []byte(`{"oops"`)))

		users, err := NewRepository(store, usersKey).List(ctx)
		assert.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("Unavailable", func(t *testing.T) {
		repo := NewRepository(&brokenStore{Store: storage.NewMemoryStore(), failGet: true}, usersKey)
		_, err := repo.List(ctx)
		assert.ErrorIs(t, err, storage.ErrStorageUnavailable)
	})

	t.Run("ReadsOriginalLayout", func(t *testing.T) {
		store := storage.NewMemoryStore()
		raw := `[{"id":"1718000000000","email":"ada@example.com","firstName":"Ada","lastName":"Lovelace","createdAt":"2024-06-10T06:13:20.000Z","password":"pw"}]`
		require.NoError(t, store.Set(ctx, usersKey, []byte(raw)))

		users, err := NewRepository(store, usersKey).List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "1718000000000", users[0].ID)
		assert.Equal(t, "pw", users[0].Password)
		assert.Equal(t, 2024, users[0].CreatedAt.Year())
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := storage.NewMemoryStore()
		repo := NewRepository(store, usersKey)

		require.NoError(t, repo.Create(ctx, credential("1", "ada@example.com", "pw")))
		require.NoError(t, repo.Create(ctx, credential("2", "grace@example.com", "pw")))

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)

		raw, found, err := store.Get(ctx, usersKey)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Contains(t, string(raw), `"password":"pw"`)
		assert.Contains(t, string(raw), `"firstName":"Ada"`)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := NewRepository(storage.NewMemoryStore(), usersKey)
		require.NoError(t, repo.Create(ctx, credential("1", "ada@example.com", "pw")))

		err := repo.Create(ctx, credential("2", "ada@example.com", "other"))
		assert.ErrorIs(t, err, ErrEmailExists)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("EmailIsCaseSensitive", func(t *testing.T) {
		repo := NewRepository(storage.NewMemoryStore(), usersKey)
		require.NoError(t, repo.Create(ctx, credential("1", "ada@example.com", "pw")))
		assert.NoError(t, repo.Create(ctx, credential("2", "Ada@example.com", "pw")))
	})

	t.Run("WriteFails", func(t *testing.T) {
		repo := NewRepository(&brokenStore{Store: storage.NewMemoryStore(), failSet: true}, usersKey)
		err := repo.Create(ctx, credential("1", "ada@example.com", "pw"))
		assert.ErrorIs(t, err, storage.ErrStorageUnavailable)
	})

	t.Run("ConcurrentSameEmail", func(t *testing.T) {
		repo := NewRepository(storage.NewMemoryStore(), usersKey)

		errs := make(chan error, 10)
		for i := 0; i < 10; i++ {
			go func(i int) {
				errs <- repo.Create(ctx, credential(fmt.Sprint(i), "ada@example.com", "pw"))
			}(i)
		}

		ok := 0
		for i := 0; i < 10; i++ {
			if err := <-errs; err == nil {
				ok++
			} else {
				assert.True(t, errors.Is(err, ErrEmailExists))
			}
		}
		assert.Equal(t, 1, ok)
	})
}

func TestRepository_FindByCredentials(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storage.NewMemoryStore(), usersKey)
	require.NoError(t, repo.Create(ctx, credential("1", "ada@example.com", "pw")))

	t.Run("Match", func(t *testing.T) {
		c, err := repo.FindByCredentials(ctx, "ada@example.com", "pw")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "1", c.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		c, err := repo.FindByCredentials(ctx, "ada@example.com", "PW")
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("NoNormalization", func(t *testing.T) {
		c, err := repo.FindByCredentials(ctx, " ada@example.com", "pw")
		assert.NoError(t, err)
		assert.Nil(t, c)
	})
}
