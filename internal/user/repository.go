package user

import (
	"context"
	"errors"
	"sync"

	"shopuniverse/internal/logger"
	"shopuniverse/internal/storage"

	"go.uber.org/zap"
)

// Repository is the registered-users collection.
type Repository interface {
	List(ctx context.Context) ([]Credential, error)
	FindByCredentials(ctx context.Context, email, password string) (*Credential, error)
	Create(ctx context.Context, c Credential) error
}

type repository struct {
	store storage.Store
	key   string

	// mu makes Create's read-modify-write atomic so emails stay unique.
	mu sync.Mutex
}

func NewRepository(store storage.Store, key string) Repository {
	return &repository{store: store, key: key}
}

// List treats a malformed collection as empty.
func (r *repository) List(ctx context.Context) ([]Credential, error) {
	var users []Credential
	_, err := storage.ReadJSON(ctx, r.store, r.key, &users)
	if errors.Is(err, storage.ErrMalformed) {
		logger.FromCtx(ctx).Warn("registered users collection is malformed, treating as empty",
			zap.String("layer", "repository"),
			zap.Error(err),
		)
		return []Credential{}, nil
	}
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []Credential{}
	}
	return users, nil
}

// FindByCredentials matches email and password exactly. No match is (nil, nil).
func (r *repository) FindByCredentials(ctx context.Context, email, password string) (*Credential, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *repository) Create(ctx context.Context, c Credential) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("user_id", c.ID),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == c.Email {
			return ErrEmailExists
		}
	}

	if err := storage.WriteJSON(ctx, r.store, r.key, append(users, c)); err != nil {
		log.Error("failed to save registered users", zap.Error(err))
		return err
	}

	log.Info("registered user saved", zap.Int("users", len(users)+1))
	return nil
}
