package user

import (
	"context"
	"errors"
	"time"

	"shopuniverse/internal/logger"
	"shopuniverse/internal/remote"
	"shopuniverse/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is the part of the state container that tracks the signed-in user.
type Session interface {
	CurrentUser() *User
	SetUser(ctx context.Context, u *User) error
}

type TokenIssuer interface {
	Issue(u User) (string, error)
}

type Caller interface {
	Do(ctx context.Context, tier remote.Tier, name string, fn func(ctx context.Context) error) error
}

type Service interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, data RegisterData) (*AuthResult, error)
	Logout(ctx context.Context) error
	Current() *User
}

type service struct {
	repo    Repository
	session Session
	caller  Caller
	tokens  TokenIssuer

	newID func() string
	now   func() time.Time
}

// NewService wires the simulated auth backend. tokens may be nil, in which
// case results carry no token.
func NewService(repo Repository, session Session, caller Caller, tokens TokenIssuer) Service {
	return &service{
		repo:    repo,
		session: session,
		caller:  caller,
		tokens:  tokens,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Login signs in on an exact email and password match. Overlapping logins
// are not serialized; the last to finish owns the session.
func (s *service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var result *AuthResult

	err := s.caller.Do(ctx, remote.TierAuth, "login", func(ctx context.Context) error {
		log := logger.FromCtx(ctx).With(zap.String("layer", "service"), zap.String("method", "Login"))

		cred, err := s.repo.FindByCredentials(ctx, email, password)
		if err != nil {
			log.Error("failed to read registered users", zap.Error(err))
			return err
		}
		if cred == nil {
			log.Warn("login rejected")
			return ErrInvalidCredentials
		}

		result, err = s.establish(ctx, cred.Public())
		if err == nil {
			log.Info("login completed", zap.String("user_id", cred.ID))
		}
		return err
	})
	return result, err
}

func (s *service) Register(ctx context.Context, data RegisterData) (*AuthResult, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	var result *AuthResult

	err := s.caller.Do(ctx, remote.TierAuth, "register", func(ctx context.Context) error {
		log := logger.FromCtx(ctx).With(zap.String("layer", "service"), zap.String("method", "Register"))

		cred := Credential{
			User: User{
				ID:        s.newID(),
				Email:     data.Email,
				FirstName: data.FirstName,
				LastName:  data.LastName,
				CreatedAt: s.now().UTC(),
			},
			Password: data.Password,
		}

		if err := s.repo.Create(ctx, cred); err != nil {
			if errors.Is(err, ErrEmailExists) {
				log.Warn("email already registered")
			} else {
				log.Error("failed to create user", zap.Error(err))
			}
			return err
		}

		var err error
		result, err = s.establish(ctx, cred.Public())
		if err == nil {
			log.Info("register completed", zap.String("user_id", cred.ID))
		}
		return err
	})
	return result, err
}

// establish makes u the session user. A storage failure still returns the
// result: the session is live for this process, only durability is lost.
func (s *service) establish(ctx context.Context, u User) (*AuthResult, error) {
	result := &AuthResult{User: u}

	if s.tokens != nil {
		token, err := s.tokens.Issue(u)
		if err != nil {
			return nil, err
		}
		result.Token = token
	}

	if err := s.session.SetUser(ctx, &u); err != nil {
		if errors.Is(err, storage.ErrStorageUnavailable) {
			return result, err
		}
		return nil, err
	}
	return result, nil
}

func (s *service) Logout(ctx context.Context) error {
	return s.session.SetUser(ctx, nil)
}

func (s *service) Current() *User {
	return s.session.CurrentUser()
}
