package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appErrors "github.com/taskdesk/taskdesk/app/errors"
	"github.com/taskdesk/taskdesk/app/models"
	"github.com/taskdesk/taskdesk/app/store"
)

// AuthService handles credential checks and user creation. It is the single
// owner of the in-memory user roster; UserService reads through it rather
// than keeping its own copy.
type AuthService struct {
	store  store.Storage
	hasher *PasswordHasher
	log    zerolog.Logger
	users  []models.User
}

// NewAuthService creates a new AuthService
func NewAuthService(storage store.Storage, hasher *PasswordHasher, log zerolog.Logger) *AuthService {
	return &AuthService{
		store:  storage,
		hasher: hasher,
		log:    log,
	}
}

// Init loads the roster from storage. It must be called exactly once before
// any other operation; the roster is never re-read mid-run.
func (s *AuthService) Init(ctx context.Context) error {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return err
	}
	s.users = users
	s.log.Debug().Int("count", len(users)).Msg("user roster loaded")
	return nil
}

// Login returns the user with the exactly matching login and password, or
// nil when either the login is unknown or the password does not verify.
// The two failure cases are indistinguishable, so a caller cannot probe
// which logins exist.
func (s *AuthService) Login(login, password string) *models.User {
	for i := range s.users {
		if s.users[i].Login == login {
			if s.hasher.Verify(password, s.users[i].PasswordHash) {
				u := s.users[i]
				return &u
			}
			return nil
		}
	}
	return nil
}

// CreateUser registers a new user with a case-sensitively unique login.
// The full roster is saved before the in-memory append, so a failed save
// leaves both the in-memory and durable state unchanged.
func (s *AuthService) CreateUser(ctx context.Context, login, rawPassword string, role models.Role) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Login == login {
			return nil, appErrors.NewConflict("login already in use")
		}
	}

	record, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, appErrors.NewInternal("error hashing password")
	}

	user := models.User{
		ID:           uuid.New(),
		Login:        login,
		PasswordHash: record,
		Role:         role,
	}

	next := make([]models.User, 0, len(s.users)+1)
	next = append(next, s.users...)
	next = append(next, user)
	if err := s.store.SaveUsers(ctx, next); err != nil {
		s.log.Error().Err(err).Str("login", login).Msg("failed to persist user roster")
		return nil, err
	}
	s.users = next

	s.log.Info().Str("login", login).Str("role", string(role)).Msg("user created")
	return &user, nil
}

// Users returns the roster in load/insertion order. The returned slice is
// shared; callers must not mutate it.
func (s *AuthService) Users() []models.User {
	return s.users
}
