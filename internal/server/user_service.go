package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/stylesense/internal/config"
	"github.com/jonathan/stylesense/internal/kv"
	"github.com/jonathan/stylesense/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// userKeyPrefix namespaces account documents in the key-value store.
const userKeyPrefix = "user_"

// account is the stored account document. It is never sent to clients.
type account struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	PasswordHash string               `json:"passwordHash"`
	Measurements types.Measurements   `json:"measurements"`
	History      []types.HistoryEntry `json:"outfitHistory"`
	CreatedAt    time.Time            `json:"createdAt"`
}

func (a *account) toUser() *types.User {
	return &types.User{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Measurements: a.Measurements,
		CreatedAt:    a.CreatedAt,
	}
}

// UserService provides business logic for accounts, measurements and outfit history
type UserService struct {
	store          kv.Store
	passwordConfig *config.PasswordConfig
	now            func() time.Time

	// mu serializes read-modify-write cycles on account documents.
	mu sync.Mutex
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store kv.Store, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
		now:            time.Now,
	}
}

func userKey(email string) string {
	return userKeyPrefix + normalizeEmail(email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) load(ctx context.Context, email string) (*account, error) {
	raw, err := s.store.Get(ctx, userKey(email))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, &ErrUserNotFound{Email: normalizeEmail(email)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	var acct account
	if err := json.Unmarshal(raw, &acct); err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}
	return &acct, nil
}

func (s *UserService) save(ctx context.Context, acct *account) error {
	raw, err := json.Marshal(acct)
	if err != nil {
		return fmt.Errorf("failed to encode account: %w", err)
	}
	if err := s.store.Set(ctx, userKey(acct.Email), raw); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// Register creates a new account with empty measurements and history
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	email := normalizeEmail(req.Email)

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, &ErrValidation{Field: "password", Message: "must be at most 72 bytes", Err: err}
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.load(ctx, email)
	if err == nil {
		return nil, &ErrEmailAlreadyExists{Email: email}
	}
	var notFound *ErrUserNotFound
	if !errors.As(err, &notFound) {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}

	acct := &account{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: passwordHash,
		History:      []types.HistoryEntry{},
		CreatedAt:    s.now().UTC(),
	}
	if err := s.save(ctx, acct); err != nil {
		return nil, err
	}
	return acct.toUser(), nil
}

// Login authenticates an account and returns its profile
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	acct, err := s.load(ctx, req.Email)
	if err != nil {
		var notFound *ErrUserNotFound
		if errors.As(err, &notFound) {
			// same error as a wrong password so account existence is not revealed
			return nil, &ErrInvalidCredentials{}
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.passwordConfig.VerifyPassword(req.Password, acct.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return acct.toUser(), nil
}

// GetProfile returns the profile for an email
func (s *UserService) GetProfile(ctx context.Context, email string) (*types.User, error) {
	acct, err := s.load(ctx, email)
	if err != nil {
		return nil, err
	}
	return acct.toUser(), nil
}

// UpdateMeasurements replaces the stored measurements for an account
func (s *UserService) UpdateMeasurements(ctx context.Context, email string, m types.Measurements) (*types.User, error) {
	if err := m.Validate(); err != nil {
		return nil, &ErrValidation{Field: "measurements", Message: err.Error(), Err: err}
	}
	if m.SkinTone != "" {
		tone, _ := types.ParseSkinTone(m.SkinTone)
		m.SkinTone = string(tone)
	}
	if m.BodyType != "" {
		body, _ := types.ParseBodyType(m.BodyType)
		m.BodyType = string(body)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.load(ctx, email)
	if err != nil {
		return nil, err
	}
	acct.Measurements = m
	if err := s.save(ctx, acct); err != nil {
		return nil, err
	}
	return acct.toUser(), nil
}

// ListHistory returns the account's outfit history, newest first
func (s *UserService) ListHistory(ctx context.Context, email string) ([]types.HistoryEntry, error) {
	acct, err := s.load(ctx, email)
	if err != nil {
		return nil, err
	}

	history := slices.Clone(acct.History)
	if history == nil {
		history = []types.HistoryEntry{}
	}
	slices.SortStableFunc(history, func(a, b types.HistoryEntry) int {
		return b.Date.Compare(a.Date)
	})
	return history, nil
}

// AddHistory appends a rated outfit to the account's history
func (s *UserService) AddHistory(ctx context.Context, email string, req *types.AddHistoryRequest) (*types.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.load(ctx, email)
	if err != nil {
		return nil, err
	}

	entry := types.HistoryEntry{
		ID:         uuid.New(),
		Date:       s.now().UTC(),
		OutfitName: req.OutfitName,
		Items:      slices.Clone(req.Items),
		Rating:     req.Rating,
	}
	acct.History = append(acct.History, entry)
	if err := s.save(ctx, acct); err != nil {
		return nil, err
	}
	return &entry, nil
}
