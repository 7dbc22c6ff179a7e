package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"pocketbook/internal/core"
	"pocketbook/internal/ids"
	"pocketbook/internal/storage"
)

var defaultAccounts = []core.Account{
	{ID: "card", Name: "Card", Balance: decimal.Zero, Emoji: "💳"},
	{ID: "cash", Name: "Cash", Balance: decimal.Zero, Emoji: "💰"},
	{ID: "savings", Name: "Savings", Balance: decimal.Zero, Emoji: "🏦"},
}

// AccountService manages the account collection. The first empty read
// seeds and persists three default accounts. Deleting an account does
// not remove or reassign transactions referencing it, and balances are
// stored values, never recomputed from transactions.
type AccountService struct {
	repo *storage.Repository
	gen  ids.Generator

	mu       sync.Mutex
	accounts []core.Account
	loaded   bool
}

func NewAccountService(repo *storage.Repository, gen ids.Generator) *AccountService {
	if gen == nil {
		gen = ids.Timestamp{}
	}
	return &AccountService{repo: repo, gen: gen}
}

// List returns the cached accounts, loading and default-seeding on
// first use.
func (s *AccountService) List(ctx context.Context) ([]core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		accounts, err := s.repo.Accounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("list accounts: %w", err)
		}
		if len(accounts) == 0 {
			accounts = append([]core.Account(nil), defaultAccounts...)
			if err := s.repo.SaveAccounts(ctx, accounts); err != nil {
				return nil, fmt.Errorf("seed accounts: %w", err)
			}
			slog.InfoContext(ctx, "Seeded default accounts", "count", len(accounts))
		}
		s.accounts = accounts
		s.loaded = true
	}

	return append([]core.Account(nil), s.accounts...), nil
}

// Add creates a new account with a zero balance and persists the
// updated collection.
func (s *AccountService) Add(ctx context.Context, name, emoji string) (core.Account, error) {
	if strings.TrimSpace(name) == "" {
		return core.Account{}, core.ErrEmptyName
	}
	if emoji == "" {
		emoji = core.DefaultEmoji
	}

	if _, err := s.List(ctx); err != nil {
		return core.Account{}, err
	}

	account := core.Account{
		ID:      s.gen.NewID(),
		Name:    name,
		Balance: decimal.Zero,
		Emoji:   emoji,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = append(s.accounts, account)
	if err := s.repo.SaveAccounts(ctx, s.accounts); err != nil {
		return core.Account{}, fmt.Errorf("persist accounts: %w", err)
	}

	slog.InfoContext(ctx, "Account added", "id", account.ID, "name", account.Name)
	return account, nil
}

// Remove deletes the account with the given id. Absent ids are a
// silent no-op.
func (s *AccountService) Remove(ctx context.Context, id string) error {
	if _, err := s.List(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]core.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	s.accounts = filtered
	if err := s.repo.SaveAccounts(ctx, s.accounts); err != nil {
		return fmt.Errorf("persist accounts: %w", err)
	}

	slog.InfoContext(ctx, "Account removed", "id", id)
	return nil
}

// SetEmoji replaces the display glyph of the matching account. Absent
// ids are a silent no-op.
func (s *AccountService) SetEmoji(ctx context.Context, id, emoji string) error {
	return s.update(ctx, id, func(a *core.Account) { a.Emoji = emoji })
}

// Rename changes the name of the matching account.
func (s *AccountService) Rename(ctx context.Context, id, name string) error {
	if strings.TrimSpace(name) == "" {
		return core.ErrEmptyName
	}
	return s.update(ctx, id, func(a *core.Account) { a.Name = name })
}

func (s *AccountService) update(ctx context.Context, id string, apply func(*core.Account)) error {
	if _, err := s.List(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID == id {
			apply(&s.accounts[i])
			break
		}
	}
	if err := s.repo.SaveAccounts(ctx, s.accounts); err != nil {
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}
