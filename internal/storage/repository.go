// Package storage provides typed accessors over the key-value store
// for each persisted collection. Every collection is read and written
// whole; there are no partial updates.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"pocketbook/internal/core"
	"pocketbook/internal/kv"
)

// Collection keys. These match the layout of the stored data and must
// not change without a data migration.
const (
	accountsKey          = "user_accounts"
	incomeCategoriesKey  = "income_categories"
	expenseCategoriesKey = "expense_categories"
	transactionsKey      = "user_transactions"
	goalKey              = "user_budget"
)

// DefaultGoal applies until the user sets a goal of their own.
var DefaultGoal = decimal.NewFromInt(1_000_000)

var (
	defaultIncomeCategories = []core.Category{
		{ID: "salary", Name: "Salary"},
		{ID: "freelance", Name: "Freelance"},
	}
	defaultExpenseCategories = []core.Category{
		{ID: "food", Name: "Food"},
		{ID: "transport", Name: "Transport"},
	}
)

// Repository reads and writes domain collections through a kv.Store.
//
// Read methods return storage I/O errors to the caller; a payload that
// is present but malformed is logged and decoded to the empty value
// instead, so a corrupt record can never wedge the application. Write
// methods overwrite the whole collection.
type Repository struct {
	store       kv.Store
	defaultGoal decimal.Decimal
}

func New(store kv.Store) *Repository {
	return &Repository{store: store, defaultGoal: DefaultGoal}
}

// SetDefaultGoal overrides the goal reported before the user sets one.
func (r *Repository) SetDefaultGoal(goal decimal.Decimal) {
	if goal.Sign() > 0 {
		r.defaultGoal = goal
	}
}

// Transactions returns the stored transaction sequence, most recent
// first (inserts prepend).
func (r *Repository) Transactions(ctx context.Context) ([]core.Transaction, error) {
	var txns []core.Transaction
	if err := r.getJSON(ctx, transactionsKey, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *Repository) SaveTransactions(ctx context.Context, txns []core.Transaction) error {
	return r.setJSON(ctx, transactionsKey, txns)
}

// Accounts returns the stored accounts. Records persisted before the
// emoji field existed are back-filled with the default glyph on read;
// the stored record is unchanged until the next save.
func (r *Repository) Accounts(ctx context.Context) ([]core.Account, error) {
	var accounts []core.Account
	if err := r.getJSON(ctx, accountsKey, &accounts); err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Emoji == "" {
			accounts[i].Emoji = core.DefaultEmoji
		}
	}
	return accounts, nil
}

func (r *Repository) SaveAccounts(ctx context.Context, accounts []core.Account) error {
	return r.setJSON(ctx, accountsKey, accounts)
}

func (r *Repository) IncomeCategories(ctx context.Context) ([]core.Category, error) {
	var cats []core.Category
	if err := r.getJSON(ctx, incomeCategoriesKey, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *Repository) SaveIncomeCategories(ctx context.Context, cats []core.Category) error {
	return r.setJSON(ctx, incomeCategoriesKey, cats)
}

func (r *Repository) ExpenseCategories(ctx context.Context) ([]core.Category, error) {
	var cats []core.Category
	if err := r.getJSON(ctx, expenseCategoriesKey, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *Repository) SaveExpenseCategories(ctx context.Context, cats []core.Category) error {
	return r.setJSON(ctx, expenseCategoriesKey, cats)
}

// GoalAmount returns the stored savings goal, or the default until one
// has been set.
func (r *Repository) GoalAmount(ctx context.Context) (decimal.Decimal, error) {
	raw, ok, err := r.store.Get(ctx, goalKey)
	if err != nil {
		return r.defaultGoal, fmt.Errorf("read goal amount: %w", err)
	}
	if !ok {
		return r.defaultGoal, nil
	}
	goal, err := decimal.NewFromString(raw)
	if err != nil {
		slog.Warn("Malformed goal amount in store, using default",
			"key", goalKey, "value", raw, "error", err)
		return r.defaultGoal, nil
	}
	return goal, nil
}

func (r *Repository) SaveGoalAmount(ctx context.Context, goal decimal.Decimal) error {
	if err := r.store.Set(ctx, goalKey, goal.String()); err != nil {
		return fmt.Errorf("save goal amount: %w", err)
	}
	return nil
}

// InitDefaultCategories seeds each category collection with its fixed
// defaults, only when that collection is currently empty. Idempotent.
func (r *Repository) InitDefaultCategories(ctx context.Context) error {
	income, err := r.IncomeCategories(ctx)
	if err != nil {
		return fmt.Errorf("init income categories: %w", err)
	}
	if len(income) == 0 {
		if err := r.SaveIncomeCategories(ctx, defaultIncomeCategories); err != nil {
			return fmt.Errorf("seed income categories: %w", err)
		}
		slog.Info("Seeded default income categories", "count", len(defaultIncomeCategories))
	}

	expense, err := r.ExpenseCategories(ctx)
	if err != nil {
		return fmt.Errorf("init expense categories: %w", err)
	}
	if len(expense) == 0 {
		if err := r.SaveExpenseCategories(ctx, defaultExpenseCategories); err != nil {
			return fmt.Errorf("seed expense categories: %w", err)
		}
		slog.Info("Seeded default expense categories", "count", len(defaultExpenseCategories))
	}

	return nil
}

// ClearAllData removes the four collection keys. The goal amount key
// is kept unless clearGoal is set; the historical behavior of the app
// left it in place.
func (r *Repository) ClearAllData(ctx context.Context, clearGoal bool) error {
	keys := []string{accountsKey, incomeCategoriesKey, expenseCategoriesKey, transactionsKey}
	if clearGoal {
		keys = append(keys, goalKey)
	}
	if err := r.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	slog.Info("All data cleared", "keys", len(keys))
	return nil
}

// getJSON decodes the collection stored under key into out. An absent
// key leaves out at its zero value. A malformed payload is logged and
// likewise decodes to the zero value; only storage I/O failures are
// returned as errors.
func (r *Repository) getJSON(ctx context.Context, key string, out any) error {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %q: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		slog.Warn("Malformed payload in store, using empty collection",
			"key", key, "error", err)
	}
	return nil
}

func (r *Repository) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}
