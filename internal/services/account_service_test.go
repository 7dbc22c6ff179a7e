package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketbook/internal/core"
	"pocketbook/internal/kv"
	"pocketbook/internal/storage"
)

// fixedIDs hands out a predictable id sequence.
type fixedIDs struct {
	next int
}

func (f *fixedIDs) NewID() string {
	f.next++
	return string(rune('a' + f.next - 1))
}

func TestAccountListSeedsDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	repo := storage.New(kv.NewMemory())
	svc := NewAccountService(repo, &fixedIDs{})

	accounts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "Card", accounts[0].Name)
	assert.Equal(t, "💰", accounts[1].Emoji)

	// the seed is persisted, not just cached
	stored, err := repo.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	// a fresh service sees the stored accounts, no re-seed
	again, err := NewAccountService(repo, &fixedIDs{}).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, accounts, again)
}

func TestAccountAdd(t *testing.T) {
	ctx := context.Background()
	repo := storage.New(kv.NewMemory())
	svc := NewAccountService(repo, &fixedIDs{})

	account, err := svc.Add(ctx, "Vacation", "✈️")
	require.NoError(t, err)
	assert.Equal(t, "a", account.ID)
	assert.True(t, account.Balance.IsZero())

	stored, _ := repo.Accounts(ctx)
	require.Len(t, stored, 4)
	assert.Equal(t, "Vacation", stored[3].Name)
}

func TestAccountAddEmptyName(t *testing.T) {
	svc := NewAccountService(storage.New(kv.NewMemory()), &fixedIDs{})
	_, err := svc.Add(context.Background(), "  ", "")
	require.ErrorIs(t, err, core.ErrEmptyName)
}

func TestAccountAddDefaultsEmoji(t *testing.T) {
	svc := NewAccountService(storage.New(kv.NewMemory()), &fixedIDs{})
	account, err := svc.Add(context.Background(), "Plain", "")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultEmoji, account.Emoji)
}

func TestAccountRemove(t *testing.T) {
	ctx := context.Background()
	repo := storage.New(kv.NewMemory())
	svc := NewAccountService(repo, &fixedIDs{})

	require.NoError(t, svc.Remove(ctx, "cash"))
	accounts, _ := svc.List(ctx)
	require.Len(t, accounts, 2)
	for _, a := range accounts {
		assert.NotEqual(t, "cash", a.ID)
	}

	// absent id is a silent no-op
	require.NoError(t, svc.Remove(ctx, "cash"))
	accounts, _ = svc.List(ctx)
	assert.Len(t, accounts, 2)
}

func TestAccountSetEmoji(t *testing.T) {
	ctx := context.Background()
	repo := storage.New(kv.NewMemory())
	svc := NewAccountService(repo, &fixedIDs{})

	require.NoError(t, svc.SetEmoji(ctx, "savings", "🚀"))

	stored, _ := repo.Accounts(ctx)
	for _, a := range stored {
		if a.ID == "savings" {
			assert.Equal(t, "🚀", a.Emoji)
			return
		}
	}
	t.Fatalf("savings account missing: %v", stored)
}

func TestAccountRename(t *testing.T) {
	ctx := context.Background()
	svc := NewAccountService(storage.New(kv.NewMemory()), &fixedIDs{})

	require.NoError(t, svc.Rename(ctx, "card", "Debit Card"))
	accounts, _ := svc.List(ctx)
	assert.Equal(t, "Debit Card", accounts[0].Name)

	require.ErrorIs(t, svc.Rename(ctx, "card", " "), core.ErrEmptyName)
}
