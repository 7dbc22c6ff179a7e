// Package services holds the stateful managers presentation surfaces
// talk to. Each manager owns a local cache of one collection and keeps
// it converged with the repository after every mutation.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"pocketbook/internal/core"
	"pocketbook/internal/storage"
)

// TransactionService holds the process-lifetime in-memory view of the
// transaction sequence, most recent first.
//
// Consistency contract: after Add or Remove return nil, the in-memory
// sequence and the persisted sequence are equal. On a persist failure
// the in-memory sequence has already diverged and is NOT rolled back;
// the divergence heals on the next Load. Mutations are serialized with
// a mutex, so two overlapping operations cannot lose each other's
// update within this process.
type TransactionService struct {
	repo *storage.Repository

	mu   sync.Mutex
	txns []core.Transaction
}

func NewTransactionService(repo *storage.Repository) *TransactionService {
	return &TransactionService{repo: repo}
}

// Load replaces the in-memory sequence with the repository's current
// transactions. On failure the cached sequence is left unchanged,
// stale but available.
func (s *TransactionService) Load(ctx context.Context) error {
	txns, err := s.repo.Transactions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load transactions, keeping cached view", "error", err)
		return fmt.Errorf("load transactions: %w", err)
	}
	s.mu.Lock()
	s.txns = txns
	s.mu.Unlock()
	return nil
}

// Add prepends the transaction and persists the full updated
// sequence. The caller supplies the id; no uniqueness check is made.
func (s *TransactionService) Add(ctx context.Context, txn core.Transaction) error {
	if err := txn.Validate(); err != nil {
		return fmt.Errorf("add transaction: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.txns = append([]core.Transaction{txn}, s.txns...)
	if err := s.repo.SaveTransactions(ctx, s.txns); err != nil {
		return fmt.Errorf("persist transactions: %w", err)
	}

	slog.InfoContext(ctx, "Transaction added",
		"id", txn.ID, "type", txn.Type, "amount", txn.Amount, "date", txn.Date)
	return nil
}

// Remove filters the transaction with the given id out of the
// sequence and persists the result. An absent id is a no-op, not an
// error.
func (s *TransactionService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]core.Transaction, 0, len(s.txns))
	for _, t := range s.txns {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	s.txns = filtered
	if err := s.repo.SaveTransactions(ctx, s.txns); err != nil {
		return fmt.Errorf("persist transactions: %w", err)
	}

	slog.InfoContext(ctx, "Transaction removed", "id", id)
	return nil
}

// All returns a snapshot copy of the in-memory sequence.
func (s *TransactionService) All() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txns...)
}
