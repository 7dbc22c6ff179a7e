package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"pocketbook/internal/core"
	"pocketbook/internal/storage"
)

// GoalService manages the single savings-goal scalar and reports
// progress toward it.
type GoalService struct {
	repo *storage.Repository
}

func NewGoalService(repo *storage.Repository) *GoalService {
	return &GoalService{repo: repo}
}

// Amount returns the current goal, falling back to the default until
// one has been set.
func (s *GoalService) Amount(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.GoalAmount(ctx)
}

// SetAmount stores a new goal. The goal must be strictly positive.
func (s *GoalService) SetAmount(ctx context.Context, goal decimal.Decimal) error {
	if goal.Sign() <= 0 {
		return fmt.Errorf("set goal: %w", core.ErrInvalidAmount)
	}
	if err := s.repo.SaveGoalAmount(ctx, goal); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Goal amount updated", "goal", goal)
	return nil
}

// Progress returns the percentage of the goal covered by the given
// transaction history, clamped at 100.
func (s *GoalService) Progress(ctx context.Context, txns []core.Transaction) (float64, error) {
	goal, err := s.Amount(ctx)
	if err != nil {
		return 0, err
	}
	return core.GoalProgress(core.TotalBalance(txns), goal), nil
}
