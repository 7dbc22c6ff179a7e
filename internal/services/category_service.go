package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"pocketbook/internal/core"
	"pocketbook/internal/ids"
	"pocketbook/internal/storage"
)

// CategoryKind selects one of the two disjoint category collections.
type CategoryKind string

const (
	IncomeCategories  CategoryKind = "income"
	ExpenseCategories CategoryKind = "expense"
)

var ErrUnknownKind = errors.New("unknown category kind")

// CategoryService manages the income and expense category
// collections. Deleting a category does not cascade to transactions
// that reference its name.
type CategoryService struct {
	repo *storage.Repository
	gen  ids.Generator

	mu     sync.Mutex
	cache  map[CategoryKind][]core.Category
	seeded bool
}

func NewCategoryService(repo *storage.Repository, gen ids.Generator) *CategoryService {
	if gen == nil {
		gen = ids.UUID{}
	}
	return &CategoryService{
		repo:  repo,
		gen:   gen,
		cache: make(map[CategoryKind][]core.Category),
	}
}

// List returns the categories of one kind, seeding the fixed defaults
// on the first empty read.
func (s *CategoryService) List(ctx context.Context, kind CategoryKind) ([]core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		if err := s.repo.InitDefaultCategories(ctx); err != nil {
			return nil, err
		}
		s.seeded = true
	}

	if cached, ok := s.cache[kind]; ok {
		return append([]core.Category(nil), cached...), nil
	}

	cats, err := s.read(ctx, kind)
	if err != nil {
		return nil, err
	}
	s.cache[kind] = cats
	return append([]core.Category(nil), cats...), nil
}

// Add creates a category with a generated id and persists the
// collection.
func (s *CategoryService) Add(ctx context.Context, kind CategoryKind, name string) (core.Category, error) {
	if strings.TrimSpace(name) == "" {
		return core.Category{}, core.ErrEmptyName
	}
	if _, err := s.List(ctx, kind); err != nil {
		return core.Category{}, err
	}

	cat := core.Category{ID: s.gen.NewID(), Name: name}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(append([]core.Category(nil), s.cache[kind]...), cat)
	if err := s.write(ctx, kind, updated); err != nil {
		return core.Category{}, err
	}
	s.cache[kind] = updated

	slog.InfoContext(ctx, "Category added", "kind", kind, "id", cat.ID, "name", cat.Name)
	return cat, nil
}

// Remove deletes the category with the given id. Absent ids are a
// silent no-op.
func (s *CategoryService) Remove(ctx context.Context, kind CategoryKind, id string) error {
	if _, err := s.List(ctx, kind); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]core.Category, 0, len(s.cache[kind]))
	for _, c := range s.cache[kind] {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	if err := s.write(ctx, kind, filtered); err != nil {
		return err
	}
	s.cache[kind] = filtered

	slog.InfoContext(ctx, "Category removed", "kind", kind, "id", id)
	return nil
}

func (s *CategoryService) read(ctx context.Context, kind CategoryKind) ([]core.Category, error) {
	switch kind {
	case IncomeCategories:
		return s.repo.IncomeCategories(ctx)
	case ExpenseCategories:
		return s.repo.ExpenseCategories(ctx)
	}
	return nil, fmt.Errorf("list categories: %w: %q", ErrUnknownKind, kind)
}

func (s *CategoryService) write(ctx context.Context, kind CategoryKind, cats []core.Category) error {
	switch kind {
	case IncomeCategories:
		return s.repo.SaveIncomeCategories(ctx, cats)
	case ExpenseCategories:
		return s.repo.SaveExpenseCategories(ctx, cats)
	}
	return fmt.Errorf("save categories: %w: %q", ErrUnknownKind, kind)
}
