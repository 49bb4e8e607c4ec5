package service

import (
	"context"
	"errors"
	"fmt"

	"inventory_lending/internal/models"
	"inventory_lending/internal/repository"
)

// ErrDuplicateName is returned when creating an item whose name is already
// in the catalog. Borrow records carry no such constraint.
var ErrDuplicateName = errors.New("name already exists")

// createGuard runs before an insert and may veto it.
type createGuard[T any] func(ctx context.Context, rec T) error

// ResourceService is the single parametrized manager behind both resource
// collections: the five operations are written once and instantiated per
// record type. It delegates storage to the repo and adds only the optional
// pre-create guard.
type ResourceService[T any] struct {
	repo  repository.ResourceRepo[T]
	guard createGuard[T]
}

func NewResourceService[T any](repo repository.ResourceRepo[T], guard createGuard[T]) *ResourceService[T] {
	return &ResourceService[T]{repo: repo, guard: guard}
}

// Create persists a new record after the guard (if any) admits it. A guard
// rejection means zero writes.
func (s *ResourceService[T]) Create(ctx context.Context, rec T) (T, error) {
	if s.guard != nil {
		if err := s.guard(ctx, rec); err != nil {
			var zero T
			return zero, err
		}
	}
	return s.repo.Insert(ctx, rec)
}

func (s *ResourceService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *ResourceService[T]) GetByID(ctx context.Context, id string) (T, error) {
	return s.repo.GetByID(ctx, id)
}

// Update is a full-field replace; partial patches are not supported.
func (s *ResourceService[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	return s.repo.Update(ctx, id, rec)
}

func (s *ResourceService[T]) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// itemNameGuard rejects catalog entries whose name is already taken. The
// check is a lookup, not a schema constraint, mirroring the rest of the
// lifecycle discipline.
func itemNameGuard(repo repository.ItemRepo) createGuard[models.Item] {
	return func(ctx context.Context, it models.Item) error {
		existing, err := repo.GetByName(ctx, it.Name)
		if err != nil {
			return fmt.Errorf("check item name %q: %w", it.Name, err)
		}
		if existing != nil {
			return ErrDuplicateName
		}
		return nil
	}
}
