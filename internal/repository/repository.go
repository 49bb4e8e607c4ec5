package repository

import (
	"context"
	"database/sql"
	"errors"

	"inventory_lending/internal/models"
)

// ErrNotFound is returned by keyed reads/writes when no record has the id.
var ErrNotFound = errors.New("record not found")

type UserRepo interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// ResourceRepo is the uniform persistence contract shared by both loanable
// resource collections. Update is a full-field replace returning the
// post-update record; Update and Delete fail with ErrNotFound for unknown ids.
type ResourceRepo[T any] interface {
	Insert(ctx context.Context, rec T) (T, error)
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, id string, rec T) (T, error)
	Delete(ctx context.Context, id string) error
}

// ItemRepo adds the name lookup used for the duplicate-name guard.
type ItemRepo interface {
	ResourceRepo[models.Item]
	GetByName(ctx context.Context, name string) (*models.Item, error)
}

type BorrowRepo interface {
	ResourceRepo[models.BorrowRecord]
}

type Repository struct {
	Users   UserRepo
	Items   ItemRepo
	Borrows BorrowRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:   NewUserRepository(db),
		Items:   NewItemSQLite(db),
		Borrows: NewBorrowSQLite(db),
	}
}
