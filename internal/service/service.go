package service

import (
	"context"
	"time"

	"inventory_lending/internal/models"
	"inventory_lending/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
	ParseToken(accessToken string) (int, error)
	GetUser(ctx context.Context, id int) (models.User, error)
}

// Resource exposes the five lifecycle operations shared by every loanable
// resource collection. Items and borrow records are two instantiations of
// the same manager rather than two copies of it.
type Resource[T any] interface {
	Create(ctx context.Context, rec T) (T, error)
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, id string, rec T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Config carries process-scoped settings injected into services at
// construction; there is no package-level secret.
type Config struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
}

// Service aggregates all sub-services behind one wiring point.
type Service struct {
	Authorization
	Items   Resource[models.Item]
	Borrows Resource[models.BorrowRecord]
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg),
		Items:         NewResourceService[models.Item](repos.Items, itemNameGuard(repos.Items)),
		Borrows:       NewResourceService[models.BorrowRecord](repos.Borrows, nil),
	}
}
