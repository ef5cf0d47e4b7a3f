package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	HomeStats(ctx context.Context) (model.HomeStats, error)
	Visit(ctx context.Context, key string) (model.Session, error)
	SessionAge() time.Duration

	ListBooks(ctx context.Context, page string) (model.ListBooks, error)
	GetBookDetail(ctx context.Context, id int) (model.BookDetail, error)
	ListAuthors(ctx context.Context, page string) (model.ListAuthors, error)
	GetAuthorDetail(ctx context.Context, id int) (model.AuthorDetail, error)

	GetAuthor(ctx context.Context, id int) (model.Author, error)
	CreateAuthor(ctx context.Context, actor string, a model.Author) (model.Author, error)
	UpdateAuthor(ctx context.Context, actor string, a model.Author) (model.Author, error)
	DeleteAuthor(ctx context.Context, actor string, id int) error

	ListBorrowed(ctx context.Context, userID int, page string) (model.ListBookInstances, error)
	ListOnLoan(ctx context.Context, page string) (model.ListBookInstances, error)
	GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error)
	ProposedRenewalDate() time.Time
	Today() time.Time
	RenewBookInstance(ctx context.Context, actor string, id uuid.UUID, dueBack time.Time) error
	CheckoutBookInstance(ctx context.Context, actor string, id uuid.UUID, borrower string, dueBack time.Time) error
	ReturnBookInstance(ctx context.Context, actor string, id uuid.UUID) error

	Authenticate(ctx context.Context, username, password string) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
}

var _ CatalogService = (*service.Service)(nil)
