package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CountBooks(ctx context.Context) (int, error)
	ListBooks(ctx context.Context, p model.Paging) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListGenresByBook(ctx context.Context, bookID int) ([]model.Genre, error)
	CreateGenre(ctx context.Context, name string) (model.Genre, error)
	CreateBook(ctx context.Context, book model.Book, genreIDs []int) (model.Book, error)

	CountAuthors(ctx context.Context) (int, error)
	ListAuthors(ctx context.Context, p model.Paging) ([]model.Author, error)
	GetAuthor(ctx context.Context, id int) (model.Author, error)
	ListBooksByAuthor(ctx context.Context, authorID int) ([]model.Book, error)
	CreateAuthor(ctx context.Context, a model.Author) (model.Author, error)
	UpdateAuthor(ctx context.Context, a model.Author) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int) error

	CountInstances(ctx context.Context, f InstanceFilter) (int, error)
	ListInstances(ctx context.Context, f InstanceFilter, p model.Paging) ([]model.BookInstance, error)
	ListInstancesByBook(ctx context.Context, bookID int) ([]model.BookInstance, error)
	GetInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error)
	CreateInstance(ctx context.Context, bi model.BookInstance) (model.BookInstance, error)
	UpdateDueBack(ctx context.Context, id uuid.UUID, dueBack time.Time) error
	Checkout(ctx context.Context, id uuid.UUID, borrowerID int, dueBack time.Time) error
	Return(ctx context.Context, id uuid.UUID) error

	GetUser(ctx context.Context, id int) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GrantPermissions(ctx context.Context, userID int, perms ...model.Permission) error

	GetSession(ctx context.Context, key uuid.UUID) (model.Session, error)
	SaveSession(ctx context.Context, s model.Session) error

	SaveEvent(ctx context.Context, e model.Event) error
	ListEvents(ctx context.Context, limit int) ([]model.Event, error)
}

// InstanceFilter narrows book_instance queries. Zero values mean no filter.
type InstanceFilter struct {
	Status      model.LoanStatus
	BorrowerID  *int
	DueBackDesc bool
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	authorTableName         = `author`
	genreTableName          = `genre`
	bookTableName           = `book`
	bookGenreTableName      = `book_genre`
	bookInstanceTableName   = `book_instance`
	usersTableName          = `users`
	userPermissionTableName = `user_permission`
	sessionTableName        = `session`
	loanEventTableName      = `loan_event`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		r.log.Error("count", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return 0, err
	}
	return n, nil
}

// mapErr translates driver errors into errs sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrap(errs.ErrAlreadyExists, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return errors.Wrap(errs.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}
