package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

var bookColumns = []string{
	"b.id", "b.title", "b.summary", "b.isbn", "b.author_id",
	"a.first_name", "a.last_name", "a.date_of_birth", "a.date_of_death",
}

func selectBooks() sq.SelectBuilder {
	return qb.Select(bookColumns...).
		From(bookTableName + " b").
		LeftJoin(fmt.Sprintf("%s a on a.id = b.author_id", authorTableName))
}

func scanBook(row pgx.CollectableRow) (model.Book, error) {
	var (
		b                   model.Book
		firstName, lastName *string
		author              model.Author
	)
	if err := row.Scan(&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID,
		&firstName, &lastName, &author.DateOfBirth, &author.DateOfDeath); err != nil {
		return model.Book{}, err
	}
	if b.AuthorID != nil && firstName != nil && lastName != nil {
		author.ID = *b.AuthorID
		author.FirstName = *firstName
		author.LastName = *lastName
		b.Author = &author
	}
	return b, nil
}

func (r *repository) queryBooks(ctx context.Context, q sq.SelectBuilder) ([]model.Book, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("queryBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBook)
}

func (r *repository) CountBooks(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(bookTableName))
}

func (r *repository) ListBooks(ctx context.Context, p model.Paging) ([]model.Book, error) {
	return r.queryBooks(ctx, selectBooks().
		OrderBy("b.title", "b.id").
		Limit(p.Limit()).
		Offset(p.Offset()))
}

func (r *repository) ListBooksByAuthor(ctx context.Context, authorID int) ([]model.Book, error) {
	return r.queryBooks(ctx, selectBooks().
		Where(sq.Eq{"b.author_id": authorID}).
		OrderBy("b.title", "b.id"))
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := selectBooks().
		Where(sq.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	book, err := pgx.CollectOneRow(rows, scanBook)
	if err != nil {
		return model.Book{}, mapErr(err)
	}
	return book, nil
}

func (r *repository) ListGenresByBook(ctx context.Context, bookID int) ([]model.Genre, error) {
	query, args, err := qb.Select("g.id", "g.name").
		From(genreTableName + " g").
		Join(fmt.Sprintf("%s bg on bg.genre_id = g.id", bookGenreTableName)).
		Where(sq.Eq{"bg.book_id": bookID}).
		OrderBy("g.name").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Genre])
}

func (r *repository) CreateGenre(ctx context.Context, name string) (model.Genre, error) {
	query, args, err := qb.Insert(genreTableName).
		Columns("name").
		Values(name).
		Suffix("returning id, name").
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Genre{}, mapErr(err)
	}
	g, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Genre])
	return g, mapErr(err)
}

// CreateBook inserts the book and its genre links in one transaction.
func (r *repository) CreateBook(ctx context.Context, book model.Book, genreIDs []int) (model.Book, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Book{}, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query, args, err := qb.Insert(bookTableName).
		Columns("title", "summary", "isbn", "author_id").
		Values(book.Title, book.Summary, book.ISBN, book.AuthorID).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	if err := tx.QueryRow(ctx, query, args...).Scan(&book.ID); err != nil {
		return model.Book{}, mapErr(err)
	}

	if len(genreIDs) > 0 {
		ins := qb.Insert(bookGenreTableName).Columns("book_id", "genre_id")
		for _, gid := range genreIDs {
			ins = ins.Values(book.ID, gid)
		}
		query, args, err = ins.ToSql()
		if err != nil {
			return model.Book{}, err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return model.Book{}, mapErr(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Book{}, errors.Wrap(err, "commit")
	}
	return book, nil
}
