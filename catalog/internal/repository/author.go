package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

var authorColumns = []string{"id", "first_name", "last_name", "date_of_birth", "date_of_death"}

const authorReturning = "returning id, first_name, last_name, date_of_birth, date_of_death"

func (r *repository) CountAuthors(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(authorTableName))
}

func (r *repository) ListAuthors(ctx context.Context, p model.Paging) ([]model.Author, error) {
	query, args, err := qb.Select(authorColumns...).
		From(authorTableName).
		OrderBy("last_name", "first_name", "id").
		Limit(p.Limit()).
		Offset(p.Offset()).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Author])
}

func (r *repository) GetAuthor(ctx context.Context, id int) (model.Author, error) {
	query, args, err := qb.Select(authorColumns...).
		From(authorTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Author{}, err
	}
	a, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Author])
	return a, mapErr(err)
}

func (r *repository) CreateAuthor(ctx context.Context, a model.Author) (model.Author, error) {
	query, args, err := qb.Insert(authorTableName).
		Columns("first_name", "last_name", "date_of_birth", "date_of_death").
		Values(a.FirstName, a.LastName, a.DateOfBirth, a.DateOfDeath).
		Suffix(authorReturning).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Author{}, mapErr(err)
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Author])
	return created, mapErr(err)
}

func (r *repository) UpdateAuthor(ctx context.Context, a model.Author) (model.Author, error) {
	query, args, err := qb.Update(authorTableName).
		SetMap(map[string]interface{}{
			"first_name":    a.FirstName,
			"last_name":     a.LastName,
			"date_of_birth": a.DateOfBirth,
			"date_of_death": a.DateOfDeath,
		}).
		Where(sq.Eq{"id": a.ID}).
		Suffix(authorReturning).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Author{}, mapErr(err)
	}
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Author])
	return updated, mapErr(err)
}

// DeleteAuthor relies on the FK to null out book.author_id.
func (r *repository) DeleteAuthor(ctx context.Context, id int) error {
	query, args, err := qb.Delete(authorTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
