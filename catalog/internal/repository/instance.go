package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

var instanceColumns = []string{
	"bi.id", "bi.book_id", "b.title as book_title", "bi.imprint",
	"bi.due_back", "bi.status", "bi.borrower_id", "u.username as borrower",
}

func selectInstances() sq.SelectBuilder {
	return qb.Select(instanceColumns...).
		From(bookInstanceTableName + " bi").
		Join(fmt.Sprintf("%s b on b.id = bi.book_id", bookTableName)).
		LeftJoin(fmt.Sprintf("%s u on u.id = bi.borrower_id", usersTableName))
}

func (f InstanceFilter) apply(q sq.SelectBuilder) sq.SelectBuilder {
	if f.Status != "" {
		q = q.Where(sq.Eq{"bi.status": f.Status})
	}
	if f.BorrowerID != nil {
		q = q.Where(sq.Eq{"bi.borrower_id": *f.BorrowerID})
	}
	return q
}

func (r *repository) queryInstances(ctx context.Context, q sq.SelectBuilder) ([]model.BookInstance, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("queryInstances", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.BookInstance])
}

func (r *repository) CountInstances(ctx context.Context, f InstanceFilter) (int, error) {
	return r.count(ctx, f.apply(qb.Select("count(*)").From(bookInstanceTableName+" bi")))
}

func (r *repository) ListInstances(ctx context.Context, f InstanceFilter, p model.Paging) ([]model.BookInstance, error) {
	return r.queryInstances(ctx, listInstancesQuery(f, p))
}

func listInstancesQuery(f InstanceFilter, p model.Paging) sq.SelectBuilder {
	order := "bi.due_back asc"
	if f.DueBackDesc {
		order = "bi.due_back desc"
	}
	return f.apply(selectInstances()).
		OrderBy(order, "bi.id").
		Limit(p.Limit()).
		Offset(p.Offset())
}

func (r *repository) ListInstancesByBook(ctx context.Context, bookID int) ([]model.BookInstance, error) {
	return r.queryInstances(ctx, selectInstances().
		Where(sq.Eq{"bi.book_id": bookID}).
		OrderBy("bi.due_back desc", "bi.id"))
}

func (r *repository) GetInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error) {
	query, args, err := selectInstances().
		Where(sq.Eq{"bi.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BookInstance{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.BookInstance{}, err
	}
	bi, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BookInstance])
	return bi, mapErr(err)
}

func (r *repository) CreateInstance(ctx context.Context, bi model.BookInstance) (model.BookInstance, error) {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	if bi.Status == "" {
		bi.Status = model.StatusMaintenance
	}
	query, args, err := qb.Insert(bookInstanceTableName).
		Columns("id", "book_id", "imprint", "due_back", "status", "borrower_id").
		Values(bi.ID, bi.BookID, bi.Imprint, bi.DueBack, bi.Status, bi.BorrowerID).
		ToSql()
	if err != nil {
		return model.BookInstance{}, err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return model.BookInstance{}, mapErr(err)
	}
	return bi, nil
}

func (r *repository) UpdateDueBack(ctx context.Context, id uuid.UUID, dueBack time.Time) error {
	query, args, err := qb.Update(bookInstanceTableName).
		Set("due_back", dueBack.Format(time.DateOnly)).
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

// Checkout lends an available copy; other states yield ErrNotAvailable.
func (r *repository) Checkout(ctx context.Context, id uuid.UUID, borrowerID int, dueBack time.Time) error {
	query, args, err := qb.Update(bookInstanceTableName).
		SetMap(map[string]interface{}{
			"borrower_id": borrowerID,
			"due_back":    dueBack.Format(time.DateOnly),
			"status":      model.StatusOnLoan,
		}).
		Where(sq.Eq{"id": id, "status": model.StatusAvailable}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotAvailable
	}
	return nil
}

func (r *repository) Return(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Update(bookInstanceTableName).
		SetMap(map[string]interface{}{
			"borrower_id": nil,
			"due_back":    nil,
			"status":      model.StatusAvailable,
		}).
		Where(sq.Eq{"id": id, "status": model.StatusOnLoan}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotOnLoan
	}
	return nil
}
