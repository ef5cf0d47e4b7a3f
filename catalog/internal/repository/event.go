package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

func (r *repository) SaveEvent(ctx context.Context, e model.Event) error {
	query, args, err := qb.Insert(loanEventTableName).
		Columns("kind", "instance_id", "author_id", "actor", "due_back", "created_at").
		Values(e.Kind, e.InstanceID, e.AuthorID, e.Actor, e.DueBack, e.At).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query, args...)
	return mapErr(err)
}

func (r *repository) ListEvents(ctx context.Context, limit int) ([]model.Event, error) {
	q := qb.Select("id", "kind", "instance_id", "author_id", "actor", "due_back", "created_at").
		From(loanEventTableName).
		OrderBy("created_at desc", "id desc")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Event])
}
