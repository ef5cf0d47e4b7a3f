package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

var userColumns = []string{"id", "username", "email", "password_hash", "is_superuser", "is_active"}

func (r *repository) getUser(ctx context.Context, where sq.Eq) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	u, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return model.User{}, mapErr(err)
	}

	u.Permissions, err = r.listPermissions(ctx, u.ID)
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *repository) listPermissions(ctx context.Context, userID int) ([]model.Permission, error) {
	query, args, err := qb.Select("codename").
		From(userPermissionTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("codename").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[model.Permission])
}

func (r *repository) GetUser(ctx context.Context, id int) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username})
}

func (r *repository) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("username", "email", "password_hash", "is_superuser", "is_active").
		Values(u.Username, u.Email, u.PasswordHash, u.IsSuperuser, u.IsActive).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&u.ID); err != nil {
		return model.User{}, mapErr(err)
	}
	return u, nil
}

func (r *repository) GrantPermissions(ctx context.Context, userID int, perms ...model.Permission) error {
	if len(perms) == 0 {
		return nil
	}
	ins := qb.Insert(userPermissionTableName).Columns("user_id", "codename")
	for _, p := range perms {
		ins = ins.Values(userID, p)
	}
	query, args, err := ins.Suffix("on conflict do nothing").ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query, args...)
	return mapErr(err)
}

func (r *repository) GetSession(ctx context.Context, key uuid.UUID) (model.Session, error) {
	query, args, err := qb.Select("key", "visits", "expires_at").
		From(sessionTableName).
		Where(sq.Eq{"key": key}).
		Where("expires_at > now()").
		ToSql()
	if err != nil {
		return model.Session{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Session{}, err
	}
	s, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Session])
	return s, mapErr(err)
}

func (r *repository) SaveSession(ctx context.Context, s model.Session) error {
	query, args, err := qb.Insert(sessionTableName).
		Columns("key", "visits", "expires_at").
		Values(s.Key, s.Visits, s.ExpiresAt).
		Suffix("on conflict (key) do update set visits = excluded.visits, expires_at = excluded.expires_at").
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query, args...)
	return mapErr(err)
}
