package repository

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

func TestMapErr(t *testing.T) {
	t.Parallel()
	require.NoError(t, mapErr(nil))
	require.ErrorIs(t, mapErr(pgx.ErrNoRows), errs.ErrNotFound)
	require.ErrorIs(t, mapErr(errors.Wrap(pgx.ErrNoRows, "scan")), errs.ErrNotFound)
	require.ErrorIs(t, mapErr(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "book_isbn_key"}), errs.ErrAlreadyExists)
	require.ErrorIs(t, mapErr(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}), errs.ErrNotFound)

	other := &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	require.Equal(t, other, mapErr(other))
}

func TestListInstancesQuery(t *testing.T) {
	t.Parallel()
	borrower := 3
	p := model.Paging{Page: 2, PageSize: 10, TotalElements: 15, NumPages: 2}

	query, args, err := listInstancesQuery(InstanceFilter{Status: model.StatusOnLoan, BorrowerID: &borrower}, p).ToSql()
	require.NoError(t, err)
	require.Contains(t, query, "bi.status = $1")
	require.Contains(t, query, "bi.borrower_id = $2")
	require.Contains(t, query, "ORDER BY bi.due_back asc, bi.id")
	require.Contains(t, query, "LIMIT 10 OFFSET 10")
	require.Equal(t, []interface{}{model.StatusOnLoan, borrower}, args)

	query, _, err = listInstancesQuery(InstanceFilter{Status: model.StatusOnLoan, DueBackDesc: true}, p).ToSql()
	require.NoError(t, err)
	require.Contains(t, query, "ORDER BY bi.due_back desc, bi.id")
}
