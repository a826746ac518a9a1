package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestDatabase_PoolRouting(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	db := New(mockDB)
	ctx := context.Background()

	mockDB.ExpectExec(regexp.QuoteMeta("UPDATE t SET v = $1")).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	tag, err := db.Exec(ctx, "UPDATE t SET v = $1", 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), tag.RowsAffected())

	mockDB.ExpectQuery(regexp.QuoteMeta("SELECT v FROM t")).
		WillReturnRows(pgxmock.NewRows([]string{"v"}).AddRow(42))
	rows, err := db.Query(ctx, "SELECT v FROM t")
	assert.NoError(t, err)
	rows.Close()

	mockDB.ExpectQuery(regexp.QuoteMeta("SELECT v FROM t WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"v"}).AddRow(42))
	var v int
	err = db.QueryRow(ctx, "SELECT v FROM t WHERE id = $1", 1).Scan(&v)
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestTXManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(ctx context.Context, db Database) error
		expectErr bool
	}{
		{
			name: "Commit on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE t SET v = $1")).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, db Database) error {
				_, err := db.Exec(ctx, "UPDATE t SET v = $1", 1)
				return err
			},
			expectErr: false,
		},
		{
			name: "Rollback on callback error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(ctx context.Context, db Database) error {
				return errors.New("callback failed")
			},
			expectErr: true,
		},
		{
			name: "Begin error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("no connection"))
			},
			fn: func(ctx context.Context, db Database) error {
				return nil
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB, err := pgxmock.NewPool()
			assert.NoError(t, err)
			defer mockDB.Close()

			tt.mockSetup(mockDB)

			db := New(mockDB)
			manager := NewTXManager(mockDB)

			err = manager.Begin(context.Background(), func(ctx context.Context) error {
				return tt.fn(ctx, db)
			})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestTXManager_NestedBeginReusesTransaction(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	// One Begin and one Commit regardless of nesting depth.
	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	manager := NewTXManager(mockDB)
	err = manager.Begin(context.Background(), func(ctx context.Context) error {
		return manager.Begin(ctx, func(ctx context.Context) error {
			return nil
		})
	})
	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
