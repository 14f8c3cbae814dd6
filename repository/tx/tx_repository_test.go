package tx_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	txrepo "github.com/muhammadheryan/toko-api/repository/tx"
	"github.com/stretchr/testify/require"
)

func TestTxRepository_CommitAndRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := txrepo.NewTxRepository(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectBegin()
	mock.ExpectCommit()
	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.CommitTx(tx))

	mock.ExpectBegin()
	mock.ExpectRollback()
	tx, err = repo.BeginTx(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.RollbackTx(tx))

	require.NoError(t, mock.ExpectationsWereMet())
}
