package produk_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/toko-api/model"
	"github.com/muhammadheryan/toko-api/repository/dberr"
	produkrepo "github.com/muhammadheryan/toko-api/repository/produk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var joinColumns = []string{
	"id", "nama", "kode", "deskripsi", "harga", "stok", "pembeli_id", "created_at", "updated_at",
	"pb_id", "pb_nama", "pb_email", "pb_telepon", "pb_alamat", "pb_created_at", "pb_updated_at",
}

func newRepo(t *testing.T) (produkrepo.ProdukRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return produkrepo.NewProdukRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestSQL_List(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN pembelis pb ON pb.id = pr.pembeli_id ORDER BY pr.id`)).
		WillReturnRows(sqlmock.NewRows(joinColumns).
			AddRow(1, "Kopi", "KP-01", nil, 25000.0, 10, 5, now, nil, 5, "Ani", "ani@x.com", nil, "Jl. Mawar", now, nil).
			AddRow(2, "Teh", nil, "Teh melati", 15000.5, 0, nil, now, nil, nil, nil, nil, nil, nil, nil, nil))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].Pembeli)
	assert.Equal(t, uint64(5), got[0].Pembeli.ID)
	assert.Equal(t, "Ani", got[0].Pembeli.Nama)
	assert.Nil(t, got[0].Pembeli.Telepon)
	require.NotNil(t, got[0].Pembeli.Alamat)
	assert.Equal(t, "Jl. Mawar", *got[0].Pembeli.Alamat)
	require.NotNil(t, got[0].Kode)
	assert.Equal(t, "KP-01", *got[0].Kode)

	assert.Nil(t, got[1].Pembeli)
	assert.Nil(t, got[1].PembeliID)
	assert.Equal(t, 15000.5, got[1].Harga)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetByID(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name     string
		mockCall func(m sqlmock.Sqlmock)
		wantNil  bool
		wantErr  bool
	}{
		{
			name: "found",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`WHERE pr.id = ?`)).
					WithArgs(uint64(1)).
					WillReturnRows(sqlmock.NewRows(joinColumns).
						AddRow(1, "Kopi", nil, nil, 25000.0, 10, nil, now, nil, nil, nil, nil, nil, nil, nil, nil))
			},
		},
		{
			name: "not found",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`WHERE pr.id = ?`)).
					WithArgs(uint64(1)).
					WillReturnRows(sqlmock.NewRows(joinColumns))
			},
			wantNil: true,
		},
		{
			name: "db error",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`WHERE pr.id = ?`)).WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tt.mockCall(mock)

			got, err := repo.GetByID(context.Background(), 1)
			switch {
			case tt.wantErr:
				assert.Error(t, err)
			case tt.wantNil:
				require.NoError(t, err)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, "Kopi", got.Nama)
				assert.Nil(t, got.Pembeli)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_ListByPembeli(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM produks WHERE pembeli_id = ? ORDER BY id`)).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows(joinColumns[:9]).AddRow(1, "Kopi", nil, nil, 25000.0, 10, 5, now, nil))

	got, err := repo.ListByPembeli(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].PembeliID)
	assert.Equal(t, uint64(5), *got[0].PembeliID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Create(t *testing.T) {
	insert := regexp.QuoteMeta(`INSERT INTO produks (nama, kode, deskripsi, harga, stok, pembeli_id, created_at, updated_at)`)
	owner := uint64(5)

	tests := []struct {
		name     string
		mockCall func(m sqlmock.Sqlmock)
		wantErr  error
	}{
		{
			name: "success",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insert).
					WithArgs("Kopi", nil, nil, 25000.0, int64(10), owner, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(11, 1))
			},
		},
		{
			name: "duplicate kode",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insert).WillReturnError(&mysql.MySQLError{Number: 1062})
			},
			wantErr: dberr.ErrDuplicate,
		},
		{
			name: "unknown pembeli",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insert).WillReturnError(&mysql.MySQLError{Number: 1452})
			},
			wantErr: dberr.ErrForeignKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tt.mockCall(mock)

			got, err := repo.Create(context.Background(), &model.ProdukEntity{
				Nama: "Kopi", Harga: 25000, Stok: 10, PembeliID: &owner,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint64(11), got.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_Update(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE produks SET nama = ?, kode = ?, deskripsi = ?, harga = ?, stok = ?, pembeli_id = ?, updated_at = ? WHERE id = ?`)).
		WithArgs("Kopi Susu", nil, nil, 30000.0, int64(3), nil, sqlmock.AnyArg(), uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ent := &model.ProdukEntity{ID: 1, Nama: "Kopi Susu", Harga: 30000, Stok: 3}
	require.NoError(t, repo.Update(context.Background(), ent))
	assert.NotNil(t, ent.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Delete(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM produks WHERE id = ?`)).
		WithArgs(uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
