package pembeli_test

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
	pembelirepo "github.com/muhammadheryan/toko-api/repository/pembeli"
	"github.com/muhammadheryan/toko-api/utils/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pembeliColumns = []string{"id", "nama", "email", "password_hash", "telepon", "alamat", "created_at", "updated_at"}

func newRepo(t *testing.T) (pembelirepo.PembeliRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return pembelirepo.NewPembeliRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func strPtr(s string) *string { return &s }

func TestSQL_Create(t *testing.T) {
	insert := regexp.QuoteMeta(`INSERT INTO pembelis (nama, email, password_hash, telepon, alamat, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`)

	tests := []struct {
		name     string
		mockCall func(m sqlmock.Sqlmock)
		wantID   uint64
		wantNil  bool
		wantErr  error
	}{
		{
			name: "success",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insert).
					WithArgs("Ani", "ani@x.com", "hashed", "0812", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(7, 1))
			},
			wantID: 7,
		},
		{
			name: "no row affected",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantNil: true,
		},
		{
			name: "duplicate email",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insert).WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			wantErr: dberr.ErrDuplicate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tt.mockCall(mock)

			got, err := repo.Create(context.Background(), &model.PembeliEntity{
				Nama:         "Ani",
				Email:        "ani@x.com",
				PasswordHash: password.Secret("hashed"),
				Telepon:      strPtr("0812"),
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				if tt.wantNil {
					assert.Nil(t, got)
				} else {
					require.NotNil(t, got)
					assert.Equal(t, tt.wantID, got.ID)
					assert.False(t, got.CreatedAt.IsZero())
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_Get(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name     string
		filter   *model.PembeliFilter
		mockCall func(m sqlmock.Sqlmock)
		want     *model.PembeliEntity
		wantErr  bool
	}{
		{
			name:   "found by email",
			filter: &model.PembeliFilter{Email: "ani@x.com"},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`FROM pembelis WHERE true AND email = ? LIMIT 1`)).
					WithArgs("ani@x.com").
					WillReturnRows(sqlmock.NewRows(pembeliColumns).AddRow(1, "Ani", "ani@x.com", "hashed", nil, "Jl. Mawar", now, nil))
			},
			want: &model.PembeliEntity{
				ID: 1, Nama: "Ani", Email: "ani@x.com", PasswordHash: "hashed", Alamat: strPtr("Jl. Mawar"), CreatedAt: now,
			},
		},
		{
			name:   "found by id",
			filter: &model.PembeliFilter{ID: 3},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`FROM pembelis WHERE true AND id = ? LIMIT 1`)).
					WithArgs(uint64(3)).
					WillReturnRows(sqlmock.NewRows(pembeliColumns).AddRow(3, "Budi", "budi@x.com", "hashed", "0812", nil, now, nil))
			},
			want: &model.PembeliEntity{
				ID: 3, Nama: "Budi", Email: "budi@x.com", PasswordHash: "hashed", Telepon: strPtr("0812"), CreatedAt: now,
			},
		},
		{
			name:   "not found",
			filter: &model.PembeliFilter{Email: "none@x.com"},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`AND email = ?`)).
					WithArgs("none@x.com").
					WillReturnRows(sqlmock.NewRows(pembeliColumns))
			},
			want: nil,
		},
		{
			name:   "db error",
			filter: &model.PembeliFilter{Email: "ani@x.com"},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`AND email = ?`)).WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tt.mockCall(mock)

			got, err := repo.Get(context.Background(), tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_Get_EmptyFilterMatchesNothing(t *testing.T) {
	repo, mock := newRepo(t)

	got, err := repo.Get(context.Background(), &model.PembeliFilter{})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.Get(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_List(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM pembelis ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(pembeliColumns).
			AddRow(1, "Ani", "ani@x.com", "h1", nil, nil, now, nil).
			AddRow(2, "Budi", "budi@x.com", "h2", nil, nil, now, nil))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Budi", got[1].Nama)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_List_Empty(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM pembelis ORDER BY id`)).WillReturnRows(sqlmock.NewRows(pembeliColumns))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQL_Update(t *testing.T) {
	t.Run("without password", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE pembelis SET nama = ?, email = ?, telepon = ?, alamat = ?, updated_at = ? WHERE id = ?`)).
			WithArgs("Ani", "ani@x.com", nil, nil, sqlmock.AnyArg(), uint64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ent := &model.PembeliEntity{ID: 1, Nama: "Ani", Email: "ani@x.com"}
		require.NoError(t, repo.Update(context.Background(), ent))
		assert.NotNil(t, ent.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with password", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(`password_hash = ?, updated_at = ? WHERE id = ?`)).
			WithArgs("Ani", "ani@x.com", nil, nil, "newhash", sqlmock.AnyArg(), uint64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ent := &model.PembeliEntity{ID: 1, Nama: "Ani", Email: "ani@x.com", PasswordHash: "newhash"}
		require.NoError(t, repo.Update(context.Background(), ent))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE pembelis`)).WillReturnError(&mysql.MySQLError{Number: 1062})

		err := repo.Update(context.Background(), &model.PembeliEntity{ID: 1, Nama: "Ani", Email: "budi@x.com"})
		assert.ErrorIs(t, err, dberr.ErrDuplicate)
	})
}

func newTxRepo(t *testing.T) (pembelirepo.PembeliRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	conn := sqlx.NewDb(db, "sqlmock")
	return pembelirepo.NewPembeliRepository(conn), conn, mock
}

func TestSQL_GetForUpdateTx(t *testing.T) {
	now := time.Now().UTC()
	lock := regexp.QuoteMeta(`FROM pembelis WHERE id = ? FOR UPDATE`)

	tests := []struct {
		name     string
		mockCall func(m sqlmock.Sqlmock)
		want     *model.PembeliEntity
		wantErr  bool
	}{
		{
			name: "locked",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lock).WithArgs(uint64(9)).
					WillReturnRows(sqlmock.NewRows(pembeliColumns).AddRow(9, "Ani", "ani@x.com", "hashed", nil, nil, now, nil))
			},
			want: &model.PembeliEntity{ID: 9, Nama: "Ani", Email: "ani@x.com", PasswordHash: "hashed", CreatedAt: now},
		},
		{
			name: "missing",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lock).WithArgs(uint64(9)).WillReturnRows(sqlmock.NewRows(pembeliColumns))
			},
		},
		{
			name: "db error",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lock).WillReturnError(errors.New("lock wait timeout"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, conn, mock := newTxRepo(t)
			mock.ExpectBegin()
			tt.mockCall(mock)
			mock.ExpectRollback()

			tx, err := conn.Beginx()
			require.NoError(t, err)
			got, err := repo.GetForUpdateTx(context.Background(), tx, 9)
			require.NoError(t, tx.Rollback())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_DeleteTx(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "deleted", affected: 1, want: true},
		{name: "missing", affected: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, conn, mock := newTxRepo(t)
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM pembelis WHERE id = ?`)).
				WithArgs(uint64(9)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectCommit()

			tx, err := conn.Beginx()
			require.NoError(t, err)
			got, err := repo.DeleteTx(context.Background(), tx, 9)
			require.NoError(t, err)
			require.NoError(t, tx.Commit())
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
