package pembeli

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/toko-api/model"
	"github.com/muhammadheryan/toko-api/repository/dberr"
)

type SQL struct {
	conn *sqlx.DB
}

type PembeliRepository interface {
	Create(ctx context.Context, data *model.PembeliEntity) (*model.PembeliEntity, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.PembeliEntity) (*model.PembeliEntity, error)
	Get(ctx context.Context, filter *model.PembeliFilter) (*model.PembeliEntity, error)
	List(ctx context.Context) ([]model.PembeliEntity, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.PembeliEntity, error)
	Update(ctx context.Context, data *model.PembeliEntity) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error)
}

func NewPembeliRepository(conn *sqlx.DB) PembeliRepository {
	return &SQL{conn: conn}
}

const (
	insertPembeliQuery = `INSERT INTO pembelis (nama, email, password_hash, telepon, alamat, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	getPembeliBase     = `SELECT id, nama, email, password_hash, telepon, alamat, created_at, updated_at FROM pembelis WHERE true`
	lockPembeliQuery   = `SELECT id, nama, email, password_hash, telepon, alamat, created_at, updated_at FROM pembelis WHERE id = ? FOR UPDATE`
	listPembeliQuery   = `SELECT id, nama, email, password_hash, telepon, alamat, created_at, updated_at FROM pembelis ORDER BY id`
	updatePembeliQuery = `UPDATE pembelis SET nama = ?, email = ?, telepon = ?, alamat = ?, updated_at = ? WHERE id = ?`
	updateWithPassword = `UPDATE pembelis SET nama = ?, email = ?, telepon = ?, alamat = ?, password_hash = ?, updated_at = ? WHERE id = ?`
	deletePembeliQuery = `DELETE FROM pembelis WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.PembeliEntity) (*model.PembeliEntity, error) {
	return create(ctx, s.conn, data)
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.PembeliEntity) (*model.PembeliEntity, error) {
	return create(ctx, tx, data)
}

// create returns (nil, nil) when the insert reports no affected row.
func create(ctx context.Context, exec sqlx.ExecerContext, data *model.PembeliEntity) (*model.PembeliEntity, error) {
	now := time.Now().UTC()
	result, err := exec.ExecContext(ctx, insertPembeliQuery, data.Nama, data.Email, data.PasswordHash, data.Telepon, data.Alamat, now, now)
	if err != nil {
		return nil, dberr.Translate(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	data.CreatedAt = now
	data.UpdatedAt = &now
	return data, nil
}

// Get returns (nil, nil) when nothing matches; an empty filter matches nothing.
func (s *SQL) Get(ctx context.Context, filter *model.PembeliFilter) (*model.PembeliEntity, error) {
	if filter == nil || (filter.ID == 0 && filter.Email == "") {
		return nil, nil
	}

	query := getPembeliBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	query += " LIMIT 1"

	var entity model.PembeliEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetForUpdateTx locks the row until tx ends. Token inserts for this pembeli
// wait on the lock through the foreign key check.
func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.PembeliEntity, error) {
	var entity model.PembeliEntity
	if err := tx.QueryRowxContext(ctx, lockPembeliQuery, id).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.PembeliEntity, error) {
	items := make([]model.PembeliEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listPembeliQuery); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the mutable columns; the password hash is only touched when set.
func (s *SQL) Update(ctx context.Context, data *model.PembeliEntity) error {
	now := time.Now().UTC()

	var err error
	if data.PasswordHash != "" {
		_, err = s.conn.ExecContext(ctx, updateWithPassword, data.Nama, data.Email, data.Telepon, data.Alamat, data.PasswordHash, now, data.ID)
	} else {
		_, err = s.conn.ExecContext(ctx, updatePembeliQuery, data.Nama, data.Email, data.Telepon, data.Alamat, now, data.ID)
	}
	if err != nil {
		return dberr.Translate(err)
	}

	data.UpdatedAt = &now
	return nil
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error) {
	result, err := tx.ExecContext(ctx, deletePembeliQuery, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
