package token

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

type TokenRepository interface {
	Create(ctx context.Context, data *model.TokenEntity) error
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.TokenEntity) error
	GetByHash(ctx context.Context, hash string) (*model.TokenEntity, error)
	ListHashesByPembeliTx(ctx context.Context, tx *sqlx.Tx, pembeliID uint64) ([]string, error)
	DeleteByHash(ctx context.Context, hash string) (bool, error)
	DeleteByPembeliTx(ctx context.Context, tx *sqlx.Tx, pembeliID uint64) (int64, error)
}

func NewTokenRepository(conn *sqlx.DB) TokenRepository {
	return &SQL{conn: conn}
}

const (
	insertTokenQuery       = `INSERT INTO personal_access_tokens (pembeli_id, name, token_hash, created_at) VALUES (?, ?, ?, ?)`
	getTokenByHashQuery    = `SELECT id, pembeli_id, name, token_hash, created_at FROM personal_access_tokens WHERE token_hash = ?`
	listHashesByOwnerQuery = `SELECT token_hash FROM personal_access_tokens WHERE pembeli_id = ? FOR UPDATE`
	deleteByHashQuery      = `DELETE FROM personal_access_tokens WHERE token_hash = ?`
	deleteByOwnerQuery     = `DELETE FROM personal_access_tokens WHERE pembeli_id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.TokenEntity) error {
	return create(ctx, s.conn, data)
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.TokenEntity) error {
	return create(ctx, tx, data)
}

func create(ctx context.Context, exec sqlx.ExecerContext, data *model.TokenEntity) error {
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now().UTC()
	}

	result, err := exec.ExecContext(ctx, insertTokenQuery, data.PembeliID, data.Name, data.TokenHash, data.CreatedAt)
	if err != nil {
		return dberr.Translate(err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return err
	}
	data.ID = uint64(lastID)
	return nil
}

func (s *SQL) GetByHash(ctx context.Context, hash string) (*model.TokenEntity, error) {
	var entity model.TokenEntity
	if err := s.conn.GetContext(ctx, &entity, getTokenByHashQuery, hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// ListHashesByPembeliTx is a locking read, so it sees tokens committed after tx began.
func (s *SQL) ListHashesByPembeliTx(ctx context.Context, tx *sqlx.Tx, pembeliID uint64) ([]string, error) {
	hashes := make([]string, 0)
	if err := tx.SelectContext(ctx, &hashes, listHashesByOwnerQuery, pembeliID); err != nil {
		return nil, err
	}
	return hashes, nil
}

func (s *SQL) DeleteByHash(ctx context.Context, hash string) (bool, error) {
	result, err := s.conn.ExecContext(ctx, deleteByHashQuery, hash)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) DeleteByPembeliTx(ctx context.Context, tx *sqlx.Tx, pembeliID uint64) (int64, error) {
	result, err := tx.ExecContext(ctx, deleteByOwnerQuery, pembeliID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
