package produk

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

type ProdukRepository interface {
	List(ctx context.Context) ([]model.ProdukDetail, error)
	GetByID(ctx context.Context, id uint64) (*model.ProdukDetail, error)
	ListByPembeli(ctx context.Context, pembeliID uint64) ([]model.ProdukEntity, error)
	Create(ctx context.Context, data *model.ProdukEntity) (*model.ProdukEntity, error)
	Update(ctx context.Context, data *model.ProdukEntity) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewProdukRepository(conn *sqlx.DB) ProdukRepository {
	return &SQL{conn: conn}
}

const (
	selectProdukWithPembeli = `SELECT pr.id, pr.nama, pr.kode, pr.deskripsi, pr.harga, pr.stok, pr.pembeli_id, pr.created_at, pr.updated_at,
pb.id AS pb_id, pb.nama AS pb_nama, pb.email AS pb_email, pb.telepon AS pb_telepon, pb.alamat AS pb_alamat, pb.created_at AS pb_created_at, pb.updated_at AS pb_updated_at
FROM produks pr
LEFT JOIN pembelis pb ON pb.id = pr.pembeli_id`

	listProdukQuery    = selectProdukWithPembeli + ` ORDER BY pr.id`
	getProdukQuery     = selectProdukWithPembeli + ` WHERE pr.id = ?`
	listByPembeliQuery = `SELECT id, nama, kode, deskripsi, harga, stok, pembeli_id, created_at, updated_at FROM produks WHERE pembeli_id = ? ORDER BY id`
	insertProdukQuery  = `INSERT INTO produks (nama, kode, deskripsi, harga, stok, pembeli_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	updateProdukQuery  = `UPDATE produks SET nama = ?, kode = ?, deskripsi = ?, harga = ?, stok = ?, pembeli_id = ?, updated_at = ? WHERE id = ?`
	deleteProdukQuery  = `DELETE FROM produks WHERE id = ?`
)

// produkRow is one row of produks LEFT JOIN pembelis.
type produkRow struct {
	model.ProdukEntity
	PbID        sql.NullInt64  `db:"pb_id"`
	PbNama      sql.NullString `db:"pb_nama"`
	PbEmail     sql.NullString `db:"pb_email"`
	PbTelepon   sql.NullString `db:"pb_telepon"`
	PbAlamat    sql.NullString `db:"pb_alamat"`
	PbCreatedAt sql.NullTime   `db:"pb_created_at"`
	PbUpdatedAt sql.NullTime   `db:"pb_updated_at"`
}

func (r produkRow) detail() model.ProdukDetail {
	d := model.ProdukDetail{ProdukEntity: r.ProdukEntity}
	if !r.PbID.Valid {
		return d
	}

	d.Pembeli = &model.PembeliEntity{
		ID:        uint64(r.PbID.Int64),
		Nama:      r.PbNama.String,
		Email:     r.PbEmail.String,
		Telepon:   nullString(r.PbTelepon),
		Alamat:    nullString(r.PbAlamat),
		CreatedAt: r.PbCreatedAt.Time,
	}
	if r.PbUpdatedAt.Valid {
		t := r.PbUpdatedAt.Time
		d.Pembeli.UpdatedAt = &t
	}
	return d
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func (s *SQL) List(ctx context.Context) ([]model.ProdukDetail, error) {
	rows, err := s.conn.QueryxContext(ctx, listProdukQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProdukDetail, 0)
	for rows.Next() {
		var row produkRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		items = append(items, row.detail())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProdukDetail, error) {
	var row produkRow
	if err := s.conn.QueryRowxContext(ctx, getProdukQuery, id).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	d := row.detail()
	return &d, nil
}

func (s *SQL) ListByPembeli(ctx context.Context, pembeliID uint64) ([]model.ProdukEntity, error) {
	items := make([]model.ProdukEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listByPembeliQuery, pembeliID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Create(ctx context.Context, data *model.ProdukEntity) (*model.ProdukEntity, error) {
	now := time.Now().UTC()
	result, err := s.conn.ExecContext(ctx, insertProdukQuery, data.Nama, data.Kode, data.Deskripsi, data.Harga, data.Stok, data.PembeliID, now, now)
	if err != nil {
		return nil, dberr.Translate(err)
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

func (s *SQL) Update(ctx context.Context, data *model.ProdukEntity) error {
	now := time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateProdukQuery, data.Nama, data.Kode, data.Deskripsi, data.Harga, data.Stok, data.PembeliID, now, data.ID)
	if err != nil {
		return dberr.Translate(err)
	}
	data.UpdatedAt = &now
	return nil
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, deleteProdukQuery, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
