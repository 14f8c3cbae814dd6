package model

import "time"

// ProdukEntity represents the produks table entity
type ProdukEntity struct {
	ID        uint64     `db:"id" json:"id"`
	Nama      string     `db:"nama" json:"nama"`
	Kode      *string    `db:"kode" json:"kode"`
	Deskripsi *string    `db:"deskripsi" json:"deskripsi"`
	Harga     float64    `db:"harga" json:"harga"`
	Stok      int64      `db:"stok" json:"stok"`
	PembeliID *uint64    `db:"pembeli_id" json:"pembeli_id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}

// ProdukDetail is a produk with its owning pembeli, if any.
type ProdukDetail struct {
	ProdukEntity
	Pembeli *PembeliEntity `json:"pembeli"`
}

type ProdukRequest struct {
	Nama      string   `json:"nama" validate:"required,max=255"`
	Kode      *string  `json:"kode" validate:"omitempty,max=50"`
	Deskripsi *string  `json:"deskripsi"`
	Harga     *float64 `json:"harga" validate:"required,min=0"`
	Stok      *int64   `json:"stok" validate:"required,min=0"`
	PembeliID *uint64  `json:"pembeli_id"`
}
