package model

import (
	"time"

	"github.com/muhammadheryan/toko-api/utils/password"
)

// PembeliEntity represents the pembelis table entity
type PembeliEntity struct {
	ID           uint64          `db:"id" json:"id"`
	Nama         string          `db:"nama" json:"nama"`
	Email        string          `db:"email" json:"email"`
	PasswordHash password.Secret `db:"password_hash" json:"-"`
	Telepon      *string         `db:"telepon" json:"telepon"`
	Alamat       *string         `db:"alamat" json:"alamat"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time      `db:"updated_at" json:"updated_at"`
}

// PembeliDetail is a pembeli together with the products it owns.
type PembeliDetail struct {
	PembeliEntity
	Produk []ProdukEntity `json:"produk"`
}

// PembeliFilter for querying pembeli
type PembeliFilter struct {
	ID    uint64
	Email string
}

// RegisterRequest for pembeli registration
type RegisterRequest struct {
	Nama                 string  `json:"nama" validate:"required,max=255"`
	Email                string  `json:"email" validate:"required,email,max=255"`
	Password             string  `json:"password" validate:"required,maxbytes=72"`
	PasswordConfirmation string  `json:"password_confirmation" validate:"required,eqfield=Password"`
	Telepon              *string `json:"telepon" validate:"omitempty,max=20"`
	Alamat               *string `json:"alamat"`
}

type RegisterResponse struct {
	Nama  string
	Token string
}

// LoginRequest is not struct-validated: any bad input is a credential failure.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Pembeli *PembeliEntity
	Token   string
}

// PembeliRequest is the body of the admin create and update endpoints.
type PembeliRequest struct {
	Nama     string  `json:"nama" validate:"required,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Telepon  *string `json:"telepon" validate:"omitempty,max=20"`
	Alamat   *string `json:"alamat"`
	Password string  `json:"password" validate:"omitempty,maxbytes=72"`
}
