package model

import "time"

// TokenEntity represents the personal_access_tokens table entity.
// Only the SHA-256 of the bearer token is stored.
type TokenEntity struct {
	ID        uint64    `db:"id"`
	PembeliID uint64    `db:"pembeli_id"`
	Name      string    `db:"name"`
	TokenHash string    `db:"token_hash"`
	CreatedAt time.Time `db:"created_at"`
}
