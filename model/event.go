package model

import "time"

type PembeliRegisteredEvent struct {
	PembeliID    uint64    `json:"pembeli_id"`
	Nama         string    `json:"nama"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}
