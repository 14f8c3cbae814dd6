package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrValidation
	ErrConflict
	ErrInvalidCredentials
	ErrRegisterFailed
	ErrPembeliNotFound
	ErrProdukNotFound
	ErrKodeExists
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "Terjadi kesalahan pada server",
	ErrNotFound:           "Data tidak ditemukan",
	ErrInvalidRequest:     "Format request tidak valid",
	ErrUnauthorize:        "Unauthenticated.",
	ErrValidation:         "Data yang diberikan tidak valid",
	ErrConflict:           "Email sudah terdaftar",
	ErrInvalidCredentials: "Email atau password salah",
	ErrRegisterFailed:     "Pembeli gagal disimpan",
	ErrPembeliNotFound:    "Data Pembeli Tidak Ditemukan",
	ErrProdukNotFound:     "Data Produk Tidak Ditemukan",
	ErrKodeExists:         "Kode produk sudah digunakan",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrValidation:         http.StatusUnprocessableEntity,
	ErrConflict:           http.StatusConflict,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrRegisterFailed:     http.StatusInternalServerError,
	ErrPembeliNotFound:    http.StatusNotFound,
	ErrProdukNotFound:     http.StatusNotFound,
	ErrKodeExists:         http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrValidation:         "0005",
	ErrConflict:           "0006",
	ErrInvalidCredentials: "0007",
	ErrRegisterFailed:     "0008",
	ErrPembeliNotFound:    "0009",
	ErrProdukNotFound:     "0010",
	ErrKodeExists:         "0011",
}
