package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/toko-api/constant"
	cerr "github.com/muhammadheryan/toko-api/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestSetCustomError(t *testing.T) {
	tests := []struct {
		name     string
		errType  constant.ErrorType
		wantMsg  string
		wantCode string
		wantHTTP int
	}{
		{
			name:     "invalid credentials",
			errType:  constant.ErrInvalidCredentials,
			wantMsg:  "Email atau password salah",
			wantCode: "0007",
			wantHTTP: http.StatusUnauthorized,
		},
		{
			name:     "conflict",
			errType:  constant.ErrConflict,
			wantMsg:  "Email sudah terdaftar",
			wantCode: "0006",
			wantHTTP: http.StatusConflict,
		},
		{
			name:     "register failed",
			errType:  constant.ErrRegisterFailed,
			wantMsg:  "Pembeli gagal disimpan",
			wantCode: "0008",
			wantHTTP: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := cerr.SetCustomError(tt.errType)
			assert.Equal(t, tt.wantMsg, ce.Error())
			assert.Equal(t, tt.wantCode, ce.ErrorCode())
			assert.Equal(t, tt.wantHTTP, ce.ErrorHTTPCode())
			assert.Nil(t, ce.Fields())
		})
	}
}

func TestSetValidationError(t *testing.T) {
	ce := cerr.SetValidationError(map[string]string{"email": "email wajib diisi"})

	assert.Equal(t, http.StatusUnprocessableEntity, ce.ErrorHTTPCode())
	assert.Equal(t, map[string]string{"email": "email wajib diisi"}, ce.Fields())
	assert.True(t, cerr.Is(ce, constant.ErrValidation))
}

func TestIs(t *testing.T) {
	assert.True(t, cerr.Is(cerr.SetCustomError(constant.ErrNotFound), constant.ErrNotFound))
	assert.False(t, cerr.Is(cerr.SetCustomError(constant.ErrNotFound), constant.ErrInternal))
	assert.False(t, cerr.Is(stderrors.New("boom"), constant.ErrInternal))

	var ce cerr.CustomError
	wrapped := fmt.Errorf("wrap: %w", cerr.SetCustomError(constant.ErrConflict))
	assert.True(t, stderrors.As(wrapped, &ce))
	assert.Equal(t, constant.ErrConflict, ce.ErrorType())
}
