package password_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/muhammadheryan/toko-api/utils/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashVerify(t *testing.T) {
	h := password.NewBcryptHasher(bcrypt.MinCost)

	tests := []struct {
		name  string
		plain string
		other string
	}{
		{name: "ascii", plain: "secret1", other: "secret2"},
		{name: "unicode", plain: "kata-sandi-rahasia-ü", other: "kata-sandi-rahasia-u"},
		{name: "single char", plain: "x", other: "y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := h.Hash(tt.plain)
			require.NoError(t, err)
			assert.NotEqual(t, tt.plain, string(hashed))

			ok, err := h.Verify(tt.plain, hashed)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = h.Verify(tt.other, hashed)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	h := password.NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("secret1")
	require.NoError(t, err)
	b, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, string(a), string(b))
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := password.NewBcryptHasher(bcrypt.MinCost)

	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "72 ascii bytes", plain: strings.Repeat("a", 72)},
		{name: "36 two-byte runes", plain: strings.Repeat("é", 36)},
		{name: "73 ascii bytes", plain: strings.Repeat("a", 73), wantErr: password.ErrTooLong},
		{name: "72 two-byte runes", plain: strings.Repeat("é", 72), wantErr: password.ErrTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Hash(tt.plain)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	h := password.NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestBcryptHasher_CorruptHash(t *testing.T) {
	h := password.NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Verify("secret1", password.Secret("not-a-bcrypt-hash"))
	assert.False(t, ok)
	assert.True(t, errors.Is(err, password.ErrCorruptCredential))
}

func TestBcryptHasher_Unusable(t *testing.T) {
	h := password.NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Unusable()
	require.NoError(t, err)

	ok, err := h.Verify("", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := password.NewBcryptHasher(0)

	hashed, err := h.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestSecret_NeverRendered(t *testing.T) {
	s := password.Secret("$2a$04$abcdefghijklmnopqrstuv")

	assert.Equal(t, "[REDACTED]", s.String())
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", s))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%#v", s))

	out, err := json.Marshal(struct {
		Hash password.Secret `json:"hash"`
	}{Hash: s})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hash":"[REDACTED]"}`, string(out))
}
