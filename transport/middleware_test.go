package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/toko-api/constant"
	authmocks "github.com/muhammadheryan/toko-api/mocks/application/auth"
	utilsContext "github.com/muhammadheryan/toko-api/utils/context"
	cerr "github.com/muhammadheryan/toko-api/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		mockCall   func(a *authmocks.AuthApp)
		wantStatus int
		wantUserID uint64
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer",
			header:     "Bearer   ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown token",
			header: "Bearer nope",
			mockCall: func(a *authmocks.AuthApp) {
				a.On("ValidateToken", mock.Anything, "nope").Return(uint64(0), cerr.SetCustomError(constant.ErrUnauthorize)).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token store down",
			header: "Bearer tok",
			mockCall: func(a *authmocks.AuthApp) {
				a.On("ValidateToken", mock.Anything, "tok").Return(uint64(0), cerr.SetCustomError(constant.ErrInternal)).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "unexpected error is unauthorized",
			header: "Bearer tok",
			mockCall: func(a *authmocks.AuthApp) {
				a.On("ValidateToken", mock.Anything, "tok").Return(uint64(0), errors.New("boom")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token, scheme is case insensitive",
			header: "bearer tok",
			mockCall: func(a *authmocks.AuthApp) {
				a.On("ValidateToken", mock.Anything, "tok").Return(uint64(42), nil).Once()
			},
			wantStatus: http.StatusNoContent,
			wantUserID: 42,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			authApp := authmocks.NewAuthApp(t)
			if tt.mockCall != nil {
				tt.mockCall(authApp)
			}

			var gotUserID uint64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utilsContext.GetUserID(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/produk", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			AuthMiddleware(authApp)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utilsContext.GetRequestID(r.Context())
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pembeli", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/pembeli", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestTimeoutMiddleware(t *testing.T) {
	defer goleak.VerifyNone(t)

	var deadline time.Time
	var hasDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, hasDeadline = r.Context().Deadline()
	})

	TimeoutMiddleware(time.Second)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)

	TimeoutMiddleware(0)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()))
	assert.False(t, hasDeadline)
}
