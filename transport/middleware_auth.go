package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/toko-api/application/auth"
	"github.com/muhammadheryan/toko-api/constant"
	utilsContext "github.com/muhammadheryan/toko-api/utils/context"
	"github.com/muhammadheryan/toko-api/utils/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware rejects requests without a resolvable bearer token and
// stores the pembeli id in the request context. Mount it on the subrouter
// holding protected routes only.
func AuthMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			pembeliID, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				// storage failures surface as 500, everything else is 401
				if errors.Is(err, constant.ErrInternal) {
					writeError(w, err)
					return
				}
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithUserID(r.Context(), pembeliID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if len(auth) <= len(bearerPrefix) || !strings.EqualFold(auth[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(auth[len(bearerPrefix):])
	return token, token != ""
}
