package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory/application/user"
	"github.com/muhammadheryan/inventory/constant"
	utilsContext "github.com/muhammadheryan/inventory/utils/context"
	"github.com/muhammadheryan/inventory/utils/errors"
)

// AuthMiddleware validates the bearer session through UserApp and stores the merchant id in the
// request context. Public paths pass through untouched.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			merchantID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithMerchantID(r.Context(), merchantID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	switch path {
	case "/login", "/register", "/inventory/checkout":
		return true
	}

	return false
}
