package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/utils/errors"
)

// InternalMiddleware checks for static API key in header. An empty key closes the routes.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if apiKey == "" || !ok || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
