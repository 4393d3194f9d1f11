package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/exhibit-backend/pkg/ctxutil"
)

type identityValidator interface {
	ValidateIdentity(token string) (string, error)
}

// Identity authenticates the optional bearer token. Requests without a token
// stay anonymous. A token that fails validation is rejected with 401. A nil
// validator means tokens are not accepted at all.
func Identity(validator identityValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, present := bearerToken(r)
			if !present {
				next.ServeHTTP(w, r)
				return
			}
			if validator == nil || token == "" {
				writeUnauthorized(w)
				return
			}

			identity, err := validator.ValidateIdentity(token)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			noteIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithIdentity(r.Context(), identity)))
		})
	}
}

// bearerToken returns the token of an "Authorization: Bearer" header and
// whether such a header was sent. Other schemes count as no token.
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="exhibit"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
