package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/dojo-forms/internal/auth"
	"github.com/heartmarshall/dojo-forms/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (auth.Instructor, error)
}

// Authenticate attaches the instructor carried by a Bearer token to the
// request context. Requests without a token pass through anonymously; a
// token that fails validation is rejected with 401.
func Authenticate(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			instructor, err := validator.ValidateToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}
			ctx := ctxutil.WithActor(r.Context(), instructor.ID, instructor.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireInstructor rejects requests that reached it without an
// authenticated instructor. It must run after Authenticate.
func RequireInstructor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.ActorIDFromCtx(r.Context()); !ok {
			w.Header().Set("WWW-Authenticate", `Bearer realm="dojo-forms"`)
			writeError(w, http.StatusUnauthorized, "unauthorized", "instructor token required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
