package middleware

import (
	"context"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type sessionKey struct{}

// AuthRequired verifies the access token and resolves it into a user.Session
// stored on the request context. Everything behind it reads the session, not
// raw claims.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, _ := claims["user_id"].(string)
			email, _ := claims["email"].(string)
			if userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			roleStr, _ := claims["role"].(string)

			session := user.Session{
				UserID: userID,
				Email:  email,
				// A missing or garbled role claim degrades to employee.
				Role: user.ParseRole(roleStr),
			}
			ctx := context.WithValue(r.Context(), sessionKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// SessionFromContext returns the session placed by AuthRequired.
func SessionFromContext(ctx context.Context) (user.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(user.Session)
	return session, ok
}
