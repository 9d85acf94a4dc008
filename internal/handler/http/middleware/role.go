package middleware

import (
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
)

// HrOrAdminOnly gates the organization-wide routes behind the hr/admin
// capability. Services enforce the same predicate; the middleware rejects
// early so gated pages fail before any query runs.
func HrOrAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if !session.IsHrOrAdmin() {
			response.HandleError(w, user.ErrHrOrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
