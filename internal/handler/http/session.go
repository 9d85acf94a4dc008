package http

import (
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
)

// sessionFromRequest pulls the session resolved by the auth middleware. It
// writes the error response itself, so callers just return on !ok.
func sessionFromRequest(w http.ResponseWriter, r *http.Request) (user.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return user.Session{}, false
	}
	return session, true
}
