package auth

import (
	"net/http"

	"github.com/frahmantamala/hr-mock/internal"
	"github.com/frahmantamala/hr-mock/internal/transport"
	"github.com/frahmantamala/hr-mock/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Credentials Credentials
}

func NewHandler(baseHandler *transport.BaseHandler, creds Credentials) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Credentials: creds,
	}
}

// BasicAuthMiddleware rejects requests without the configured Basic
// credentials with 401 {"message":"Unauthorized"}.
func (h *Handler) BasicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := h.Credentials.CheckRequest(r)
		if err != nil {
			logger.From(r.Context()).Warn("basic auth rejected", "reason", err.Error(), "path", r.URL.Path)
			h.WriteAppError(w, internal.ErrUnauthorized)
			return
		}

		ctx := internal.ContextWithAPIUser(r.Context(), username)
		ctx = logger.With(ctx, "api_user", username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
