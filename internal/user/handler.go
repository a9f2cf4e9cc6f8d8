package user

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hr-mock/internal"
	"github.com/frahmantamala/hr-mock/internal/transport"
	"github.com/frahmantamala/hr-mock/pkg/logger"
)

type ServiceAPI interface {
	GetLinkedUsers(ctx context.Context) (Users, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// GetUsers serves GET /{company}/v1/meta/users/.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetLinkedUsers(r.Context())
	if err != nil {
		logger.From(r.Context()).Error("GetUsers: failed to get users", "error", err)
		if appErr, ok := internal.IsAppError(err); ok {
			h.WriteAppError(w, appErr)
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "failed to get users")
		return
	}

	h.WriteJSON(w, http.StatusOK, users)
}
