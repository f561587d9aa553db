package invites

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recipebox-backend/internal/shared/server/middleware"
	"recipebox-backend/internal/shared/server/respond"
)

// Handler wires invite endpoints to the service. Issuing codes is limited to
// the configured admin emails; redeeming is open to any authenticated caller.
type Handler struct {
	Svc         *Service
	adminEmails map[string]struct{}
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, adminEmails []string) *Handler {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		if trimmed := strings.ToLower(strings.TrimSpace(email)); trimmed != "" {
			admins[trimmed] = struct{}{}
		}
	}
	return &Handler{Svc: svc, adminEmails: admins}
}

// RegisterRoutes attaches invite routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/invites", h.create)
	rg.POST("/invites/redeem", h.redeem)
}

type createInviteRequest struct {
	MaxUses int `json:"maxUses"`
}

func (h *Handler) create(c *gin.Context) {
	email := strings.ToLower(middleware.UserEmailFromContext(c))
	if _, ok := h.adminEmails[email]; !ok {
		respond.Error(c, http.StatusForbidden, "forbidden", "admin access required", nil)
		return
	}

	var req createInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	invite, err := h.Svc.Create(c.Request.Context(), middleware.UserIDFromContext(c), req.MaxUses)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create invite", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, invite)
}

type redeemRequest struct {
	Code string `json:"code"`
}

func (h *Handler) redeem(c *gin.Context) {
	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	invite, err := h.Svc.Redeem(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "invite not found", nil)
		case errors.Is(err, ErrExhausted):
			respond.Error(c, http.StatusConflict, "invite_exhausted", "invite has no uses left", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to redeem invite", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"code":          invite.Code,
		"remainingUses": invite.MaxUses - invite.Used,
	})
}
