package audit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/middleware"
	"github.com/salonhub/booking-api/internal/model"
	"github.com/salonhub/booking-api/internal/service/audit"
)

type Handler struct {
	service *audit.Service
}

func NewHandler(service *audit.Service) *Handler {
	return &Handler{service: service}
}

// ListAuditLogs returns the audit trail, newest first. Admin only.
func (h *Handler) ListAuditLogs(c *gin.Context) {
	filters := map[string]interface{}{}

	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid user ID"})
			return
		}
		filters["user_id"] = id
	}
	if raw := c.Query("company_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid company ID"})
			return
		}
		filters["company_id"] = id
	}
	if entityType := c.Query("entity_type"); entityType != "" {
		filters["entity_type"] = entityType
	}

	logs, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": logs})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit-logs", middleware.RequireRole(model.RoleAdmin), h.ListAuditLogs)
}
