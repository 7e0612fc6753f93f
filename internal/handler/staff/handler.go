package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/middleware"
	"github.com/salonhub/booking-api/internal/model"
	"github.com/salonhub/booking-api/internal/service/staff"
)

type Handler struct {
	service *staff.Service
}

func NewHandler(service *staff.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var req model.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	claims := middleware.ClaimsFromContext(c)
	created, err := h.service.Create(c.Request.Context(), claims, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": created})
}

func (h *Handler) GetStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid staff ID"})
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": found})
}

func (h *Handler) ListStaffByCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid company ID"})
		return
	}

	roster, err := h.service.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": roster})
}

// ListAvailableUsers returns users for the staffing picker. Users already
// staffed at the company are excluded unless include_staffed=true.
func (h *Handler) ListAvailableUsers(c *gin.Context) {
	companyID, err := uuid.Parse(c.Query("company_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid company ID"})
		return
	}
	includeStaffed := c.Query("include_staffed") == "true"

	claims := middleware.ClaimsFromContext(c)
	users, err := h.service.ListAvailableUsers(c.Request.Context(), claims, companyID, includeStaffed)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": users})
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid staff ID"})
		return
	}

	var req model.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	claims := middleware.ClaimsFromContext(c)
	updated, err := h.service.Update(c.Request.Context(), claims, id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": updated})
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid staff ID"})
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if err := h.service.Delete(c.Request.Context(), claims, id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	staffGroup := r.Group("/staff")
	{
		staffGroup.POST("", h.CreateStaff)
		staffGroup.GET("/available-users", h.ListAvailableUsers)
		staffGroup.GET("/company/:companyId", h.ListStaffByCompany)
		staffGroup.GET("/:id", h.GetStaff)
		staffGroup.PUT("/:id", h.UpdateStaff)
		staffGroup.DELETE("/:id", h.DeleteStaff)
	}
}
