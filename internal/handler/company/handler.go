package company

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/middleware"
	"github.com/salonhub/booking-api/internal/model"
	"github.com/salonhub/booking-api/internal/service/company"
)

type Handler struct {
	service *company.Service
}

func NewHandler(service *company.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateCompany(c *gin.Context) {
	var req model.CreateCompanyRequest
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

func (h *Handler) GetCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid company ID"})
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": found})
}

func (h *Handler) ListCompanies(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	companies, err := h.service.List(c.Request.Context(), claims)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": companies})
}

func (h *Handler) UpdateCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid company ID"})
		return
	}

	var req model.UpdateCompanyRequest
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

// UpdateCompanyStatus moves a company out of pending. Admin only.
func (h *Handler) UpdateCompanyStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid company ID"})
		return
	}

	var req model.UpdateCompanyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if err := h.service.UpdateStatus(c.Request.Context(), claims, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	companies := r.Group("/companies")
	{
		companies.POST("", h.CreateCompany)
		companies.GET("", h.ListCompanies)
		companies.GET("/:id", h.GetCompany)
		companies.PUT("/:id", h.UpdateCompany)
		companies.PUT("/:id/status", middleware.RequireRole(model.RoleAdmin), h.UpdateCompanyStatus)
	}
}
