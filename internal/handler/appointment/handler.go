package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/middleware"
	"github.com/salonhub/booking-api/internal/model"
	"github.com/salonhub/booking-api/internal/service/appointment"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
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

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid appointment ID"})
		return
	}

	claims := middleware.ClaimsFromContext(c)
	found, err := h.service.Get(c.Request.Context(), claims, id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": found})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	filters := &model.AppointmentFilters{
		FromDate: c.Query("from_date"),
		ToDate:   c.Query("to_date"),
	}

	if raw := c.Query("company_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid company ID"})
			return
		}
		filters.CompanyID = id
	}
	if raw := c.Query("staff_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid staff ID"})
			return
		}
		filters.StaffID = id
	}
	if status := c.Query("status"); status != "" {
		filters.Status = model.AppointmentStatus(status)
	}

	claims := middleware.ClaimsFromContext(c)
	appointments, err := h.service.List(c.Request.Context(), claims, filters)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": appointments})
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid appointment ID"})
		return
	}

	var req model.UpdateAppointmentRequest
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

// UpdateAppointmentStatus runs the assignment workflow: confirming an
// appointment binds the chosen staff member in the same transition.
func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid appointment ID"})
		return
	}

	var req model.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	claims := middleware.ClaimsFromContext(c)
	updated, err := h.service.UpdateStatus(c.Request.Context(), claims, id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": updated})
}

// GetAppointmentRoster returns the company roster partitioned by the
// booking's staff preferences, plus a suggested default assignee.
func (h *Handler) GetAppointmentRoster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid appointment ID"})
		return
	}

	claims := middleware.ClaimsFromContext(c)
	appt, resolution, suggestion, err := h.service.ResolveRoster(c.Request.Context(), claims, id)
	if err != nil {
		c.Error(err)
		return
	}

	start, err := appt.StartTime()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
		"slot": gin.H{
			"start_at": start,
			"end_at":   start.Add(model.DisplayDuration),
		},
		"preferred": resolution.Preferred,
		"other":     resolution.Other,
		"suggested": suggestion,
	}})
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid appointment ID"})
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
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.PUT("/:id/status", h.UpdateAppointmentStatus)
		appointments.GET("/:id/roster", h.GetAppointmentRoster)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}
