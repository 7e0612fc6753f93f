package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/salonhub/booking-api/internal/model"
)

func requireRoleEngine(t *testing.T, routeRoles ...model.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only",
		func(c *gin.Context) {
			if raw := c.GetHeader("X-Role"); raw != "" {
				role, err := model.ParseRole(raw)
				if err != nil {
					c.AbortWithStatus(http.StatusUnauthorized)
					return
				}
				c.Set(ContextClaims, &model.TokenClaims{UserID: uuid.New(), Role: role})
			}
			c.Next()
		},
		RequireRole(routeRoles...),
		func(c *gin.Context) { c.String(http.StatusOK, "granted") },
	)
	return r
}

func TestRequireRole(t *testing.T) {
	r := requireRoleEngine(t, model.RoleAdmin)

	tests := []struct {
		name   string
		role   string
		status int
	}{
		{"admin allowed", "0", http.StatusOK},
		{"owner denied", "1", http.StatusForbidden},
		{"user denied", "3", http.StatusForbidden},
		{"unauthenticated", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			if tt.role != "" {
				req.Header.Set("X-Role", tt.role)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequireRoleMultipleRoles(t *testing.T) {
	r := requireRoleEngine(t, model.RoleAdmin, model.RoleOwner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("X-Role", "1")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
