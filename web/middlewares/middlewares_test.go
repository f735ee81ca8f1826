package middlewares

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet.app/timesheet/security"
	"timesheet.app/timesheet/timesheet/model"
)

const cookieName = "timesheet.ApplicationCookie"

func newRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	secret := base64.StdEncoding.EncodeToString([]byte("middleware-test-secret"))
	raw, err := security.DecodeSecret(secret)
	require.NoError(t, err)

	r := gin.New()
	r.Use(RequestID())
	api := r.Group("/api", Authentication(raw, cookieName))
	api.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, GetIdentity(c))
	})
	api.GET("/admin", RequireManager(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, secret
}

func TestAuthentication(t *testing.T) {
	r, secret := newRouter(t)
	employee, err := security.CreateIdentityToken(&security.Identity{ID: 3, Role: model.RoleEmployee}, secret, time.Hour)
	require.NoError(t, err)
	manager, err := security.CreateIdentityToken(&security.Identity{ID: 1, Role: model.RoleManager}, secret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		cookie string
		want   int
	}{
		{"no token", "/api/me", "", "", http.StatusUnauthorized},
		{"malformed header", "/api/me", "Token abc", "", http.StatusUnauthorized},
		{"bad token", "/api/me", "Bearer abc", "", http.StatusUnauthorized},
		{"bearer", "/api/me", "Bearer " + employee, "", http.StatusOK},
		{"cookie", "/api/me", "", employee, http.StatusOK},
		{"employee on manager route", "/api/admin", "Bearer " + employee, "", http.StatusForbidden},
		{"manager on manager route", "/api/admin", "Bearer " + manager, "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}
}

func TestRequestIDReused(t *testing.T) {
	r, _ := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
