package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rasoipos/rasoi-api/pkg/authz"
	"github.com/rasoipos/rasoi-api/pkg/utils"
)

func authedRouter(t *testing.T, m *utils.JWTManager, perm string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(m))
	group := r.Group("")
	if perm != "" {
		group.Use(RequirePermission(perm))
	}
	group.GET("/probe", func(c *gin.Context) {
		actor := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID})
	})
	return r
}

func bearerFor(t *testing.T, m *utils.JWTManager, roles, perms []string) string {
	t.Helper()
	token, err := m.GenerateAccessToken(uuid.New(), uuid.New(), uuid.New(), "probe", roles, perms)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func TestAuthMiddleware(t *testing.T) {
	m := utils.NewJWTManager("test-secret", time.Hour, time.Hour)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"valid token", bearerFor(t, m, []string{"WAITER"}, nil), http.StatusOK},
	}

	r := authedRouter(t, m, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	m := utils.NewJWTManager("test-secret", time.Hour, time.Hour)
	r := authedRouter(t, m, authz.PermVoid)

	tests := []struct {
		name  string
		roles []string
		perms []string
		want  int
	}{
		{"permission held", []string{"MANAGER"}, []string{authz.PermVoid}, http.StatusOK},
		{"permission missing", []string{"CASHIER"}, []string{authz.PermReprint}, http.StatusForbidden},
		{"admin bypass", []string{authz.AdminRole}, nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/probe", nil)
			req.Header.Set("Authorization", bearerFor(t, m, tt.roles, tt.perms))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
