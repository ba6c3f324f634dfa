package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rasoipos/rasoi-api/internal/application/service"
	infraRepo "github.com/rasoipos/rasoi-api/internal/infrastructure/repository"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/response"
	"github.com/rasoipos/rasoi-api/pkg/authz"
	"github.com/rasoipos/rasoi-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. The token carries
// tenant, branch, roles and permission codes; the tenant id is also pushed
// into the request context so repository scoping applies downstream.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("tenant_id", claims.TenantID)
		c.Set("branch_id", claims.BranchID)
		c.Set("user_name", claims.Name)
		c.Set("user_roles", claims.Roles)
		c.Set("user_permissions", claims.Permissions)

		ctx := infraRepo.WithTenant(c.Request.Context(), claims.TenantID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequirePermission gates a route on a permission code, honoring the admin
// role shortcut.
func RequirePermission(code string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}
		if !authz.Allowed(actor.Roles, actor.Permissions, code) {
			response.Forbidden(c, "Missing permission: "+code)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetActor rebuilds the authenticated actor from the gin context. Returns
// nil when the request is unauthenticated.
func GetActor(c *gin.Context) *service.Actor {
	userID, ok := c.Get("user_id")
	if !ok {
		return nil
	}
	uid, ok := userID.(uuid.UUID)
	if !ok {
		return nil
	}

	actor := &service.Actor{UserID: uid}
	if v, ok := c.Get("tenant_id"); ok {
		if id, ok := v.(uuid.UUID); ok {
			actor.TenantID = id
		}
	}
	if v, ok := c.Get("branch_id"); ok {
		if id, ok := v.(uuid.UUID); ok {
			actor.BranchID = id
		}
	}
	if v, ok := c.Get("user_name"); ok {
		if name, ok := v.(string); ok {
			actor.Name = name
		}
	}
	if v, ok := c.Get("user_roles"); ok {
		if roles, ok := v.([]string); ok {
			actor.Roles = roles
		}
	}
	if v, ok := c.Get("user_permissions"); ok {
		if perms, ok := v.([]string); ok {
			actor.Permissions = perms
		}
	}
	return actor
}

// GetTenantID retrieves the tenant ID from gin context
func GetTenantID(c *gin.Context) uuid.UUID {
	tenantID, exists := c.Get("tenant_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := tenantID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
