package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rasoipos/rasoi-api/internal/application/service"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/request"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles email and password login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", loginPayload(output))
}

// LoginPIN handles fast PIN login from a shared terminal
func (h *AuthHandler) LoginPIN(c *gin.Context) {
	var req request.PinLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.authService.LoginWithPIN(c.Request.Context(), &service.PinLoginInput{
		Mobile: req.Mobile,
		PIN:    req.PIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", loginPayload(output))
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", loginPayload(output))
}

func loginPayload(output *service.LoginOutput) gin.H {
	return gin.H{
		"user": gin.H{
			"id":        output.User.ID,
			"name":      output.User.Name,
			"email":     output.User.Email,
			"mobile":    output.User.Mobile,
			"branch_id": output.User.BranchID,
			"roles":     output.User.RoleCodes(),
		},
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	}
}
