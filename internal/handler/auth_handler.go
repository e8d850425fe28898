package handler

import (
	"net/http"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/middleware"
	"github.com/gesscam/community-portal/internal/service"
	"github.com/gesscam/community-portal/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service      service.AuthService
	secureCookie bool
}

func NewAuthHandler(service service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: service, secureCookie: secureCookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.service.SessionTTL().Seconds()), "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, dto.LoginResponse{User: *user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := response.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.service.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
