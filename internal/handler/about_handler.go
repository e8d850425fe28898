package handler

import (
	"net/http"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/service"
	"github.com/gesscam/community-portal/pkg/response"
	"github.com/gin-gonic/gin"
)

type AboutHandler struct {
	service service.AboutService
}

func NewAboutHandler(service service.AboutService) *AboutHandler {
	return &AboutHandler{service: service}
}

func (h *AboutHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *AboutHandler) Create(c *gin.Context) {
	var req dto.CreateSimplePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *AboutHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSimplePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *AboutHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedPost": deleted})
}
