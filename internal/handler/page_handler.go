package handler

import (
	"net/http"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/service"
	"github.com/gesscam/community-portal/pkg/response"
	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	service service.PageService
}

func NewPageHandler(service service.PageService) *PageHandler {
	return &PageHandler{service: service}
}

func (h *PageHandler) Get(c *gin.Context) {
	page, err := h.service.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PageHandler) Upsert(c *gin.Context) {
	var req dto.UpdatePageRequest
	if !bindJSON(c, &req) {
		return
	}

	page, err := h.service.Upsert(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
