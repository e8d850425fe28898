package handler

import (
	"net/http"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/service"
	"github.com/gesscam/community-portal/pkg/response"
	"github.com/gin-gonic/gin"
)

type ExecHandler struct {
	service service.ExecService
}

func NewExecHandler(service service.ExecService) *ExecHandler {
	return &ExecHandler{service: service}
}

func (h *ExecHandler) List(c *gin.Context) {
	members, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *ExecHandler) Create(c *gin.Context) {
	var req dto.CreateExecMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *ExecHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateExecMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *ExecHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedMember": deleted})
}
