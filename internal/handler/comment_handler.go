package handler

import (
	"net/http"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/service"
	"github.com/gesscam/community-portal/pkg/response"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) ListForPost(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.service.ListForPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	userID, err := response.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.service.Create(c.Request.Context(), userID, postID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := idParam(c, "commentId")
	if !ok {
		return
	}

	userID, err := response.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.service.Update(c.Request.Context(), userID, commentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := idParam(c, "commentId")
	if !ok {
		return
	}

	userID, err := response.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
