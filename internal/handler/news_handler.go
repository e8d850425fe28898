package handler

import (
	"net/http"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/service"
	"github.com/gesscam/community-portal/pkg/response"
	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	newsService     service.NewsService
	categoryService service.CategoryService
}

func NewNewsHandler(newsService service.NewsService, categoryService service.CategoryService) *NewsHandler {
	return &NewsHandler{newsService: newsService, categoryService: categoryService}
}

func (h *NewsHandler) List(c *gin.Context) {
	list, err := h.newsService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	post, err := h.newsService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *NewsHandler) GetForEdit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	edit, err := h.newsService.GetForEdit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, edit)
}

func (h *NewsHandler) GetByCategorySlug(c *gin.Context) {
	result, err := h.newsService.GetByCategorySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req dto.CreateNewsPostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.newsService.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateNewsPostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.newsService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.newsService.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedPost": deleted})
}

func (h *NewsHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}
