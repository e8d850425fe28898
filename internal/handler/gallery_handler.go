package handler

import (
	"net/http"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/service"
	"github.com/gesscam/community-portal/pkg/response"
	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	galleryService  service.GalleryService
	categoryService service.CategoryService
}

func NewGalleryHandler(galleryService service.GalleryService, categoryService service.CategoryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService, categoryService: categoryService}
}

func (h *GalleryHandler) List(c *gin.Context) {
	list, err := h.galleryService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	image, err := h.galleryService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *GalleryHandler) ListCategories(c *gin.Context) {
	counts, err := h.categoryService.ListWithCounts(c.Request.Context(), service.ContentGallery)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": counts})
}

func (h *GalleryHandler) GetByCategorySlug(c *gin.Context) {
	result, err := h.galleryService.GetByCategorySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req dto.CreateGalleryImageRequest
	if !bindJSON(c, &req) {
		return
	}

	image, err := h.galleryService.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGalleryImageRequest
	if !bindJSON(c, &req) {
		return
	}

	image, err := h.galleryService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.galleryService.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedImage": deleted})
}
