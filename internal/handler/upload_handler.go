package handler

import (
	"net/http"

	"github.com/gesscam/community-portal/pkg/response"
	"github.com/gesscam/community-portal/pkg/storage"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	storage storage.ImageStorage
	folder  string
}

func NewUploadHandler(storage storage.ImageStorage, folder string) *UploadHandler {
	return &UploadHandler{storage: storage, folder: folder}
}

// Upload accepts a multipart file and returns the hosted image URL. The
// route is admin-gated; the upload form is only reachable from the admin UI
// but the check is enforced here as well.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	url, err := h.storage.UploadImage(c.Request.Context(), file, h.folder, fileHeader.Filename)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
