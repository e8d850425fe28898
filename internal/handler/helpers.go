package handler

import (
	"net/http"

	"github.com/gesscam/community-portal/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// idParam parses the named route parameter as a UUID. Every route uses this
// one helper so parameter handling is identical across handlers.
func idParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the body and reports validation failures in the shared
// error envelope.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return false
	}
	return true
}
