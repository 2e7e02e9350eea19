package handlers

import (
	"net/http"
	"strings"

	response "content_factory/internal/adapter/http/dto/response"
	"content_factory/internal/domain/entities"
	"content_factory/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static service catalog.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListServices returns the full catalog in display order.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(entities.Services()))
}

// GetService resolves one catalog entry by id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	id := entities.ServiceID(strings.TrimSpace(c.Param("id")))
	entry, ok := entities.LookupService(id)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntry(entry))
}
