package handler

import (
	"github.com/celushop/backend/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the brand/model/storage taxonomy behind the cascading
// intake and sale pickers
type CatalogHandler struct {
	BaseHandler
	taxonomy *catalog.Taxonomy
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(taxonomy *catalog.Taxonomy) *CatalogHandler {
	return &CatalogHandler{
		taxonomy: taxonomy,
	}
}

// RegisterRoutes attaches the catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cat := rg.Group("/catalog")
	cat.GET("/brands", h.ListBrands)
	cat.GET("/brands/:brand/models", h.ListModels)
	cat.GET("/brands/:brand/models/:model/storages", h.ListStorages)
}

// ListBrands returns the configured brands, sorted
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	h.Success(c, h.taxonomy.Brands())
}

// ListModels returns the models of a brand
func (h *CatalogHandler) ListModels(c *gin.Context) {
	h.Success(c, h.taxonomy.ModelsFor(c.Param("brand")))
}

// ListStorages returns the storage options of a model
func (h *CatalogHandler) ListStorages(c *gin.Context) {
	h.Success(c, h.taxonomy.StoragesFor(c.Param("brand"), c.Param("model")))
}
