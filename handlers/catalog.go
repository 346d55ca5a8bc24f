package handlers

import (
	"net/http"

	"beautymatch/services/catalog"
	"beautymatch/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the filtered, cursor-addressable browse view.
type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{CatalogService: svc}
}

// StartSessionHandler handles POST /api/catalog/session.
func (h *CatalogHandler) StartSessionHandler(c *gin.Context) {
	view, err := h.CatalogService.StartSession(c, c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start browse session", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// ApplyFilterHandler handles PUT /api/catalog/filter.
func (h *CatalogHandler) ApplyFilterHandler(c *gin.Context) {
	var f catalog.Filter
	if err := c.ShouldBindJSON(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter payload", err.Error())
		return
	}

	view, err := h.CatalogService.ApplyFilter(c, c.GetString("userID"), f)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "No browse session", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// AdvanceHandler handles POST /api/catalog/advance.
func (h *CatalogHandler) AdvanceHandler(c *gin.Context) {
	view, err := h.CatalogService.Advance(c, c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "No browse session", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// RetreatHandler handles POST /api/catalog/retreat.
func (h *CatalogHandler) RetreatHandler(c *gin.Context) {
	view, err := h.CatalogService.Retreat(c, c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "No browse session", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// CurrentHandler handles GET /api/catalog/current.
func (h *CatalogHandler) CurrentHandler(c *gin.Context) {
	view, err := h.CatalogService.Current(c, c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "No browse session", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}
