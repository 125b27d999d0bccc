package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/http/middleware"
	"pehlione.com/catalogadmin/internal/http/render"
	"pehlione.com/catalogadmin/pkg/view"
)

// GET /api/spus?tabType=&name=&categoryId=&brandId=
func (h *CatalogHandler) ListSpus(c *gin.Context) {
	page, err := h.Svc.Spus(c.Request.Context(), pageQuery(c), backend.SpuFilter{
		Name:       strings.TrimSpace(c.Query("name")),
		TabType:    optInt(c, "tabType"),
		CategoryID: queryInt64(c, "categoryId"),
		BrandID:    queryInt64(c, "brandId"),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, view.NewSpuListPage(page))
}

// GET /api/spus/count
func (h *CatalogHandler) SpuCount(c *gin.Context) {
	counts, err := h.Svc.SpuCount(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, counts)
}

type spuStatusInput struct {
	Status *int `json:"status" binding:"required"`
}

// PUT /api/spus/:id/status
func (h *CatalogHandler) SetSpuStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in spuStatusInput
	if !bindJSON(c, &in) {
		return
	}
	if err := h.Svc.SetSpuStatus(c.Request.Context(), id, *in.Status); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

// DELETE /api/spus/:id
func (h *CatalogHandler) DeleteSpu(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteSpu(c.Request.Context(), id); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}
