package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/http/middleware"
	"pehlione.com/catalogadmin/internal/http/render"
)

type brandInput struct {
	Name        string `json:"name" binding:"required,max=64"`
	PicURL      string `json:"picUrl"`
	Sort        int    `json:"sort" binding:"gte=0"`
	Description string `json:"description"`
	Status      int    `json:"status" binding:"oneof=0 1"`
}

func (in brandInput) req(id int64) backend.BrandSaveReq {
	return backend.BrandSaveReq{ID: id, Name: in.Name, PicURL: in.PicURL, Sort: in.Sort, Description: in.Description, Status: in.Status}
}

// GET /api/brands
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	page, err := h.Svc.Brands(c.Request.Context(), pageQuery(c), backend.BrandFilter{
		Name:   strings.TrimSpace(c.Query("name")),
		Status: optInt(c, "status"),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, page)
}

// GET /api/brands/options
func (h *CatalogHandler) BrandOptions(c *gin.Context) {
	list, err := h.Svc.BrandOptions(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, list)
}

// POST /api/brands
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var in brandInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.Svc.SaveBrand(c.Request.Context(), in.req(0))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Created(c, id)
}

// PUT /api/brands/:id
func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in brandInput
	if !bindJSON(c, &in) {
		return
	}
	if _, err := h.Svc.SaveBrand(c.Request.Context(), in.req(id)); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

// DELETE /api/brands/:id
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteBrand(c.Request.Context(), id); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}
