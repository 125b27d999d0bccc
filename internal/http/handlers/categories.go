package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/http/middleware"
	"pehlione.com/catalogadmin/internal/http/render"
	"pehlione.com/catalogadmin/internal/modules/catalog"
)

type categoryInput struct {
	ParentID  int64  `json:"parentId" binding:"gte=0"`
	Name      string `json:"name" binding:"required,max=64"`
	PicURL    string `json:"picUrl"`
	BigPicURL string `json:"bigPicUrl"`
	Sort      int    `json:"sort" binding:"gte=0"`
	Status    int    `json:"status" binding:"oneof=0 1"`
}

func (in categoryInput) req(id int64) backend.CategorySaveReq {
	return backend.CategorySaveReq{
		ID: id, ParentID: in.ParentID, Name: in.Name, PicURL: in.PicURL,
		BigPicURL: in.BigPicURL, Sort: in.Sort, Status: in.Status,
	}
}

func categoryFilter(c *gin.Context) backend.CategoryFilter {
	return backend.CategoryFilter{
		Name:     strings.TrimSpace(c.Query("name")),
		Status:   optInt(c, "status"),
		ParentID: optInt64(c, "parentId"),
	}
}

// GET /api/categories?view=tree|rows|list
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()
	switch c.DefaultQuery("view", "rows") {
	case "tree":
		list, err := h.Svc.Categories(ctx, categoryFilter(c))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		render.OK(c, catalog.BuildTree(list))
	case "list":
		list, err := h.Svc.Categories(ctx, categoryFilter(c))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		render.OK(c, list)
	default:
		rows, err := h.Svc.CategoryRows(ctx, categoryFilter(c))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		render.OK(c, rows)
	}
}

// POST /api/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var in categoryInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.Svc.SaveCategory(c.Request.Context(), in.req(0))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Created(c, id)
}

// PUT /api/categories/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in categoryInput
	if !bindJSON(c, &in) {
		return
	}
	if _, err := h.Svc.SaveCategory(c.Request.Context(), in.req(id)); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

type sortInput struct {
	Items []backend.CategorySortItem `json:"items" binding:"required,min=1"`
}

// PUT /api/categories/sort
func (h *CatalogHandler) SortCategories(c *gin.Context) {
	var in sortInput
	if !bindJSON(c, &in) {
		return
	}
	if err := h.Svc.SortCategories(c.Request.Context(), in.Items); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

// DELETE /api/categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteCategory(c.Request.Context(), id); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

// GET /api/categories/:id/bindings
func (h *CatalogHandler) Bindings(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rows, err := h.Svc.Bindings(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, rows)
}

type bindingsInput struct {
	Display []catalog.BindingRow `json:"display"`
	Sales   []catalog.BindingRow `json:"sales"`
}

// PUT /api/categories/:id/bindings
func (h *CatalogHandler) SaveBindings(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in bindingsInput
	if !bindJSON(c, &in) {
		return
	}
	rows, err := h.Svc.SaveBindings(c.Request.Context(), id, append(in.Display, in.Sales...))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, rows)
}
