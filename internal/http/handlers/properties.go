package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/http/middleware"
	"pehlione.com/catalogadmin/internal/http/render"
)

type propertyInput struct {
	Name         string `json:"name" binding:"required,max=64"`
	PropertyType int    `json:"propertyType" binding:"oneof=0 1"`
	InputType    int    `json:"inputType"`
	Status       int    `json:"status" binding:"oneof=0 1"`
	Remark       string `json:"remark"`
}

func (in propertyInput) req(id int64) backend.PropertySaveReq {
	return backend.PropertySaveReq{
		ID: id, Name: in.Name, PropertyType: in.PropertyType,
		InputType: in.InputType, Status: in.Status, Remark: in.Remark,
	}
}

// GET /api/properties
func (h *CatalogHandler) ListProperties(c *gin.Context) {
	page, err := h.Svc.Properties(c.Request.Context(), pageQuery(c), backend.PropertyFilter{
		Name:         strings.TrimSpace(c.Query("name")),
		Status:       optInt(c, "status"),
		PropertyType: optInt(c, "propertyType"),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, page)
}

// GET /api/properties/options?propertyType=
func (h *CatalogHandler) PropertyOptions(c *gin.Context) {
	list, err := h.Svc.PropertyOptions(c.Request.Context(), optInt(c, "propertyType"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, list)
}

// POST /api/properties
func (h *CatalogHandler) CreateProperty(c *gin.Context) {
	var in propertyInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.Svc.SaveProperty(c.Request.Context(), in.req(0))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Created(c, id)
}

// PUT /api/properties/:id
func (h *CatalogHandler) UpdateProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in propertyInput
	if !bindJSON(c, &in) {
		return
	}
	if _, err := h.Svc.SaveProperty(c.Request.Context(), in.req(id)); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

// DELETE /api/properties/:id
func (h *CatalogHandler) DeleteProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteProperty(c.Request.Context(), id); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

type propertyValueInput struct {
	PropertyID int64  `json:"propertyId" binding:"required,gt=0"`
	Name       string `json:"name" binding:"required,max=64"`
	PicURL     string `json:"picUrl"`
	Status     int    `json:"status" binding:"oneof=0 1"`
	Remark     string `json:"remark"`
}

func (in propertyValueInput) req(id int64) backend.PropertyValueSaveReq {
	return backend.PropertyValueSaveReq{
		ID: id, PropertyID: in.PropertyID, Name: in.Name,
		PicURL: in.PicURL, Status: in.Status, Remark: in.Remark,
	}
}

// GET /api/property-values?propertyId=
func (h *CatalogHandler) ListPropertyValues(c *gin.Context) {
	page, err := h.Svc.PropertyValues(c.Request.Context(), pageQuery(c), backend.PropertyValueFilter{
		PropertyID: queryInt64(c, "propertyId"),
		Name:       strings.TrimSpace(c.Query("name")),
		Status:     optInt(c, "status"),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, page)
}

// GET /api/property-values/options?propertyId=
func (h *CatalogHandler) PropertyValueOptions(c *gin.Context) {
	list, err := h.Svc.PropertyValueOptions(c.Request.Context(), queryInt64(c, "propertyId"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, list)
}

// POST /api/property-values
func (h *CatalogHandler) CreatePropertyValue(c *gin.Context) {
	var in propertyValueInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.Svc.SavePropertyValue(c.Request.Context(), in.req(0))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Created(c, id)
}

// PUT /api/property-values/:id
func (h *CatalogHandler) UpdatePropertyValue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in propertyValueInput
	if !bindJSON(c, &in) {
		return
	}
	if _, err := h.Svc.SavePropertyValue(c.Request.Context(), in.req(id)); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

// DELETE /api/property-values/:id
func (h *CatalogHandler) DeletePropertyValue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeletePropertyValue(c.Request.Context(), id); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}
