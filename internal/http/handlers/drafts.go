package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/export"
	"pehlione.com/catalogadmin/internal/http/middleware"
	"pehlione.com/catalogadmin/internal/http/render"
	"pehlione.com/catalogadmin/internal/modules/spuform"
	"pehlione.com/catalogadmin/pkg/view"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DraftsHandler drives the SPU form. Every response that changes a draft
// returns the whole page model so the client never merges state itself.
type DraftsHandler struct {
	Forms *spuform.Service
}

func NewDraftsHandler(svc *spuform.Service) *DraftsHandler {
	return &DraftsHandler{Forms: svc}
}

type openDraftInput struct {
	SpuID    int64 `json:"spuId" binding:"gte=0"`
	ReadOnly bool  `json:"readOnly"`
}

// POST /api/drafts
func (h *DraftsHandler) Open(c *gin.Context) {
	var in openDraftInput
	if !bindJSON(c, &in) {
		return
	}
	id, st, err := h.Forms.Open(c.Request.Context(), in.SpuID, in.ReadOnly)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view.NewDraftPage(id, st))
}

// GET /api/drafts/:id
func (h *DraftsHandler) Show(c *gin.Context) {
	id := c.Param("id")
	st, err := h.Forms.Get(id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, view.NewDraftPage(id, st))
}

// DELETE /api/drafts/:id
func (h *DraftsHandler) Discard(c *gin.Context) {
	h.Forms.Discard(c.Param("id"))
	render.NoContent(c)
}

// POST /api/drafts/:id/actions
func (h *DraftsHandler) Apply(c *gin.Context) {
	id := c.Param("id")
	var a spuform.Action
	if !bindJSON(c, &a) {
		return
	}
	st, err := h.Forms.Apply(id, a)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, view.NewDraftPage(id, st))
}

type categoryChangeInput struct {
	CategoryID int64 `json:"categoryId" binding:"required,gt=0"`
}

// POST /api/drafts/:id/category
func (h *DraftsHandler) ChangeCategory(c *gin.Context) {
	id := c.Param("id")
	var in categoryChangeInput
	if !bindJSON(c, &in) {
		return
	}
	st, err := h.Forms.ChangeCategory(c.Request.Context(), id, in.CategoryID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, view.NewDraftPage(id, st))
}

// POST /api/drafts/:id/validate
func (h *DraftsHandler) Validate(c *gin.Context) {
	if err := h.Forms.Validate(c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, gin.H{"valid": true})
}

// POST /api/drafts/:id/submit
func (h *DraftsHandler) Submit(c *gin.Context) {
	res, err := h.Forms.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, res)
}

// GET /api/drafts/:id/skus.xlsx
func (h *DraftsHandler) ExportSKUs(c *gin.Context) {
	st, err := h.Forms.Get(c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	name := "skus-new.xlsx"
	if st.Draft.ID != 0 {
		name = fmt.Sprintf("skus-%d.xlsx", st.Draft.ID)
	}
	if err := render.Attachment(c, name, xlsxContentType, func(w io.Writer) error {
		return export.WriteSKUSheet(w, st)
	}); err != nil {
		middleware.Fail(c, err)
	}
}
