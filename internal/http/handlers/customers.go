package handlers

import (
	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/http/middleware"
	"pehlione.com/catalogadmin/internal/http/render"
)

// GET /api/comments?spuId=&userId=&visible=
func (h *CatalogHandler) ListComments(c *gin.Context) {
	page, err := h.Svc.Comments(c.Request.Context(), pageQuery(c), backend.CommentFilter{
		SpuID:   queryInt64(c, "spuId"),
		UserID:  queryInt64(c, "userId"),
		Visible: optBool(c, "visible"),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, page)
}

// POST /api/comments
func (h *CatalogHandler) CreateComment(c *gin.Context) {
	var in backend.CommentCreateReq
	if !bindJSON(c, &in) {
		return
	}
	if err := h.Svc.CreateComment(c.Request.Context(), in); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

type visibleInput struct {
	Visible *bool `json:"visible" binding:"required"`
}

// PUT /api/comments/:id/visible
func (h *CatalogHandler) SetCommentVisible(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in visibleInput
	if !bindJSON(c, &in) {
		return
	}
	if err := h.Svc.SetCommentVisible(c.Request.Context(), id, *in.Visible); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

type replyInput struct {
	ReplyContent string `json:"replyContent" binding:"required"`
}

// PUT /api/comments/:id/reply
func (h *CatalogHandler) ReplyComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in replyInput
	if !bindJSON(c, &in) {
		return
	}
	if err := h.Svc.ReplyComment(c.Request.Context(), id, in.ReplyContent); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.NoContent(c)
}

func userSpuFilter(c *gin.Context) backend.UserSpuFilter {
	return backend.UserSpuFilter{
		UserID:      queryInt64(c, "userId"),
		SpuID:       queryInt64(c, "spuId"),
		UserDeleted: optBool(c, "userDeleted"),
	}
}

// GET /api/favorites
func (h *CatalogHandler) ListFavorites(c *gin.Context) {
	page, err := h.Svc.Favorites(c.Request.Context(), pageQuery(c), userSpuFilter(c))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, page)
}

// GET /api/browse-history
func (h *CatalogHandler) ListBrowseHistory(c *gin.Context) {
	page, err := h.Svc.BrowseHistory(c.Request.Context(), pageQuery(c), userSpuFilter(c))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, page)
}
