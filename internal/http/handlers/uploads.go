package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/http/middleware"
	"pehlione.com/catalogadmin/internal/http/render"
	"pehlione.com/catalogadmin/internal/shared/apperr"
	"pehlione.com/catalogadmin/internal/storage"
)

const maxUploadBytes = 10 << 20

type UploadsHandler struct {
	Storage storage.Storage
}

func NewUploadsHandler(s storage.Storage) *UploadsHandler {
	return &UploadsHandler{Storage: s}
}

// POST /api/uploads (multipart: file, prefix)
func (h *UploadsHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please choose a file to upload.", map[string]string{"file": "required"}))
		return
	}
	if fh.Size > maxUploadBytes {
		middleware.Fail(c, apperr.InvalidErr("File is larger than 10 MB.", map[string]string{"file": "max"}))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.Storage.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		PathPrefix:  strings.TrimSpace(c.PostForm("prefix")),
	})
	if err != nil {
		if _, ok := apperr.As(err); !ok {
			err = apperr.UpstreamErr("Upload failed.", err)
		}
		middleware.Fail(c, err)
		return
	}

	display, err := h.Storage.ResolveURL(c.Request.Context(), res.URL)
	if err != nil {
		display = res.URL
	}
	render.OK(c, gin.H{"key": res.Key, "url": res.URL, "displayUrl": display})
}

type resolveInput struct {
	URL string `json:"url" binding:"required"`
}

// POST /api/uploads/resolve
func (h *UploadsHandler) Resolve(c *gin.Context) {
	var in resolveInput
	if !bindJSON(c, &in) {
		return
	}
	u, err := h.Storage.ResolveURL(c.Request.Context(), in.URL)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, gin.H{"url": u})
}
