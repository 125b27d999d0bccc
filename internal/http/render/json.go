package render

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, v any) {
	c.JSON(http.StatusOK, v)
}

func Created(c *gin.Context, id int64) {
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Attachment buffers write's output and sends it as a download. Nothing is
// sent if write fails, so the error handler can still answer.
func Attachment(c *gin.Context, filename, contentType string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
	return nil
}
