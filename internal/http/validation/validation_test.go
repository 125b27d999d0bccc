package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type loginForm struct {
	Username string `json:"username" binding:"required"`
	Sort     int    `json:"sort" binding:"gte=0"`
	Status   int    `form:"status" binding:"oneof=0 1"`
}

func TestFromBindError_ValidationErrors(t *testing.T) {
	dst := loginForm{Sort: -1, Status: 3}
	err := binding.Validator.ValidateStruct(&dst)

	got := FromBindError(err, &dst)
	assert.Equal(t, "This field is required.", got["username"])
	assert.Equal(t, "Must be greater than or equal to 0.", got["sort"])
	assert.Equal(t, "Must be one of: 0 1.", got["status"])
}

func TestFromBindError_Malformed(t *testing.T) {
	var dst loginForm
	err := json.Unmarshal([]byte("{"), &dst)
	assert.Equal(t, FieldErrors{"_": "Request body is invalid."}, FromBindError(err, &dst))
}
