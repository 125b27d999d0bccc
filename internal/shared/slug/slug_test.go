package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStem(t *testing.T) {
	assert.Equal(t, "summer-tee-red", FileStem("Summer Tee (Red).PNG"))
	assert.Equal(t, "file", FileStem("红色.jpg"))
	assert.Equal(t, "photo", FileStem("../../photo.jpeg"))
	assert.Equal(t, "file", FileStem(""))
}

func TestFromName_Truncates(t *testing.T) {
	got := FromName(strings.Repeat("ab ", 30), "x")
	assert.LessOrEqual(t, len(got), 40)
	assert.False(t, strings.HasSuffix(got, "-"))
}
