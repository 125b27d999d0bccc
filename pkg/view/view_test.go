package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/modules/sku"
	"pehlione.com/catalogadmin/internal/modules/spuform"
)

func TestYuan(t *testing.T) {
	assert.Equal(t, "¥1,234.50", Yuan(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "¥0.00", Yuan(decimal.Zero))
	assert.Equal(t, "¥10.99", MoneyFromFen(1099))
}

func pair(prop, val int64, name, pic string) sku.Pair {
	return sku.Pair{PropertyID: prop, ValueID: val, ValueName: name, ValuePicURL: pic}
}

func TestSKURows_OrdersByColorThenSourceIndex(t *testing.T) {
	st := spuform.New()
	st.Catalog = spuform.Catalog{Sales: []spuform.Binding{
		{PropertyID: 2, PropertyName: "Size"},
		{PropertyID: 1, PropertyName: "Colour", SupportValueImage: true},
	}}
	st.Draft.SpecType = true
	st.Draft.PicURL = "cover.png"
	st.Draft.SKUs = []sku.SKU{
		{Properties: []sku.Pair{pair(1, 12, "Blue", ""), pair(2, 21, "S", "")}},
		{Properties: []sku.Pair{pair(1, 11, "Red", "red.png"), pair(2, 21, "S", "")}},
		{Properties: []sku.Pair{pair(1, 12, "Blue", ""), pair(2, 22, "M", "")}, PicURL: "own.png"},
		{Properties: []sku.Pair{pair(1, 11, "Red", "red.png"), pair(2, 22, "M", "")}},
	}

	rows := SKURows(st)
	require.Len(t, rows, 4)
	var order []int
	for _, r := range rows {
		order = append(order, r.SourceIndex)
	}
	assert.Equal(t, []int{1, 3, 0, 2}, order)

	assert.Equal(t, "red.png", rows[0].DisplayPic)
	assert.Equal(t, "cover.png", rows[2].DisplayPic)
	assert.Equal(t, "own.png", rows[3].DisplayPic)
	assert.Equal(t, "Red / S", rows[0].Label)
	assert.Equal(t, "11_21", rows[0].Key)
}

func TestSKURows_MissingColorSortsLast(t *testing.T) {
	st := spuform.New()
	st.Draft.SpecType = true
	st.Projection = []sku.Property{{ID: 5, Name: "Color"}}
	st.Draft.SKUs = []sku.SKU{
		{Properties: []sku.Pair{pair(6, 1, "x", "")}},
		{Properties: []sku.Pair{pair(5, 9, "Black", "")}},
	}
	rows := SKURows(st)
	assert.Equal(t, 1, rows[0].SourceIndex)
	assert.Equal(t, 0, rows[1].SourceIndex)
}

func TestSKURows_SingleSpecKeepsOrder(t *testing.T) {
	st := spuform.New()
	rows := SKURows(st)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].SourceIndex)
	assert.Equal(t, int64(0), ColorPropertyID(st))
}

func TestNewSpuListPage(t *testing.T) {
	page := NewSpuListPage(backend.Page[backend.Spu]{
		Total: 1,
		List:  []backend.Spu{{ID: 3, Name: "Tee", Price: 1999, Status: backend.SpuStatusDisable}},
	})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "¥19.99", page.Items[0].Price)
	assert.Equal(t, "Off shelf", page.Items[0].StatusText)
	assert.Empty(t, page.Items[0].CreatedAt)
}
