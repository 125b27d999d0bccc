package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pehlione.com/catalogadmin/internal/modules/sku"
	"pehlione.com/catalogadmin/internal/modules/spuform"
)

func TestWriteSKUSheet_MultiSpec(t *testing.T) {
	st := spuform.New()
	st.Draft.SpecType = true
	st.Catalog.Sales = []spuform.Binding{{PropertyID: 1, PropertyName: "Colour", SupportValueImage: true}}
	st.Projection = []sku.Property{
		{ID: 1, Name: "Colour", Values: []sku.Value{{ID: 12, Name: "Blue"}, {ID: 11, Name: "Red"}}},
		{ID: 2, Name: "Size", Values: []sku.Value{{ID: 21, Name: "S"}}},
	}
	st.Draft.SKUs = []sku.SKU{
		{Properties: []sku.Pair{{PropertyID: 1, ValueID: 12, ValueName: "Blue"}, {PropertyID: 2, ValueID: 21, ValueName: "S"}}, Price: decimal.RequireFromString("9.90"), Stock: 3},
		{Properties: []sku.Pair{{PropertyID: 1, ValueID: 11, ValueName: "Red"}, {PropertyID: 2, ValueID: 21, ValueName: "S"}}, Price: decimal.RequireFromString("12"), Stock: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSKUSheet(&buf, st))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Colour", "Size", "Price"}, rows[0][:3])
	assert.Equal(t, []string{"Red", "S", "12", "0", "0", "1"}, rows[1][:6])
	assert.Equal(t, "Blue", rows[2][0])
	assert.Equal(t, "9.9", rows[2][2])
}

func TestWriteSKUSheet_SingleSpec(t *testing.T) {
	st := spuform.New()
	st.Draft.SKUs[0].Stock = 5

	var buf bytes.Buffer
	require.NoError(t, WriteSKUSheet(&buf, st))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Price", rows[0][0])
	assert.Equal(t, "5", rows[1][3])
}
