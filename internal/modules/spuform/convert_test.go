package spuform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pehlione.com/catalogadmin/internal/backend"
)

func detailFixture() backend.Spu {
	return backend.Spu{
		ID:                 42,
		Name:               "Tee",
		Keyword:            "tee",
		Introduction:       "soft",
		Description:        "<p>soft</p>",
		CategoryID:         9,
		BrandID:            3,
		PicURL:             "cover.png",
		SliderPicURLs:      []string{"a.png", "", "b.png"},
		SpecType:           true,
		DeliveryTypes:      []int{1},
		DeliveryTemplateID: 8,
		DisplayProperties: []backend.SpuDisplayProperty{
			{PropertyID: propMaterial, PropertyName: "Material", ValueText: "Cotton", Sort: 10},
		},
		Skus: []backend.Sku{
			{
				ID: 1001,
				Properties: []backend.SkuProperty{
					{PropertyID: propSize, PropertyName: "Size", ValueID: 21, ValueName: "S"},
					{PropertyID: propColor, PropertyName: "Color", ValueID: 11, ValueName: "Red", ValuePicURL: "red.png"},
				},
				Price: 12345, MarketPrice: 15000, CostPrice: 8000, Stock: 4,
				SubCommissionFirstPrice: 5,
			},
			{
				ID: 1002,
				Properties: []backend.SkuProperty{
					{PropertyID: propSize, PropertyName: "Size", ValueID: 22, ValueName: "M"},
					{PropertyID: propColor, PropertyName: "Color", ValueID: 11, ValueName: "Red", ValuePicURL: "red.png"},
				},
				Price: 99, Stock: 1,
			},
		},
	}
}

func TestHydrate_WithoutCatalogKeepsDetail(t *testing.T) {
	s := Hydrate(detailFixture(), Catalog{}, false)

	require.Len(t, s.Draft.SKUs, 2)
	assert.True(t, s.Draft.SKUs[0].Price.Equal(decimal.RequireFromString("123.45")))
	assert.True(t, s.Draft.SKUs[0].SubCommissionFirstPrice.Equal(decimal.RequireFromString("0.05")))
	assert.True(t, s.Draft.SKUs[1].Price.Equal(decimal.RequireFromString("0.99")))

	// first-seen order from the SKU pairs
	require.Len(t, s.Projection, 2)
	assert.Equal(t, propSize, s.Projection[0].ID)
	assert.Len(t, s.Projection[0].Values, 2)
	assert.Equal(t, []Slot{{ValueID: 11, ValueName: "Red", PicURL: "red.png"}}, s.Slots[propColor])
}

func TestHydrate_ResyncsAgainstCatalog(t *testing.T) {
	s := Hydrate(detailFixture(), testCatalog(), true)

	assert.True(t, s.ReadOnly)
	require.Len(t, s.Projection, 2)
	assert.Equal(t, propColor, s.Projection[0].ID, "catalog order wins")

	// color is folded first, so size varies slowest
	assert.Equal(t, []string{"11_21", "11_22"}, keys(s.Draft.SKUs))
	assert.Equal(t, int64(1001), s.Draft.SKUs[0].ID)
	assert.Equal(t, 4, s.Draft.SKUs[0].Stock)
	assert.Equal(t, "Color", s.Draft.SKUs[0].Properties[0].PropertyName)
}

func TestHydrate_NoSKUsGetsDefault(t *testing.T) {
	d := detailFixture()
	d.SpecType = false
	d.Skus = nil
	s := Hydrate(d, testCatalog(), false)
	require.Len(t, s.Draft.SKUs, 1)
	assert.Empty(t, s.Draft.SKUs[0].Properties)
}

func TestToSaveRequest_RoundTripsMoney(t *testing.T) {
	s := Hydrate(detailFixture(), Catalog{}, false)
	s.Draft.DisplayProperties = append(s.Draft.DisplayProperties, DisplayProperty{PropertyID: 6, ValueText: " "})

	req := ToSaveRequest(s)
	assert.Equal(t, int64(42), req.ID)
	assert.Equal(t, []string{"a.png", "b.png"}, req.SliderPicURLs)
	require.Len(t, req.DisplayProperties, 1)
	assert.Equal(t, "Cotton", req.DisplayProperties[0].ValueText)

	require.Len(t, req.Skus, 2)
	assert.Equal(t, int64(12345), req.Skus[0].Price)
	assert.Equal(t, int64(15000), req.Skus[0].MarketPrice)
	assert.Equal(t, int64(8000), req.Skus[0].CostPrice)
	assert.Equal(t, int64(5), req.Skus[0].SubCommissionFirstPrice)
	assert.Equal(t, int64(99), req.Skus[1].Price)
	assert.Equal(t, int64(1001), req.Skus[0].ID)
	assert.Len(t, req.Skus[0].Properties, 2)
}

func TestToSaveRequest_RoundsYuan(t *testing.T) {
	s := New()
	s = mustOK(t)(PatchSKU(s, 0, SKUPatch{Price: decPtr("19.995"), CostPrice: decPtr("0.004")}))
	req := ToSaveRequest(s)
	assert.Equal(t, int64(2000), req.Skus[0].Price)
	assert.Equal(t, int64(0), req.Skus[0].CostPrice)
	assert.Equal(t, []int{}, req.DeliveryTypes)
}
