package spuform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pehlione.com/catalogadmin/internal/modules/sku"
)

func TestSetSpecType_MultiToSingleCollapses(t *testing.T) {
	s := multiState(t)
	s = pick(t, s, propColor, 11, 12)
	s = mustOK(t)(PatchSKU(s, 0, SKUPatch{Price: decPtr("9.90")}))

	s = mustOK(t)(SetSpecType(s, false))
	require.Len(t, s.Draft.SKUs, 1)
	assert.Empty(t, s.Draft.SKUs[0].Properties)
	assert.True(t, s.Draft.SKUs[0].Price.Equal(decimal.RequireFromString("9.9")))
	assert.Empty(t, s.Projection)
	assert.Empty(t, s.Slots[propColor])
}

func TestSetSpecType_MultiToSingleWithoutSKUs(t *testing.T) {
	s := mustOK(t)(SetSpecType(multiState(t), false))
	require.Len(t, s.Draft.SKUs, 1)
	assert.Equal(t, "", sku.Key(s.Draft.SKUs[0].Properties))
}

func TestSetSpecType_SingleToMultiClearsSKUs(t *testing.T) {
	s := New()
	s = mustOK(t)(PatchSKU(s, 0, SKUPatch{Stock: intPtr(3)}))
	s = mustOK(t)(SetSpecType(s, true))
	assert.Empty(t, s.Draft.SKUs)
	assert.True(t, s.Draft.SpecType)
}

func TestSetSpecType_NoChange(t *testing.T) {
	s := New()
	got := mustOK(t)(SetSpecType(s, false))
	assert.Equal(t, s, got)
}

func TestChangeCategory_ResetsSelection(t *testing.T) {
	s := multiState(t)
	s = pick(t, s, propColor, 11)
	s = mustOK(t)(SetDisplayProperty(s, propMaterial, "Cotton"))

	other := Catalog{Sales: []Binding{{PropertyID: 3, PropertyName: "Capacity", Enabled: true}}}
	s = mustOK(t)(ChangeCategory(s, 10, other))

	assert.Equal(t, int64(10), s.Draft.CategoryID)
	assert.Empty(t, s.Draft.DisplayProperties)
	assert.Empty(t, s.Draft.SKUs)
	assert.Empty(t, s.Projection)
	assert.Equal(t, map[int64][]Slot{3: {}}, s.Slots)
}

func TestPatchAndDeleteSKU(t *testing.T) {
	s := multiState(t)
	s = pick(t, s, propColor, 11, 12)

	s = mustOK(t)(PatchSKU(s, 1, SKUPatch{BarCode: strPtr("690"), Weight: floatPtr(1.5)}))
	assert.Equal(t, "690", s.Draft.SKUs[1].BarCode)
	assert.Equal(t, 1.5, s.Draft.SKUs[1].Weight)
	assert.Equal(t, "", s.Draft.SKUs[0].BarCode)

	_, err := PatchSKU(s, 5, SKUPatch{})
	assert.ErrorIs(t, err, ErrSKUNotFound)

	d := mustOK(t)(DeleteSKU(s, 0))
	assert.Equal(t, []string{"12"}, keys(d.Draft.SKUs))
	assert.Len(t, s.Draft.SKUs, 2)
}

func TestApplyBatch_KeepsIdentity(t *testing.T) {
	s := multiState(t)
	s = pick(t, s, propColor, 11, 12)
	s.Draft.SKUs[0].ID = 501

	tpl := sku.Default()
	tpl.ID = 999
	tpl.Price = decimal.RequireFromString("19.99")
	tpl.Stock = 7
	tpl.PicURL = "batch.png"

	s = mustOK(t)(ApplyBatch(s, tpl))
	assert.Equal(t, []string{"11", "12"}, keys(s.Draft.SKUs))
	assert.Equal(t, int64(501), s.Draft.SKUs[0].ID)
	assert.Equal(t, int64(0), s.Draft.SKUs[1].ID)
	for _, row := range s.Draft.SKUs {
		assert.True(t, row.Price.Equal(tpl.Price))
		assert.Equal(t, 7, row.Stock)
		assert.Equal(t, "batch.png", row.PicURL)
	}
}

func TestSetDisplayProperty(t *testing.T) {
	s := multiState(t)

	s = mustOK(t)(SetDisplayProperty(s, propMaterial, "Cotton"))
	require.Len(t, s.Draft.DisplayProperties, 1)
	assert.Equal(t, DisplayProperty{PropertyID: propMaterial, PropertyName: "Material", ValueText: "Cotton", Sort: 10}, s.Draft.DisplayProperties[0])

	s = mustOK(t)(SetDisplayProperty(s, propMaterial, "Linen"))
	require.Len(t, s.Draft.DisplayProperties, 1)
	assert.Equal(t, "Linen", s.Draft.DisplayProperties[0].ValueText)

	s = mustOK(t)(SetDisplayProperty(s, propMaterial, "   "))
	assert.Empty(t, s.Draft.DisplayProperties)

	_, err := SetDisplayProperty(s, propColor, "x")
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

func TestPatchFields(t *testing.T) {
	s := New()
	s = mustOK(t)(PatchFields(s, FieldsPatch{
		Name:          strPtr("Tee"),
		BrandID:       int64Ptr(4),
		DeliveryTypes: &[]int{1, 2},
		RecommendNew:  boolPtr(true),
	}))
	assert.Equal(t, "Tee", s.Draft.Name)
	assert.Equal(t, int64(4), s.Draft.BrandID)
	assert.Equal(t, []int{1, 2}, s.Draft.DeliveryTypes)
	assert.True(t, s.Draft.RecommendNew)
	assert.Equal(t, "", s.Draft.Keyword)
}

func TestReadOnlyRejectsEveryTransition(t *testing.T) {
	s := multiState(t)
	s = pick(t, s, propColor, 11)
	s.ReadOnly = true

	actions := []Action{
		{Type: ActionAddSlot, PropertyID: propColor},
		{Type: ActionRemoveSlot, PropertyID: propColor},
		{Type: ActionSetSlotValue, PropertyID: propColor, ValueID: 12},
		{Type: ActionSetSlotImage, PropertyID: propColor, PicURL: "x"},
		{Type: ActionSetSpecType, Multi: false},
		{Type: ActionPatchSKU, SKU: &SKUPatch{}},
		{Type: ActionDeleteSKU},
		{Type: ActionApplyBatch, Template: &sku.SKU{}},
		{Type: ActionSetDisplayProperty, PropertyID: propMaterial, Text: "x"},
		{Type: ActionPatchFields, Fields: &FieldsPatch{}},
	}
	for _, a := range actions {
		got, err := Apply(s, a)
		assert.ErrorIs(t, err, ErrReadOnly, a.Type)
		assert.Equal(t, s, got, a.Type)
	}

	_, err := ChangeCategory(s, 1, Catalog{})
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestApply_Dispatch(t *testing.T) {
	s := multiState(t)
	s = mustOK(t)(Apply(s, Action{Type: ActionAddSlot, PropertyID: propColor}))
	s = mustOK(t)(Apply(s, Action{Type: ActionSetSlotValue, PropertyID: propColor, Index: 0, ValueID: 12}))
	assert.Equal(t, []string{"12"}, keys(s.Draft.SKUs))

	_, err := Apply(s, Action{Type: "explode"})
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = Apply(s, Action{Type: ActionPatchSKU})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func strPtr(v string) *string     { return &v }
func int64Ptr(v int64) *int64     { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }
