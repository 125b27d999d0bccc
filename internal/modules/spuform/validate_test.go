package spuform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pehlione.com/catalogadmin/internal/modules/sku"
)

// validMulti is a multi-spec draft that passes every rule.
func validMulti(t *testing.T) State {
	t.Helper()
	s := multiState(t)
	s = pick(t, s, propColor, 11)
	s = pick(t, s, propSize, 21, 22)
	s = mustOK(t)(SetDisplayProperty(s, propMaterial, "Cotton"))
	s = mustOK(t)(PatchFields(s, FieldsPatch{
		Name:               strPtr("Tee"),
		Keyword:            strPtr("tee"),
		Introduction:       strPtr("soft"),
		Description:        strPtr("<p>soft tee</p>"),
		PicURL:             strPtr("cover.png"),
		BrandID:            int64Ptr(3),
		DeliveryTypes:      &[]int{1},
		DeliveryTemplateID: int64Ptr(8),
	}))
	return s
}

func ruleOf(t *testing.T, err error) *ValidationError {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	return ve
}

func TestValidate_Passes(t *testing.T) {
	assert.NoError(t, Validate(validMulti(t)))
}

func TestValidate_NameBeforeCategory(t *testing.T) {
	s := New()
	ve := ruleOf(t, Validate(s))
	assert.Equal(t, 1, ve.Rule)
	assert.Equal(t, SectionInfo, ve.Section)

	s = validMulti(t)
	s.Draft.Name = ""
	s.Draft.CategoryID = 0
	ve = ruleOf(t, Validate(s))
	assert.Equal(t, 1, ve.Rule)
	assert.Equal(t, "Please complete the basic information.", ve.Error())
}

func TestValidate_Rules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(s State) State
		rule    int
		section Section
	}{
		{"missing cover", func(s State) State { s.Draft.PicURL = ""; return s }, 1, SectionInfo},
		{"missing brand", func(s State) State { s.Draft.BrandID = 0; return s }, 2, SectionInfo},
		{"missing category", func(s State) State { s.Draft.CategoryID = 0; return s }, 2, SectionInfo},
		{"blank required display", func(s State) State {
			s.Draft.DisplayProperties = []DisplayProperty{{PropertyID: propMaterial, ValueText: "  "}}
			return s
		}, 3, SectionInfo},
		{"required sales without values", func(s State) State {
			s.Projection = []sku.Property{{ID: propSize, Name: "Size", Values: []sku.Value{{ID: 21, Name: "S"}}}}
			return s
		}, 4, SectionSKU},
		{"no projection", func(s State) State {
			s.Catalog.Sales[0].Required = false
			s.Projection = []sku.Property{}
			return s
		}, 4, SectionSKU},
		{"no skus", func(s State) State { s.Draft.SKUs = nil; return s }, 5, SectionSKU},
		{"no delivery", func(s State) State { s.Draft.DeliveryTypes = nil; return s }, 6, SectionDelivery},
		{"express without template", func(s State) State {
			s.Draft.DeliveryTypes = []int{2, 1}
			s.Draft.DeliveryTemplateID = 0
			return s
		}, 6, SectionDelivery},
		{"sku without combination", func(s State) State {
			s.Draft.SKUs = append(s.Draft.SKUs, sku.Default())
			return s
		}, 7, SectionSKU},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validMulti(t)
			s.Catalog.Sales = append([]Binding{}, s.Catalog.Sales...)
			ve := ruleOf(t, Validate(tc.mutate(s)))
			assert.Equal(t, tc.rule, ve.Rule)
			assert.Equal(t, tc.section, ve.Section)
		})
	}
}

func TestValidate_SingleSpecSkipsSalesRules(t *testing.T) {
	s := validMulti(t)
	s = mustOK(t)(SetSpecType(s, false))
	assert.NoError(t, Validate(s))

	s.Draft.DeliveryTypes = []int{2}
	s.Draft.DeliveryTemplateID = 0
	assert.NoError(t, Validate(s), "pick-up needs no freight template")
}
