// Package sku derives the SKU set of a multi-spec product from the sales
// attribute values an operator selected, and carries already entered SKU
// data across selection edits.
package sku

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Value is one selected attribute value of a sales property.
type Value struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	PicURL string `json:"picUrl,omitempty"`
}

// Property is a sales property with its selected values in slot order.
type Property struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Values []Value `json:"values"`
}

// Pair binds a property to one of its values inside a SKU.
type Pair struct {
	PropertyID   int64  `json:"propertyId"`
	PropertyName string `json:"propertyName"`
	ValueID      int64  `json:"valueId"`
	ValueName    string `json:"valueName"`
	ValuePicURL  string `json:"valuePicUrl,omitempty"`
}

// Combination is one row of the Cartesian product.
type Combination []Pair

// SKU is the editable draft of one purchasable variant. Money is in major units.
type SKU struct {
	ID                       int64           `json:"id,omitempty"`
	Properties               []Pair          `json:"properties"`
	Price                    decimal.Decimal `json:"price"`
	MarketPrice              decimal.Decimal `json:"marketPrice"`
	CostPrice                decimal.Decimal `json:"costPrice"`
	Stock                    int             `json:"stock"`
	BarCode                  string          `json:"barCode"`
	PicURL                   string          `json:"picUrl"`
	Weight                   float64         `json:"weight"`
	Volume                   float64         `json:"volume"`
	SubCommissionFirstPrice  decimal.Decimal `json:"subCommissionFirstPrice"`
	SubCommissionSecondPrice decimal.Decimal `json:"subCommissionSecondPrice"`
}

// Default returns a zeroed SKU with no properties.
func Default() SKU {
	return SKU{
		Properties:               []Pair{},
		Price:                    decimal.Zero,
		MarketPrice:              decimal.Zero,
		CostPrice:                decimal.Zero,
		SubCommissionFirstPrice:  decimal.Zero,
		SubCommissionSecondPrice: decimal.Zero,
	}
}

// Key is the identity of a SKU: its value ids in ascending numeric order,
// joined by "_". Property order does not matter. Single-spec SKUs map to "".
func Key(pairs []Pair) string {
	if len(pairs) == 0 {
		return ""
	}
	ids := make([]int64, 0, len(pairs))
	for _, p := range pairs {
		ids = append(ids, p.ValueID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteString(strconv.FormatInt(id, 10))
	}
	return b.String()
}
