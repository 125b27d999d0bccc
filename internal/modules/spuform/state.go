// Package spuform holds the SPU edit form as an explicit state machine.
//
// Every edit is a pure transition State -> State. Slot edits run the same
// synchronous pipeline: rebuild the selection projection, recompute the
// Cartesian product, merge it against the current SKUs.
package spuform

import (
	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/modules/sku"
)

// Binding is a property as bound to the draft's category.
type Binding struct {
	PropertyID         int64  `json:"propertyId"`
	PropertyName       string `json:"propertyName"`
	Kind               int    `json:"kind"`
	Enabled            bool   `json:"enabled"`
	Required           bool   `json:"required"`
	SupportValueImage  bool   `json:"supportValueImage"`
	ValueImageRequired bool   `json:"valueImageRequired"`
	Sort               int    `json:"sort"`
}

type ValueOption struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	PicURL string `json:"picUrl,omitempty"`
}

// Catalog is everything the form knows about the selected category.
type Catalog struct {
	Sales   []Binding               `json:"sales"`
	Display []Binding               `json:"display"`
	Values  map[int64][]ValueOption `json:"values"`
}

// Slot is one value picker of a sales property. ValueID 0 means empty.
type Slot struct {
	ValueID   int64  `json:"valueId"`
	ValueName string `json:"valueName"`
	PicURL    string `json:"picUrl"`
}

type DisplayProperty struct {
	PropertyID   int64  `json:"propertyId"`
	PropertyName string `json:"propertyName"`
	ValueText    string `json:"valueText"`
	Sort         int    `json:"sort"`
}

// Draft is the SPU being edited. SKU money is in major units.
type Draft struct {
	ID                    int64             `json:"id,omitempty"`
	Name                  string            `json:"name"`
	Keyword               string            `json:"keyword"`
	Introduction          string            `json:"introduction"`
	Description           string            `json:"description"`
	BarCode               string            `json:"barCode"`
	CategoryID            int64             `json:"categoryId"`
	BrandID               int64             `json:"brandId"`
	PicURL                string            `json:"picUrl"`
	SliderPicURLs         []string          `json:"sliderPicUrls"`
	VideoURL              string            `json:"videoUrl"`
	Sort                  int               `json:"sort"`
	SpecType              bool              `json:"specType"`
	DeliveryTypes         []int             `json:"deliveryTypes"`
	DeliveryTemplateID    int64             `json:"deliveryTemplateId"`
	RecommendHot          bool              `json:"recommendHot"`
	RecommendBenefit      bool              `json:"recommendBenefit"`
	RecommendBest         bool              `json:"recommendBest"`
	RecommendNew          bool              `json:"recommendNew"`
	RecommendGood         bool              `json:"recommendGood"`
	GiveIntegral          int               `json:"giveIntegral"`
	GiveCouponTemplateIDs string            `json:"giveCouponTemplateIds"`
	SubCommissionType     bool              `json:"subCommissionType"`
	ActivityOrders        string            `json:"activityOrders"`
	DisplayProperties     []DisplayProperty `json:"displayProperties"`
	SKUs                  []sku.SKU         `json:"skus"`
}

type State struct {
	Draft   Draft   `json:"draft"`
	Catalog Catalog `json:"catalog"`
	// Slots is keyed by sales property id, in slot order.
	Slots map[int64][]Slot `json:"slots"`
	// Projection is derived from Slots; never edit it directly.
	Projection []sku.Property `json:"projection"`
	ReadOnly   bool           `json:"readOnly"`
}

// New returns the state of a blank "create" form: single spec, one zero SKU.
func New() State {
	return State{
		Draft: Draft{
			SliderPicURLs:     []string{},
			DeliveryTypes:     []int{},
			DisplayProperties: []DisplayProperty{},
			SKUs:              []sku.SKU{sku.Default()},
		},
		Catalog:    Catalog{Values: map[int64][]ValueOption{}},
		Slots:      map[int64][]Slot{},
		Projection: []sku.Property{},
	}
}

// NewCatalog keeps enabled bindings only, in backend order.
func NewCatalog(sales, display []backend.CategoryProperty, values map[int64][]backend.PropertyValue) Catalog {
	c := Catalog{Sales: []Binding{}, Display: []Binding{}, Values: map[int64][]ValueOption{}}
	for _, b := range sales {
		if b.Enabled {
			c.Sales = append(c.Sales, bindingFrom(b, backend.PropertyTypeSales))
		}
	}
	for _, b := range display {
		if b.Enabled {
			c.Display = append(c.Display, bindingFrom(b, backend.PropertyTypeDisplay))
		}
	}
	for pid, vs := range values {
		opts := make([]ValueOption, 0, len(vs))
		for _, v := range vs {
			opts = append(opts, ValueOption{ID: v.ID, Name: v.Name, PicURL: v.PicURL})
		}
		c.Values[pid] = opts
	}
	return c
}

func bindingFrom(b backend.CategoryProperty, kind int) Binding {
	return Binding{
		PropertyID:         b.PropertyID,
		PropertyName:       b.PropertyName,
		Kind:               kind,
		Enabled:            b.Enabled,
		Required:           b.Required,
		SupportValueImage:  b.SupportValueImage,
		ValueImageRequired: b.ValueImageRequired,
		Sort:               b.Sort,
	}
}

func (c Catalog) sales(propertyID int64) (Binding, bool) {
	for _, b := range c.Sales {
		if b.PropertyID == propertyID {
			return b, true
		}
	}
	return Binding{}, false
}

func (c Catalog) display(propertyID int64) (Binding, bool) {
	for _, b := range c.Display {
		if b.PropertyID == propertyID {
			return b, true
		}
	}
	return Binding{}, false
}

func (c Catalog) option(propertyID, valueID int64) (ValueOption, bool) {
	for _, o := range c.Values[propertyID] {
		if o.ID == valueID {
			return o, true
		}
	}
	return ValueOption{}, false
}

// --- copy on write ---

func cloneSlots(in map[int64][]Slot) map[int64][]Slot {
	out := make(map[int64][]Slot, len(in))
	for k, v := range in {
		out[k] = append([]Slot(nil), v...)
	}
	return out
}

func cloneDraft(d Draft) Draft {
	d.SliderPicURLs = append([]string{}, d.SliderPicURLs...)
	d.DeliveryTypes = append([]int{}, d.DeliveryTypes...)
	d.DisplayProperties = append([]DisplayProperty{}, d.DisplayProperties...)
	d.SKUs = append([]sku.SKU{}, d.SKUs...)
	return d
}

func (s State) clone() State {
	s.Draft = cloneDraft(s.Draft)
	s.Slots = cloneSlots(s.Slots)
	s.Projection = append([]sku.Property{}, s.Projection...)
	return s
}
