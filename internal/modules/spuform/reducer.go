package spuform

import (
	"strings"

	"github.com/shopspring/decimal"

	"pehlione.com/catalogadmin/internal/modules/sku"
)

// SetSpecType switches between single and multi spec.
//
// multi -> single keeps the first SKU (or a zero one) without properties and
// drops the whole selection. single -> multi empties the SKU list until
// values are picked.
func SetSpecType(s State, multi bool) (State, error) {
	if s.ReadOnly {
		return s, ErrReadOnly
	}
	if s.Draft.SpecType == multi {
		return s, nil
	}
	next := s.clone()
	next.Draft.SpecType = multi

	if !multi {
		first := sku.Default()
		if len(next.Draft.SKUs) > 0 {
			first = next.Draft.SKUs[0]
		}
		first.Properties = []sku.Pair{}
		next.Draft.SKUs = []sku.SKU{first}
		next.Slots = restrictSlots(next.Catalog, nil)
		next.Projection = []sku.Property{}
		return next, nil
	}

	next.Draft.SKUs = []sku.SKU{}
	return resync(next), nil
}

// ChangeCategory installs the catalog of another category. Display values
// and the sales selection belong to the old category and are reset.
func ChangeCategory(s State, categoryID int64, c Catalog) (State, error) {
	if s.ReadOnly {
		return s, ErrReadOnly
	}
	next := s.clone()
	next.Draft.CategoryID = categoryID
	next.Draft.DisplayProperties = []DisplayProperty{}
	next.Catalog = c
	next.Slots = restrictSlots(c, nil)
	return resync(next), nil
}

// SKUPatch carries the editable SKU fields; nil leaves a field as is.
type SKUPatch struct {
	Price                    *decimal.Decimal `json:"price,omitempty"`
	MarketPrice              *decimal.Decimal `json:"marketPrice,omitempty"`
	CostPrice                *decimal.Decimal `json:"costPrice,omitempty"`
	Stock                    *int             `json:"stock,omitempty" binding:"omitempty,min=0"`
	BarCode                  *string          `json:"barCode,omitempty"`
	PicURL                   *string          `json:"picUrl,omitempty"`
	Weight                   *float64         `json:"weight,omitempty"`
	Volume                   *float64         `json:"volume,omitempty"`
	SubCommissionFirstPrice  *decimal.Decimal `json:"subCommissionFirstPrice,omitempty"`
	SubCommissionSecondPrice *decimal.Decimal `json:"subCommissionSecondPrice,omitempty"`
}

func (p SKUPatch) apply(in sku.SKU) sku.SKU {
	if p.Price != nil {
		in.Price = *p.Price
	}
	if p.MarketPrice != nil {
		in.MarketPrice = *p.MarketPrice
	}
	if p.CostPrice != nil {
		in.CostPrice = *p.CostPrice
	}
	if p.Stock != nil {
		in.Stock = *p.Stock
	}
	if p.BarCode != nil {
		in.BarCode = *p.BarCode
	}
	if p.PicURL != nil {
		in.PicURL = *p.PicURL
	}
	if p.Weight != nil {
		in.Weight = *p.Weight
	}
	if p.Volume != nil {
		in.Volume = *p.Volume
	}
	if p.SubCommissionFirstPrice != nil {
		in.SubCommissionFirstPrice = *p.SubCommissionFirstPrice
	}
	if p.SubCommissionSecondPrice != nil {
		in.SubCommissionSecondPrice = *p.SubCommissionSecondPrice
	}
	return in
}

func PatchSKU(s State, index int, p SKUPatch) (State, error) {
	if s.ReadOnly {
		return s, ErrReadOnly
	}
	if index < 0 || index >= len(s.Draft.SKUs) {
		return s, ErrSKUNotFound
	}
	next := s.clone()
	next.Draft.SKUs[index] = p.apply(next.Draft.SKUs[index])
	return next, nil
}

// DeleteSKU removes one row. The next slot edit regenerates it if its
// combination is still selected.
func DeleteSKU(s State, index int) (State, error) {
	if s.ReadOnly {
		return s, ErrReadOnly
	}
	if index < 0 || index >= len(s.Draft.SKUs) {
		return s, ErrSKUNotFound
	}
	next := s.clone()
	skus := next.Draft.SKUs
	next.Draft.SKUs = append(skus[:index:index], skus[index+1:]...)
	return next, nil
}

// ApplyBatch copies every editable field of tpl onto all SKUs. Ids and
// properties are kept.
func ApplyBatch(s State, tpl sku.SKU) (State, error) {
	if s.ReadOnly {
		return s, ErrReadOnly
	}
	next := s.clone()
	for i, cur := range next.Draft.SKUs {
		row := tpl
		row.ID = cur.ID
		row.Properties = cur.Properties
		next.Draft.SKUs[i] = row
	}
	return next, nil
}

// SetDisplayProperty stores the free text of a display property. Blank text
// removes the entry.
func SetDisplayProperty(s State, propertyID int64, text string) (State, error) {
	if s.ReadOnly {
		return s, ErrReadOnly
	}
	b, ok := s.Catalog.display(propertyID)
	if !ok {
		return s, ErrUnknownProperty
	}
	next := s.clone()
	list := next.Draft.DisplayProperties
	at := -1
	for i, dp := range list {
		if dp.PropertyID == propertyID {
			at = i
			break
		}
	}

	if strings.TrimSpace(text) == "" {
		if at >= 0 {
			next.Draft.DisplayProperties = append(list[:at:at], list[at+1:]...)
		}
		return next, nil
	}

	item := DisplayProperty{PropertyID: propertyID, PropertyName: b.PropertyName, ValueText: text, Sort: b.Sort}
	if at >= 0 {
		list[at] = item
	} else {
		next.Draft.DisplayProperties = append(list, item)
	}
	return next, nil
}

// FieldsPatch covers the plain SPU fields. Category, spec type, display
// properties and SKUs have their own transitions.
type FieldsPatch struct {
	Name                  *string   `json:"name,omitempty"`
	Keyword               *string   `json:"keyword,omitempty"`
	Introduction          *string   `json:"introduction,omitempty"`
	Description           *string   `json:"description,omitempty"`
	BarCode               *string   `json:"barCode,omitempty"`
	BrandID               *int64    `json:"brandId,omitempty"`
	PicURL                *string   `json:"picUrl,omitempty"`
	SliderPicURLs         *[]string `json:"sliderPicUrls,omitempty"`
	VideoURL              *string   `json:"videoUrl,omitempty"`
	Sort                  *int      `json:"sort,omitempty"`
	DeliveryTypes         *[]int    `json:"deliveryTypes,omitempty"`
	DeliveryTemplateID    *int64    `json:"deliveryTemplateId,omitempty"`
	RecommendHot          *bool     `json:"recommendHot,omitempty"`
	RecommendBenefit      *bool     `json:"recommendBenefit,omitempty"`
	RecommendBest         *bool     `json:"recommendBest,omitempty"`
	RecommendNew          *bool     `json:"recommendNew,omitempty"`
	RecommendGood         *bool     `json:"recommendGood,omitempty"`
	GiveIntegral          *int      `json:"giveIntegral,omitempty"`
	GiveCouponTemplateIDs *string   `json:"giveCouponTemplateIds,omitempty"`
	SubCommissionType     *bool     `json:"subCommissionType,omitempty"`
	ActivityOrders        *string   `json:"activityOrders,omitempty"`
}

func PatchFields(s State, p FieldsPatch) (State, error) {
	if s.ReadOnly {
		return s, ErrReadOnly
	}
	next := s.clone()
	d := &next.Draft
	setStr(&d.Name, p.Name)
	setStr(&d.Keyword, p.Keyword)
	setStr(&d.Introduction, p.Introduction)
	setStr(&d.Description, p.Description)
	setStr(&d.BarCode, p.BarCode)
	setStr(&d.PicURL, p.PicURL)
	setStr(&d.VideoURL, p.VideoURL)
	setStr(&d.GiveCouponTemplateIDs, p.GiveCouponTemplateIDs)
	setStr(&d.ActivityOrders, p.ActivityOrders)
	if p.BrandID != nil {
		d.BrandID = *p.BrandID
	}
	if p.SliderPicURLs != nil {
		d.SliderPicURLs = append([]string{}, (*p.SliderPicURLs)...)
	}
	if p.Sort != nil {
		d.Sort = *p.Sort
	}
	if p.DeliveryTypes != nil {
		d.DeliveryTypes = append([]int{}, (*p.DeliveryTypes)...)
	}
	if p.DeliveryTemplateID != nil {
		d.DeliveryTemplateID = *p.DeliveryTemplateID
	}
	setBool(&d.RecommendHot, p.RecommendHot)
	setBool(&d.RecommendBenefit, p.RecommendBenefit)
	setBool(&d.RecommendBest, p.RecommendBest)
	setBool(&d.RecommendNew, p.RecommendNew)
	setBool(&d.RecommendGood, p.RecommendGood)
	setBool(&d.SubCommissionType, p.SubCommissionType)
	if p.GiveIntegral != nil {
		d.GiveIntegral = *p.GiveIntegral
	}
	return next, nil
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
