package spuform

import (
	"strings"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/modules/sku"
	"pehlione.com/catalogadmin/internal/shared/money"
)

// Hydrate builds the form state of an existing SPU. Money comes in fen and
// is held in yuan. Slots are rebuilt from the SKU pairs; when the category
// has sales bindings the selection is restricted to them and resynced.
func Hydrate(detail backend.Spu, c Catalog, readOnly bool) State {
	skus := make([]sku.SKU, 0, len(detail.Skus))
	for _, in := range detail.Skus {
		skus = append(skus, skuFromBackend(in))
	}
	if len(skus) == 0 {
		skus = append(skus, sku.Default())
	}

	display := make([]DisplayProperty, 0, len(detail.DisplayProperties))
	for _, dp := range detail.DisplayProperties {
		display = append(display, DisplayProperty{
			PropertyID:   dp.PropertyID,
			PropertyName: dp.PropertyName,
			ValueText:    dp.ValueText,
			Sort:         dp.Sort,
		})
	}

	s := State{
		Draft: Draft{
			ID:                    detail.ID,
			Name:                  detail.Name,
			Keyword:               detail.Keyword,
			Introduction:          detail.Introduction,
			Description:           detail.Description,
			BarCode:               detail.BarCode,
			CategoryID:            detail.CategoryID,
			BrandID:               detail.BrandID,
			PicURL:                detail.PicURL,
			SliderPicURLs:         append([]string{}, detail.SliderPicURLs...),
			VideoURL:              detail.VideoURL,
			Sort:                  detail.Sort,
			SpecType:              detail.SpecType,
			DeliveryTypes:         append([]int{}, detail.DeliveryTypes...),
			DeliveryTemplateID:    detail.DeliveryTemplateID,
			RecommendHot:          detail.RecommendHot,
			RecommendBenefit:      detail.RecommendBenefit,
			RecommendBest:         detail.RecommendBest,
			RecommendNew:          detail.RecommendNew,
			RecommendGood:         detail.RecommendGood,
			GiveIntegral:          detail.GiveIntegral,
			GiveCouponTemplateIDs: detail.GiveCouponTemplateIDs,
			SubCommissionType:     detail.SubCommissionType,
			ActivityOrders:        detail.ActivityOrders,
			DisplayProperties:     display,
			SKUs:                  skus,
		},
		Catalog:  c,
		ReadOnly: readOnly,
	}
	if s.Catalog.Values == nil {
		s.Catalog.Values = map[int64][]ValueOption{}
	}

	s.Projection = sku.PropertiesFromSKUs(skus)
	if s.Projection == nil {
		s.Projection = []sku.Property{}
	}
	s.Slots = slotsFromProjection(s.Projection)

	if len(c.Sales) > 0 {
		s.Slots = restrictSlots(c, s.Slots)
		s = resync(s)
	}
	return s
}

// ToSaveRequest converts the draft into the create/update payload: yuan back
// to fen, empty slider pictures and blank display values dropped.
func ToSaveRequest(s State) backend.SpuSaveReq {
	d := s.Draft

	sliders := make([]string, 0, len(d.SliderPicURLs))
	for _, u := range d.SliderPicURLs {
		if u != "" {
			sliders = append(sliders, u)
		}
	}
	display := make([]backend.SpuDisplayProperty, 0, len(d.DisplayProperties))
	for _, dp := range d.DisplayProperties {
		if strings.TrimSpace(dp.ValueText) == "" {
			continue
		}
		display = append(display, backend.SpuDisplayProperty{
			PropertyID:   dp.PropertyID,
			PropertyName: dp.PropertyName,
			ValueText:    dp.ValueText,
			Sort:         dp.Sort,
		})
	}
	skus := make([]backend.Sku, 0, len(d.SKUs))
	for _, row := range d.SKUs {
		skus = append(skus, skuToBackend(row))
	}
	deliveryTypes := d.DeliveryTypes
	if deliveryTypes == nil {
		deliveryTypes = []int{}
	}

	return backend.SpuSaveReq{
		ID:                    d.ID,
		Name:                  d.Name,
		Keyword:               d.Keyword,
		Introduction:          d.Introduction,
		Description:           d.Description,
		BarCode:               d.BarCode,
		CategoryID:            d.CategoryID,
		BrandID:               d.BrandID,
		PicURL:                d.PicURL,
		SliderPicURLs:         sliders,
		VideoURL:              d.VideoURL,
		Sort:                  d.Sort,
		SpecType:              d.SpecType,
		DeliveryTypes:         deliveryTypes,
		DeliveryTemplateID:    d.DeliveryTemplateID,
		RecommendHot:          d.RecommendHot,
		RecommendBenefit:      d.RecommendBenefit,
		RecommendBest:         d.RecommendBest,
		RecommendNew:          d.RecommendNew,
		RecommendGood:         d.RecommendGood,
		GiveIntegral:          d.GiveIntegral,
		GiveCouponTemplateIDs: d.GiveCouponTemplateIDs,
		SubCommissionType:     d.SubCommissionType,
		ActivityOrders:        d.ActivityOrders,
		DisplayProperties:     display,
		Skus:                  skus,
	}
}

func skuFromBackend(in backend.Sku) sku.SKU {
	pairs := make([]sku.Pair, 0, len(in.Properties))
	for _, p := range in.Properties {
		pairs = append(pairs, sku.Pair{
			PropertyID:   p.PropertyID,
			PropertyName: p.PropertyName,
			ValueID:      p.ValueID,
			ValueName:    p.ValueName,
			ValuePicURL:  p.ValuePicURL,
		})
	}
	return sku.SKU{
		ID:                       in.ID,
		Properties:               pairs,
		Price:                    money.FenToYuan(in.Price),
		MarketPrice:              money.FenToYuan(in.MarketPrice),
		CostPrice:                money.FenToYuan(in.CostPrice),
		Stock:                    in.Stock,
		BarCode:                  in.BarCode,
		PicURL:                   in.PicURL,
		Weight:                   in.Weight,
		Volume:                   in.Volume,
		SubCommissionFirstPrice:  money.FenToYuan(in.SubCommissionFirstPrice),
		SubCommissionSecondPrice: money.FenToYuan(in.SubCommissionSecondPrice),
	}
}

func skuToBackend(in sku.SKU) backend.Sku {
	props := make([]backend.SkuProperty, 0, len(in.Properties))
	for _, p := range in.Properties {
		props = append(props, backend.SkuProperty{
			PropertyID:   p.PropertyID,
			PropertyName: p.PropertyName,
			ValueID:      p.ValueID,
			ValueName:    p.ValueName,
			ValuePicURL:  p.ValuePicURL,
		})
	}
	return backend.Sku{
		ID:                       in.ID,
		Properties:               props,
		Price:                    money.YuanToFen(in.Price),
		MarketPrice:              money.YuanToFen(in.MarketPrice),
		CostPrice:                money.YuanToFen(in.CostPrice),
		BarCode:                  in.BarCode,
		PicURL:                   in.PicURL,
		Stock:                    in.Stock,
		Weight:                   in.Weight,
		Volume:                   in.Volume,
		SubCommissionFirstPrice:  money.YuanToFen(in.SubCommissionFirstPrice),
		SubCommissionSecondPrice: money.YuanToFen(in.SubCommissionSecondPrice),
	}
}
