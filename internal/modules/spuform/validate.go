package spuform

import (
	"strings"

	"pehlione.com/catalogadmin/internal/backend"
)

// Validate is the submit gate. Rules run in order and the first failure is
// returned; nil means the draft may be sent.
func Validate(s State) error {
	d := s.Draft

	if d.Name == "" || d.Keyword == "" || d.Introduction == "" || d.Description == "" || d.PicURL == "" {
		return fail(1, SectionInfo, "Please complete the basic information.")
	}
	if d.CategoryID == 0 || d.BrandID == 0 {
		return fail(2, SectionInfo, "Please select a category and a brand.")
	}

	texts := make(map[int64]string, len(d.DisplayProperties))
	for _, dp := range d.DisplayProperties {
		texts[dp.PropertyID] = dp.ValueText
	}
	for _, b := range s.Catalog.Display {
		if b.Required && strings.TrimSpace(texts[b.PropertyID]) == "" {
			return fail(3, SectionInfo, "Please fill in the required display properties of the category.")
		}
	}

	if d.SpecType {
		selected := make(map[int64]int, len(s.Projection))
		for _, p := range s.Projection {
			selected[p.ID] = len(p.Values)
		}
		for _, b := range s.Catalog.Sales {
			if b.Required && selected[b.PropertyID] == 0 {
				return fail(4, SectionSKU, "Please select values for the required sales properties.")
			}
		}
		if len(s.Projection) == 0 {
			return fail(4, SectionSKU, "Please select sales property values for a multi-spec product.")
		}
	}

	if len(d.SKUs) == 0 {
		return fail(5, SectionSKU, "Please configure at least one SKU.")
	}

	if len(d.DeliveryTypes) == 0 {
		return fail(6, SectionDelivery, "Please select at least one delivery method.")
	}
	for _, t := range d.DeliveryTypes {
		if t == backend.DeliveryTypeExpress && d.DeliveryTemplateID == 0 {
			return fail(6, SectionDelivery, "A freight template id is required for express delivery.")
		}
	}

	if d.SpecType {
		for _, row := range d.SKUs {
			if len(row.Properties) == 0 {
				return fail(7, SectionSKU, "Every SKU of a multi-spec product needs a property combination.")
			}
		}
	}
	return nil
}

func fail(rule int, sec Section, msg string) *ValidationError {
	return &ValidationError{Rule: rule, Section: sec, Message: msg}
}
