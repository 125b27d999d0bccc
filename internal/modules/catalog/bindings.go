package catalog

import (
	"sort"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/shared/apperr"
)

// BindingRow is one property in the binding editor of a category. Selected
// means the property is bound.
type BindingRow struct {
	PropertyID         int64  `json:"propertyId"`
	PropertyName       string `json:"propertyName"`
	PropertyType       int    `json:"propertyType"`
	Selected           bool   `json:"selected"`
	Enabled            bool   `json:"enabled"`
	Required           bool   `json:"required"`
	SupportValueImage  bool   `json:"supportValueImage"`
	ValueImageRequired bool   `json:"valueImageRequired"`
	Sort               int    `json:"sort"`
}

type BindingRows struct {
	Display []BindingRow `json:"display"`
	Sales   []BindingRow `json:"sales"`
}

// MergeBindingRows lists every property of one kind with its binding, if any.
// Unbound rows default to enabled, not required, sort (index+1)*10. Rows are
// ordered by sort, then property id.
func MergeBindingRows(all []backend.Property, bound []backend.CategoryProperty, propertyType int) []BindingRow {
	byID := make(map[int64]backend.CategoryProperty, len(bound))
	for _, b := range bound {
		byID[b.PropertyID] = b
	}

	rows := make([]BindingRow, 0, len(all))
	for i, p := range all {
		row := BindingRow{
			PropertyID:   p.ID,
			PropertyName: p.Name,
			PropertyType: propertyType,
			Enabled:      true,
			Sort:         (i + 1) * 10,
		}
		if b, ok := byID[p.ID]; ok {
			row.Selected = true
			row.Enabled = b.Enabled
			row.Required = b.Required
			row.SupportValueImage = b.SupportValueImage
			row.ValueImageRequired = b.ValueImageRequired
			row.Sort = b.Sort
		}
		rows = append(rows, row)
	}
	sortRows(rows)
	return rows
}

func sortRows(rows []BindingRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Sort != rows[j].Sort {
			return rows[i].Sort < rows[j].Sort
		}
		return rows[i].PropertyID < rows[j].PropertyID
	})
}

// BindingSaveRequest builds the save-batch payload from the selected rows of
// both kinds.
func BindingSaveRequest(categoryID int64, rows []BindingRow) (backend.CategoryPropertySaveReq, error) {
	if categoryID == 0 {
		return backend.CategoryPropertySaveReq{}, apperr.InvalidErr("Please select a product category first.",
			map[string]string{"categoryId": "required"})
	}
	selected := make([]BindingRow, 0, len(rows))
	for _, r := range rows {
		if r.Selected {
			selected = append(selected, r)
		}
	}
	if len(selected) == 0 {
		return backend.CategoryPropertySaveReq{}, apperr.InvalidErr("Please select at least one property to bind.", nil)
	}
	for _, r := range selected {
		if r.Sort < 0 {
			return backend.CategoryPropertySaveReq{}, apperr.InvalidErr("Sort must be an integer greater than or equal to 0.",
				map[string]string{"sort": "min"})
		}
	}

	sortRows(selected)
	items := make([]backend.CategoryPropertyItem, 0, len(selected))
	for _, r := range selected {
		items = append(items, backend.CategoryPropertyItem{
			PropertyID:         r.PropertyID,
			Enabled:            r.Enabled,
			Required:           r.Required,
			SupportValueImage:  r.SupportValueImage,
			ValueImageRequired: r.ValueImageRequired,
			Sort:               r.Sort,
		})
	}
	return backend.CategoryPropertySaveReq{CategoryID: categoryID, Items: items}, nil
}
