package view

import (
	"math"
	"sort"
	"strings"

	"pehlione.com/catalogadmin/internal/modules/sku"
	"pehlione.com/catalogadmin/internal/modules/spuform"
)

// SKURow is one line of the SKU grid. SourceIndex is the SKU's position in
// the draft, which is what sku actions address.
type SKURow struct {
	SourceIndex int      `json:"sourceIndex"`
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	ValueNames  []string `json:"valueNames"`
	DisplayPic  string   `json:"displayPic"`
	Price       string   `json:"price"`
	MarketPrice string   `json:"marketPrice"`
	CostPrice   string   `json:"costPrice"`
	Stock       int      `json:"stock"`
	BarCode     string   `json:"barCode"`
	Weight      float64  `json:"weight"`
	Volume      float64  `json:"volume"`
}

// DraftPage is what GET /api/drafts/:id returns.
type DraftPage struct {
	DraftID string        `json:"draftId"`
	State   spuform.State `json:"state"`
	Rows    []SKURow      `json:"rows"`
	ColorID int64         `json:"colorPropertyId,omitempty"`
}

func NewDraftPage(draftID string, st spuform.State) DraftPage {
	color := ColorPropertyID(st)
	return DraftPage{
		DraftID: draftID,
		State:   st,
		Rows:    SKURows(st),
		ColorID: color,
	}
}

// ColorPropertyID picks the property the grid groups by: the first sales
// binding that supports value images, else the first selected property whose
// name looks like a colour. 0 means none.
func ColorPropertyID(st spuform.State) int64 {
	for _, b := range st.Catalog.Sales {
		if b.SupportValueImage {
			return b.PropertyID
		}
	}
	for _, p := range st.Projection {
		n := strings.ToLower(p.Name)
		if strings.Contains(n, "色") || strings.Contains(n, "color") || strings.Contains(n, "colour") {
			return p.ID
		}
	}
	return 0
}

// SKURows orders the draft's SKUs by colour value id, then by draft position.
// Single-spec drafts and drafts without a colour property keep draft order.
func SKURows(st spuform.State) []SKURow {
	rows := make([]SKURow, 0, len(st.Draft.SKUs))
	for i, s := range st.Draft.SKUs {
		rows = append(rows, newSKURow(i, s, st.Draft.PicURL))
	}

	color := ColorPropertyID(st)
	if !st.Draft.SpecType || color == 0 {
		return rows
	}

	colorOf := func(r SKURow) int64 {
		for _, p := range st.Draft.SKUs[r.SourceIndex].Properties {
			if p.PropertyID == color {
				return p.ValueID
			}
		}
		return math.MaxInt64
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ci, cj := colorOf(rows[i]), colorOf(rows[j])
		if ci != cj {
			return ci < cj
		}
		return rows[i].SourceIndex < rows[j].SourceIndex
	})
	return rows
}

func newSKURow(i int, s sku.SKU, cover string) SKURow {
	names := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		names = append(names, p.ValueName)
	}
	return SKURow{
		SourceIndex: i,
		Key:         sku.Key(s.Properties),
		Label:       strings.Join(names, " / "),
		ValueNames:  names,
		DisplayPic:  DisplayPic(s, cover),
		Price:       Yuan(s.Price),
		MarketPrice: Yuan(s.MarketPrice),
		CostPrice:   Yuan(s.CostPrice),
		Stock:       s.Stock,
		BarCode:     s.BarCode,
		Weight:      s.Weight,
		Volume:      s.Volume,
	}
}

// DisplayPic resolves the picture shown for a SKU: its own picture, then the
// first value picture, then the SPU cover.
func DisplayPic(s sku.SKU, cover string) string {
	if strings.TrimSpace(s.PicURL) != "" {
		return s.PicURL
	}
	for _, p := range s.Properties {
		if strings.TrimSpace(p.ValuePicURL) != "" {
			return p.ValuePicURL
		}
	}
	return cover
}
