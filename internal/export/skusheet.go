// Package export writes the SKU grid of a draft as an xlsx workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"pehlione.com/catalogadmin/internal/modules/sku"
	"pehlione.com/catalogadmin/internal/modules/spuform"
	"pehlione.com/catalogadmin/pkg/view"
)

const SheetName = "SKUs"

var fixedColumns = []string{"Price", "Market price", "Cost price", "Stock", "Bar code", "Weight (kg)", "Volume (m3)", "Picture"}

// WriteSKUSheet writes one row per SKU in grid order. Multi-spec drafts get
// one leading column per selected sales property.
func WriteSKUSheet(w io.Writer, st spuform.State) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	props := st.Projection
	if !st.Draft.SpecType {
		props = nil
	}

	header := make([]any, 0, len(props)+len(fixedColumns))
	for _, p := range props {
		header = append(header, p.Name)
	}
	for _, c := range fixedColumns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range view.SKURows(st) {
		s := st.Draft.SKUs[r.SourceIndex]
		row := make([]any, 0, len(header))
		for _, p := range props {
			row = append(row, valueName(s.Properties, p.ID))
		}
		price, _ := s.Price.Float64()
		market, _ := s.MarketPrice.Float64()
		cost, _ := s.CostPrice.Float64()
		row = append(row, price, market, cost, s.Stock, s.BarCode, s.Weight, s.Volume, r.DisplayPic)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func valueName(pairs []sku.Pair, propertyID int64) string {
	for _, p := range pairs {
		if p.PropertyID == propertyID {
			return p.ValueName
		}
	}
	return ""
}
