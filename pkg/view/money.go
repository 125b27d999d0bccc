package view

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pehlione.com/catalogadmin/internal/shared/money"
)

var printer = message.NewPrinter(language.English)

// Yuan formats a major-unit amount with grouping, e.g. "¥1,234.50".
func Yuan(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("¥%.2f", f)
}

// MoneyFromFen formats a backend minor-unit amount.
func MoneyFromFen(fen int64) string {
	return Yuan(money.FenToYuan(fen))
}
