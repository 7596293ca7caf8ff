package app

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// formatWon renders an amount as "12,300원".
func formatWon(amount int64) string {
	return printer.Sprintf("%d원", amount)
}

// formatPercent renders a 0..1 ratio as "70%".
func formatPercent(ratio float64) string {
	return printer.Sprintf("%.0f%%", ratio*100)
}
