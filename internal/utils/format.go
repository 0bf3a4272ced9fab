package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthLabel renders a month the way the UI shows it, e.g. "março de 2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s de %d", monthNames[month-1], year)
}

// FormatMoney renders an amount in the app's fixed currency with two fraction
// digits and a decimal comma, e.g. "R$ 1234,50".
func FormatMoney(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	return "R$ " + strings.Replace(fixed, ".", ",", 1)
}
