package domain

import (
	"fmt"
	"strconv"
)

// FormatGBP renders an amount in pence as a pound string with thousand
// separators, e.g. 123456 becomes "£1,234.56". Negative amounts keep the
// sign before the currency symbol.
func FormatGBP(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}

	pounds := strconv.FormatInt(pence/100, 10)
	for i := len(pounds) - 3; i > 0; i -= 3 {
		pounds = pounds[:i] + "," + pounds[i:]
	}

	return fmt.Sprintf("%s£%s.%02d", sign, pounds, pence%100)
}
