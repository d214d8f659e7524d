package utils

import (
	"fmt"
	"strconv"
)

// FormatCurrencyKES formats a whole-unit amount as a Kenyan Shilling
// string with thousands separators. Example: 1800 -> "KES 1,800".
func FormatCurrencyKES(amount int64) string {
	neg := ""
	if amount < 0 {
		neg = "-"
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	grouped := ""
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped += ","
		}
		grouped += string(digit)
	}

	return fmt.Sprintf("KES %s%s", neg, grouped)
}
