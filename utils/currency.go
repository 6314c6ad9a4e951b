package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatPrice formats a dish price with thousands separators.
// Example: 1234.5 -> "$1,234.50"
func FormatPrice(amount float64) string {
	cents := int64(math.Round(amount * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	integerPart := fmt.Sprintf("%d", cents/100)
	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return fmt.Sprintf("%s$%s.%02d", sign, strings.Join(groups, ","), cents%100)
}
