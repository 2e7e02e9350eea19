package pkg

import "strconv"

// FormatNGN renders a whole-Naira amount for display: ₦ symbol, digits
// grouped in threes, no decimals (the en-NG/NGN zero-fraction style the
// intake UI uses). The pricing engine itself only ever returns integers;
// formatting is strictly an adapter concern.
func FormatNGN(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := strconv.Itoa(amount)
	n := len(s)
	if n > 3 {
		grouped := s[n-3:]
		remaining := s[:n-3]
		for len(remaining) > 3 {
			grouped = remaining[len(remaining)-3:] + "," + grouped
			remaining = remaining[:len(remaining)-3]
		}
		s = remaining + "," + grouped
	}

	result := "₦" + s
	if negative {
		result = "-" + result
	}
	return result
}
