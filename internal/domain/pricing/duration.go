package pricing

import "strconv"

// leadingInt parses the leading decimal digits of a duration string:
// "40s" → 40, "1:20" → 1. Durations are expected to be one of the fixed tier
// strings; any string without leading digits parses to 0, which yields zero
// billable blocks rather than an error.
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// ceilDiv is ceiling division for non-negative operands.
func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
