package pkg

import "testing"

func TestFormatNGN(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{0, "₦0"},
		{500, "₦500"},
		{2000, "₦2,000"},
		{16000, "₦16,000"},
		{287000, "₦287,000"},
		{1234567, "₦1,234,567"},
		{-5000, "-₦5,000"},
	}

	for _, tc := range cases {
		if got := FormatNGN(tc.amount); got != tc.want {
			t.Fatalf("FormatNGN(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
