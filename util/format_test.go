package util

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"zero", 0, "0.00"},
		{"small", 999, "999.00"},
		{"thousands", 1500, "1.50K"},
		{"millions", 2500000, "2.50M"},
		{"billions", 3200000000, "3.20B"},
		{"trillions", 1e12, "1.00T"},
		{"past the table", 1e15, "1.00P"},
		{"way past the table", 1e18, "1000.00P"},
		{"negative", -1500, "-1.50K"},
		{"negative small", -42.5, "-42.50"},
		{"numeric string", "1500", "1.50K"},
		{"float string", "2500000.0", "2.50M"},
		{"garbage", "abc", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{0.35, "35.00%"},
		{1, "100.00%"},
		{0, "0.00%"},
		{"0.0712", "7.12%"},
		{"oops", "N/A"},
	}

	for _, tt := range tests {
		if got := FormatPercentage(tt.in); got != tt.want {
			t.Errorf("FormatPercentage(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatChange(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{3.2, "+3.20%"},
		{-1.25, "-1.25%"},
		{0, "0.00%"},
		{"bad", "N/A"},
	}

	for _, tt := range tests {
		if got := FormatChange(tt.in); got != tt.want {
			t.Errorf("FormatChange(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPriceDelta(t *testing.T) {
	tests := []struct {
		name string
		cur  any
		prev any
		want string
	}{
		{"up", 1.5, 1.0, "+50.00%"},
		{"down", 0.5, 1.0, "-50.00%"},
		{"flat", 2.0, 2.0, "0.00%"},
		{"tiny prices stay exact", 0.000003, 0.000002, "+50.00%"},
		{"string input", "110", "100", "+10.00%"},
		{"zero previous", 1.0, 0, "N/A"},
		{"garbage", "x", 1.0, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriceDelta(tt.cur, tt.prev); got != tt.want {
				t.Errorf("PriceDelta(%v, %v) = %q, want %q", tt.cur, tt.prev, got, tt.want)
			}
		})
	}
}

func TestFormatComma(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{1234567, "1,234,567"},
		{999, "999"},
		{-1234567, "-1,234,567"},
		{0, "0"},
		{"7654321", "7,654,321"},
		{"nope", "N/A"},
	}

	for _, tt := range tests {
		if got := FormatComma(tt.in); got != tt.want {
			t.Errorf("FormatComma(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in     any
		places int
		want   string
	}{
		{3.14159, 2, "3.14"},
		{3.14159, 4, "3.1416"},
		{5, 0, "5"},
		{"2.5", 1, "2.5"},
		{"bad", 2, "N/A"},
	}

	for _, tt := range tests {
		if got := FormatFixed(tt.in, tt.places); got != tt.want {
			t.Errorf("FormatFixed(%v, %d) = %q, want %q", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{1234567.891, "1,234,567.89"},
		{0, "0.00"},
		{999.9, "999.90"},
		{-50.5, "-50.50"},
		{-1234567.891, "-1,234,567.89"},
		{"250000", "250,000.00"},
		{"bad", "N/A"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShortAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", "EPjFWd...Dt1v"},
		{"short", "short"},
		{"exactly12chr", "exactly12chr"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ShortAddress(tt.in); got != tt.want {
			t.Errorf("ShortAddress(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumberEmoji(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1, "1️⃣"},
		{9, "9️⃣"},
		{10, "🔟"},
		{11, "11."},
		{0, "0."},
	}

	for _, tt := range tests {
		if got := NumberEmoji(tt.in); got != tt.want {
			t.Errorf("NumberEmoji(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
