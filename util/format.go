package util

import (
	"fmt"
	"math"
	"strconv"

	"github.com/duke-git/lancet/v2/formatter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

var numberSuffixes = [...]string{"", "K", "M", "B", "T"}

// FormatNumber renders any numeric-ish value as a compact human string:
// 1500 -> "1.50K", 2500000 -> "2.50M", -1500 -> "-1.50K". Values past the
// suffix table keep dividing and get a trailing "P". Anything that cannot
// be coerced to a number renders as "N/A".
func FormatNumber(v any) string {
	num, err := cast.ToFloat64E(v)
	if err != nil {
		return "N/A"
	}

	for _, unit := range numberSuffixes {
		if math.Abs(num) < 1000 {
			return fmt.Sprintf("%.2f%s", num, unit)
		}
		num /= 1000
	}

	return fmt.Sprintf("%.2fP", num)
}

// FormatPercentage renders a 0..1 fraction as a percentage: 0.35 -> "35.00%".
func FormatPercentage(v any) string {
	num, err := cast.ToFloat64E(v)
	if err != nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", num*100)
}

// FormatChange renders an already-percent value with its sign: 3.2 -> "+3.20%".
func FormatChange(v any) string {
	num, err := cast.ToFloat64E(v)
	if err != nil {
		return "N/A"
	}
	if num > 0 {
		return fmt.Sprintf("+%.2f%%", num)
	}
	return fmt.Sprintf("%.2f%%", num)
}

// PriceDelta computes the percent move from prev to cur. decimal keeps the
// division exact for the tiny prices Solana tokens trade at.
func PriceDelta(cur, prev any) string {
	c, errC := decimal.NewFromString(cast.ToString(cur))
	p, errP := decimal.NewFromString(cast.ToString(prev))
	if errC != nil || errP != nil || p.IsZero() {
		return "N/A"
	}

	delta := c.Sub(p).Div(p).Mul(decimal.NewFromInt(100))
	f, _ := delta.Round(2).Float64()
	if f > 0 {
		return fmt.Sprintf("+%.2f%%", f)
	}
	return fmt.Sprintf("%.2f%%", f)
}

// FormatComma renders a whole number with thousands separators: 1234567 -> "1,234,567".
func FormatComma(v any) string {
	num, err := cast.ToInt64E(v)
	if err != nil {
		return "N/A"
	}
	if num < 0 {
		return "-" + formatter.Comma(-num, "")
	}
	return formatter.Comma(num, "")
}

// FormatFixed renders a numeric-ish value with a fixed number of decimals.
func FormatFixed(v any, places int) string {
	num, err := cast.ToFloat64E(v)
	if err != nil {
		return "N/A"
	}
	return strconv.FormatFloat(num, 'f', places, 64)
}

// FormatMoney renders USD amounts: two decimals plus thousands
// separators, 1234567.891 -> "1,234,567.89".
func FormatMoney(v any) string {
	num, err := cast.ToFloat64E(v)
	if err != nil {
		return "N/A"
	}
	if num < 0 {
		return "-" + formatter.Comma(strconv.FormatFloat(-num, 'f', 2, 64), "")
	}
	return formatter.Comma(strconv.FormatFloat(num, 'f', 2, 64), "")
}

// ShortAddress keeps the head and tail of an address for captions and
// button labels: "5tzFki...uAi9".
func ShortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

var numberEmojis = [...]string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// NumberEmoji decorates list positions 1..10, then falls back to "11.".
func NumberEmoji(i int) string {
	if i >= 1 && i <= len(numberEmojis) {
		return numberEmojis[i-1]
	}
	return fmt.Sprintf("%d.", i)
}
