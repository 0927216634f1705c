package helpers

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// DisplayDateLayout is the date format shown in listings.
const DisplayDateLayout = "02-01-2006"

// FormatDisplayDate renders a timestamp as DD-MM-YYYY for listing views.
// The zero time renders as "N/A" (records migrated without a timestamp).
func FormatDisplayDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(DisplayDateLayout)
}

// FormatINR renders an amount as Indian-locale currency with lakh/crore
// grouping: the last three digits form one group, every group before it has
// two digits (12,34,567). Paise are shown only when present.
func FormatINR(amount float64) string {
	if amount == 0 {
		return "₹ 0"
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	// Round to paise once so the integer and fraction parts agree.
	paise := int64(math.Round(amount * 100))
	whole := paise / 100
	frac := paise % 100

	digits := strconv.FormatInt(whole, 10)
	grouped := groupIndian(digits)

	if frac > 0 {
		return fmt.Sprintf("%s₹%s.%02d", sign, grouped, frac)
	}
	return sign + "₹" + grouped
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	groups = append(groups, tail)

	out := groups[0]
	for _, g := range groups[1:] {
		out += "," + g
	}
	return out
}
