package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date and time labels are plain display strings, compared string-exact
// (no timezone normalization). Every caller goes through these helpers
// so "today" comparisons are consistent by construction.

const dateLayout = "1/2/2006"

func DateLabel(t time.Time) string {
	return t.Format(dateLayout)
}

func TimeLabel(t time.Time) string {
	return t.Format("3:04:05 PM")
}

func ParseDateLabel(label string) (time.Time, error) {
	return time.Parse(dateLayout, label)
}

var currencySymbols = map[string]string{
	"NGN": "₦",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatCurrency renders an amount with its currency symbol and
// thousands separators, e.g. FormatCurrency(1200, "NGN") = "₦1,200".
func FormatCurrency(amount float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}
	return symbol + groupThousands(amount)
}

func groupThousands(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// RelativeTime renders how long ago t was, in the notification list's
// vocabulary ("Just now", "10 min ago", "2 hours ago").
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		h := int(d.Hours())
		if h == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", h)
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}
