// Package dateutils provides the date handling used by the time-series reports.
//
// Transaction dates are free text. A date only takes part in time-series reports
// when it reads as three integers separated by '-'; there is no calendar validation,
// so "2024-13-45" still lands in bucket "2024-13".
package dateutils

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DateLayoutISO is the layout of dates suggested to users.
const DateLayoutISO = "2006-01-02"

// ParseDateParts reads "year-month-day". Whitespace before each token is skipped, each
// number may carry a sign, and anything after the day is ignored.
func ParseDateParts(date string) (year, month, day int, ok bool) {
	rest := date

	if year, rest, ok = readInt(rest); !ok {
		return 0, 0, 0, false
	}
	if rest, ok = readDash(rest); !ok {
		return 0, 0, 0, false
	}
	if month, rest, ok = readInt(rest); !ok {
		return 0, 0, 0, false
	}
	if rest, ok = readDash(rest); !ok {
		return 0, 0, 0, false
	}
	if day, _, ok = readInt(rest); !ok {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// MonthKey builds the "YYYY-MM" bucket key. Months below 10 get a leading zero so that
// sorting keys as strings sorts them chronologically.
func MonthKey(year, month int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(year))
	b.WriteByte('-')
	if month < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(month))
	return b.String()
}

// YearKey builds the "YYYY" bucket key.
func YearKey(year int) string {
	return strconv.Itoa(year)
}

// Today returns the current date in DateLayoutISO, used as the prompt default.
func Today() string {
	return time.Now().Format(DateLayoutISO)
}

func readInt(s string) (int, string, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, s, false
	}
	return n, s[end:], true
}

func readDash(s string) (string, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if !strings.HasPrefix(s, "-") {
		return s, false
	}
	return s[1:], true
}
