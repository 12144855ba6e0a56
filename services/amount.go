package services

import (
	"fmt"
	"strconv"
	"strings"
)

// AmountToMinorUnits converts a currency-formatted string such as
// "$19.99" to minor units (1999). This is the only place a displayed
// amount becomes cents; every gateway call derives its amount here.
// A string that is not a valid decimal amount is rejected with
// ErrInvalidAmount, never silently converted to zero.
func AmountToMinorUnits(amount string) (int64, error) {
	s := strings.TrimSpace(amount)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	dollarPart := s
	centPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		dollarPart, centPart = s[:i], s[i+1:]
		if len(centPart) > 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
		}
	}
	if dollarPart == "" {
		dollarPart = "0"
	}

	dollars, err := strconv.ParseInt(dollarPart, 10, 64)
	if err != nil || dollars < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	var cents int64
	if centPart != "" {
		cents, err = strconv.ParseInt(centPart, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
		}
		if len(centPart) == 1 {
			cents *= 10
		}
	}

	return dollars*100 + cents, nil
}

// MinorUnitsToAmount formats minor units back to a currency string
// with en-US thousands grouping, the inverse of AmountToMinorUnits
// ("$5.00" and "$1,250.75" both round-trip).
func MinorUnitsToAmount(minor int64) string {
	return fmt.Sprintf("$%s.%02d", groupThousands(strconv.FormatInt(minor/100, 10)), minor%100)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
