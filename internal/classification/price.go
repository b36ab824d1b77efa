package classification

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice converts a loosely typed price value into a number.
// Numbers pass through unchanged. Strings keep only digits and decimal points
// and the longest leading decimal number is parsed, so "$1,234.50" becomes
// 1234.5. Absent values, the "-" placeholder and anything unparseable yield 0.
func ParsePrice(val any) float64 {
	switch v := val.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case string:
		return parsePriceString(v)
	case []byte:
		return parsePriceString(string(v))
	}
	return 0
}

func parsePriceString(s string) float64 {
	if s == "" || s == SellerPlaceholder {
		return 0
	}

	clean := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)

	number := leadingNumber(clean)
	if number == "" {
		return 0
	}

	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(f)
}

// leadingNumber returns the longest prefix of s shaped like digits[.digits].
func leadingNumber(s string) string {
	seenDot := false
	end := 0
	for i, r := range s {
		if r == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		end = i + 1
	}

	number := s[:end]
	if strings.Trim(number, ".") == "" {
		return ""
	}
	return number
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
