package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ToInt converts various types to int using explicit type switching.
// Unparseable input yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return int(ToFloat(v))
		}
		return i
	default:
		return int(ToFloat(v))
	}
}

// ToFloat converts numbers and numeric strings to float64. A string with
// trailing text reads as its leading number, so "12abc" is 12. Anything that
// is not a finite number yields 0.
func ToFloat(val any) float64 {
	var f float64
	switch v := val.(type) {
	case nil:
		return 0
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint64:
		f = float64(v)
	case uint32:
		f = float64(v)
	case *float64:
		if v == nil {
			return 0
		}
		f = *v
	case string:
		v = strings.TrimSpace(v)
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			prefix := numericPrefix.FindString(v)
			if prefix == "" {
				return 0
			}
			if parsed, err = strconv.ParseFloat(prefix, 64); err != nil {
				return 0
			}
		}
		f = parsed
	case []byte:
		return ToFloat(string(v))
	default:
		return ToFloat(fmt.Sprintf("%v", v))
	}
	if f != f || f > 1e308 || f < -1e308 {
		return 0
	}
	return f
}

// ToBool converts various types to bool.
// It handles bool, integers (1=true), and strings ("1", "true", "yes").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32:
		return ToInt(v) == 1
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "1" || s == "true" || s == "yes"
	default:
		return false
	}
}
