package value

import (
	"strconv"
	"strings"
)

// Coerce turns text typed on the command line into a Value. The first rule
// that matches wins:
//
//	"true" / "false" in any case  -> Bool
//	only ASCII digits             -> Int
//	digits with exactly one "."   -> Float
//	anything else                 -> String, unchanged
//
// Signs and exponents are not recognised, so "-5" and "1e3" stay strings. An
// all-digit string too large for int64 also stays a string.
func Coerce(text string) Value {
	switch strings.ToLower(text) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	if isDigits(text) {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(i)
		}
		return String(text)
	}

	if strings.Count(text, ".") == 1 && isDigits(strings.Replace(text, ".", "", 1)) {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Float(f)
		}
	}

	return String(text)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
