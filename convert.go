package params

import (
	"fmt"
	"strconv"
	"strings"
)

// Conversion core: every typed read goes through one of these helpers, which
// turn a parameter's textual value into the requested Go type. Failures are
// reported as ErrConvert.

func toInt64(text string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an int", ErrConvert, text)
	}
	return v, nil
}

func toFloat64(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a float", ErrConvert, text)
	}
	return v, nil
}

func toBool(text string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(text))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a bool", ErrConvert, text)
	}
	return v, nil
}

func toEnum(table *EnumTable, text string) (int, error) {
	v, ok := table.Value(strings.TrimSpace(text))
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a name of %s", ErrConvert, text, table.Type())
	}
	return v, nil
}

// splitSeq splits a joined sequence value on the fixed "," delimiter into
// trimmed element tokens.
func splitSeq(text string) []string {
	parts := strings.Split(text, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func toStrings(text string) []string {
	return splitSeq(text)
}

func toInt64s(text string) ([]int64, error) {
	parts := splitSeq(text)
	out := make([]int64, len(parts))
	for i, p := range parts {
		v, err := toInt64(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func toFloat64s(text string) ([]float64, error) {
	parts := splitSeq(text)
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := toFloat64(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func toBools(text string) ([]bool, error) {
	parts := splitSeq(text)
	out := make([]bool, len(parts))
	for i, p := range parts {
		v, err := toBool(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
