package store

import (
	"math"
	"strconv"
)

// values is the decoded key/value map shared by File and MemoryBlob. yaml
// decodes whole numbers as int, so numeric reads accept either kind.
type values map[string]any

func (v values) float(key string) (float64, bool) {
	switch n := v[key].(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func (v values) int(key string) (int, bool) {
	switch n := v[key].(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	}
	return 0, false
}

func (v values) bool(key string) (bool, bool) {
	switch b := v[key].(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(b)
		return parsed, err == nil
	}
	return false, false
}

func (v values) string(key string) (string, bool) {
	switch s := v[key].(type) {
	case string:
		return s, true
	case nil:
		return "", false
	case bool:
		return strconv.FormatBool(s), true
	case int:
		return strconv.Itoa(s), true
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), true
	}
	return "", false
}
