package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToString renders the value as a string. All scalar inputs are accepted.
func ToString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	default:
		return fmt.Sprint(value), nil
	}
}

// ToInteger converts integral values, whole floats, numeric strings, and
// json.Number payloads into an int64.
func ToInteger(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("coerce: integer value %d overflows", v)
		}
		return int64(v), nil
	case float32:
		return wholeToInt64(float64(v))
	case float64:
		return wholeToInt64(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not an integer", v.String())
		}
		return parsed, nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not an integer", v)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("coerce: cannot convert %T to integer", value)
	}
}

// ToNumber converts numeric values, numeric strings, and json.Number
// payloads into a float64.
func ToNumber(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not a number", v.String())
		}
		return parsed, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not a number", v)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("coerce: cannot convert %T to number", value)
	}
}

// ToBoolean converts bools, 0/1 integers, and the textual forms accepted by
// strconv.ParseBool into a bool.
func ToBoolean(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not a boolean", v)
		}
		return parsed, nil
	case int:
		return intToBool(int64(v))
	case int64:
		return intToBool(v)
	case float64:
		if v == 0 || v == 1 {
			return v == 1, nil
		}
		return nil, fmt.Errorf("coerce: %v is not a boolean", v)
	default:
		return nil, fmt.Errorf("coerce: cannot convert %T to boolean", value)
	}
}

func wholeToInt64(v float64) (any, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, fmt.Errorf("coerce: %v is not an integer", v)
	}
	return int64(v), nil
}

func intToBool(v int64) (any, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return nil, fmt.Errorf("coerce: %d is not a boolean", v)
	}
}
