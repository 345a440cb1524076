package laxjson

import (
	"encoding/json"
	"fmt"
	"math"
)

// ============================================================
// encoding/json Bridge
// ============================================================
//
// Converts between encoding/json value trees and JValue. Useful for
// callers that already hold a decoded any-tree, and for normalizing
// strict JSON through the standard library.

// maxSafeInt is the largest float64 that still maps one-to-one onto an
// integer (2^53 - 1). Whole numbers beyond it stay doubles.
const maxSafeInt = 9007199254740991

// FromStdJSON converts JSON bytes to a JValue via encoding/json.
func FromStdJSON(data []byte) (*JValue, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("laxjson: JSON parse error: %w", err)
	}
	return FromStdValue(v)
}

// FromStdValue converts a Go interface{} tree (as produced by
// json.Unmarshal) to a JValue.
func FromStdValue(v interface{}) (*JValue, error) {
	if v == nil {
		return Null(), nil
	}

	switch val := v.(type) {
	case bool:
		return Bool(val), nil

	case float64:
		// encoding/json decodes every number as float64; recover the
		// integer variant for whole values in the safe range.
		if val == math.Trunc(val) && val >= -maxSafeInt && val <= maxSafeInt && !math.IsInf(val, 0) {
			return Int(int64(val)), nil
		}
		return Double(val), nil

	case json.Number:
		if n, err := val.Int64(); err == nil {
			return Int(n), nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("laxjson: invalid number %q: %w", val.String(), err)
		}
		return Double(f), nil

	case string:
		return Str(val), nil

	case []interface{}:
		items := make([]*JValue, 0, len(val))
		for i, item := range val {
			gv, err := FromStdValue(item)
			if err != nil {
				return nil, fmt.Errorf("laxjson: array index %d: %w", i, err)
			}
			items = append(items, gv)
		}
		return List(items...), nil

	case map[string]interface{}:
		res := Dict()
		for k, item := range val {
			gv, err := FromStdValue(item)
			if err != nil {
				return nil, fmt.Errorf("laxjson: object key %q: %w", k, err)
			}
			res.Set(k, gv)
		}
		return res, nil

	default:
		return nil, fmt.Errorf("laxjson: unsupported JSON value type %T", v)
	}
}

// ToStdJSON converts a JValue to JSON bytes via encoding/json.
func ToStdJSON(v *JValue) ([]byte, error) {
	std, err := ToStdValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(std)
}

// ToStdValue converts a JValue to the interface{} shape encoding/json
// produces: nil, bool, int64, float64, string, []interface{}, and
// map[string]interface{}.
func ToStdValue(v *JValue) (interface{}, error) {
	if v == nil || v.IsNull() {
		return nil, nil
	}

	switch v.typ {
	case TypeBool:
		return v.boolVal, nil

	case TypeInt:
		return v.intVal, nil

	case TypeDouble:
		if math.IsNaN(v.doubleVal) || math.IsInf(v.doubleVal, 0) {
			return nil, fmt.Errorf("laxjson: %v has no JSON representation", v.doubleVal)
		}
		return v.doubleVal, nil

	case TypeString:
		return v.strVal, nil

	case TypeList:
		items := make([]interface{}, 0, len(v.listVal))
		for i, item := range v.listVal {
			std, err := ToStdValue(item)
			if err != nil {
				return nil, fmt.Errorf("laxjson: list index %d: %w", i, err)
			}
			items = append(items, std)
		}
		return items, nil

	case TypeDict:
		res := make(map[string]interface{}, len(v.dictVal))
		for _, e := range v.dictVal {
			std, err := ToStdValue(e.Value)
			if err != nil {
				return nil, fmt.Errorf("laxjson: dict key %q: %w", e.Key, err)
			}
			res[e.Key] = std
		}
		return res, nil

	default:
		return nil, fmt.Errorf("laxjson: unsupported value type %s", v.typ)
	}
}
