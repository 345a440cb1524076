package laxjson

import (
	"fmt"
)

// JType represents JSON value types.
type JType uint8

const (
	TypeNull JType = iota
	TypeBool
	TypeInt
	TypeDouble
	TypeString
	TypeList
	TypeDict
)

// String returns the type name.
func (t JType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	case TypeDict:
		return "dict"
	default:
		return "unknown"
	}
}

// JValue represents a JSON value. Exactly one payload field is meaningful
// at a time, selected by typ; payloads are reached only through the checked
// As* accessors.
type JValue struct {
	typ JType

	// Scalar values (only one valid based on typ)
	boolVal   bool
	intVal    int64
	doubleVal float64
	strVal    string

	// Container values
	listVal []*JValue
	dictVal []DictEntry
}

// DictEntry represents a key-value pair in a dict.
type DictEntry struct {
	Key   string
	Value *JValue
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *JValue {
	return &JValue{typ: TypeNull}
}

// Bool creates a boolean value.
func Bool(v bool) *JValue {
	return &JValue{typ: TypeBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *JValue {
	return &JValue{typ: TypeInt, intVal: v}
}

// Double creates a floating-point value.
func Double(v float64) *JValue {
	return &JValue{typ: TypeDouble, doubleVal: v}
}

// Str creates a string value.
func Str(v string) *JValue {
	return &JValue{typ: TypeString, strVal: v}
}

// List creates a list value.
func List(values ...*JValue) *JValue {
	return &JValue{typ: TypeList, listVal: values}
}

// Dict creates a dict value from key-value pairs. Later duplicates of a key
// replace earlier ones.
func Dict(entries ...DictEntry) *JValue {
	v := &JValue{typ: TypeDict}
	for _, e := range entries {
		v.Set(e.Key, e.Value)
	}
	return v
}

// Entry creates a DictEntry for use in Dict construction.
func Entry(key string, value *JValue) DictEntry {
	return DictEntry{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Type returns the value type.
func (v *JValue) Type() JType {
	if v == nil {
		return TypeNull
	}
	return v.typ
}

// IsNull returns true if this is a null value.
func (v *JValue) IsNull() bool {
	return v == nil || v.typ == TypeNull
}

// AsBool returns the boolean value.
func (v *JValue) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("laxjson: nil value")
	}
	if v.typ != TypeBool {
		return false, fmt.Errorf("laxjson: expected bool, got %s", v.typ)
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *JValue) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("laxjson: nil value")
	}
	if v.typ != TypeInt {
		return 0, fmt.Errorf("laxjson: expected int, got %s", v.typ)
	}
	return v.intVal, nil
}

// AsDouble returns the floating-point value.
func (v *JValue) AsDouble() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("laxjson: nil value")
	}
	if v.typ != TypeDouble {
		return 0, fmt.Errorf("laxjson: expected double, got %s", v.typ)
	}
	return v.doubleVal, nil
}

// AsStr returns the string value.
func (v *JValue) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("laxjson: nil value")
	}
	if v.typ != TypeString {
		return "", fmt.Errorf("laxjson: expected string, got %s", v.typ)
	}
	return v.strVal, nil
}

// AsList returns the list elements.
func (v *JValue) AsList() ([]*JValue, error) {
	if v == nil {
		return nil, fmt.Errorf("laxjson: nil value")
	}
	if v.typ != TypeList {
		return nil, fmt.Errorf("laxjson: expected list, got %s", v.typ)
	}
	return v.listVal, nil
}

// AsDict returns the dict entries.
func (v *JValue) AsDict() ([]DictEntry, error) {
	if v == nil {
		return nil, fmt.Errorf("laxjson: nil value")
	}
	if v.typ != TypeDict {
		return nil, fmt.Errorf("laxjson: expected dict, got %s", v.typ)
	}
	return v.dictVal, nil
}

// Len returns the length of a list or dict.
func (v *JValue) Len() int {
	if v == nil {
		return 0
	}
	switch v.typ {
	case TypeList:
		return len(v.listVal)
	case TypeDict:
		return len(v.dictVal)
	default:
		return 0
	}
}

// Get returns a dict entry value by key, or nil if absent.
func (v *JValue) Get(key string) *JValue {
	if v == nil || v.typ != TypeDict {
		return nil
	}
	for _, e := range v.dictVal {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Index returns the i-th element of a list.
func (v *JValue) Index(i int) (*JValue, error) {
	if v == nil || v.typ != TypeList {
		return nil, fmt.Errorf("laxjson: not a list")
	}
	if i < 0 || i >= len(v.listVal) {
		return nil, fmt.Errorf("laxjson: index %d out of bounds (len=%d)", i, len(v.listVal))
	}
	return v.listVal[i], nil
}

// ============================================================
// Mutators
// ============================================================

// Set sets a dict entry, replacing any existing entry with the same key.
func (v *JValue) Set(key string, val *JValue) {
	if v.typ != TypeDict {
		panic("laxjson: cannot set on non-dict")
	}
	for i := range v.dictVal {
		if v.dictVal[i].Key == key {
			v.dictVal[i].Value = val
			return
		}
	}
	v.dictVal = append(v.dictVal, DictEntry{Key: key, Value: val})
}

// Append adds a value to a list.
func (v *JValue) Append(val *JValue) {
	if v.typ != TypeList {
		panic("laxjson: cannot append to non-list")
	}
	v.listVal = append(v.listVal, val)
}

// ============================================================
// Numeric Coercion Helpers
// ============================================================

// Number returns a numeric value as float64 if int or double.
func (v *JValue) Number() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.typ {
	case TypeInt:
		return float64(v.intVal), true
	case TypeDouble:
		return v.doubleVal, true
	default:
		return 0, false
	}
}

// IsNumeric returns true if int or double.
func (v *JValue) IsNumeric() bool {
	return v != nil && (v.typ == TypeInt || v.typ == TypeDouble)
}

// ============================================================
// Equality
// ============================================================

// Equal reports whether two values are structurally equal. Dict comparison
// ignores entry order; Int and Double never compare equal even when the
// numbers coincide.
func Equal(a, b *JValue) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.Type() {
	case TypeNull:
		return true
	case TypeBool:
		return a.boolVal == b.boolVal
	case TypeInt:
		return a.intVal == b.intVal
	case TypeDouble:
		return a.doubleVal == b.doubleVal
	case TypeString:
		return a.strVal == b.strVal
	case TypeList:
		if len(a.listVal) != len(b.listVal) {
			return false
		}
		for i := range a.listVal {
			if !Equal(a.listVal[i], b.listVal[i]) {
				return false
			}
		}
		return true
	case TypeDict:
		if len(a.dictVal) != len(b.dictVal) {
			return false
		}
		for _, e := range a.dictVal {
			if !dictHasKey(b, e.Key) {
				return false
			}
			if !Equal(e.Value, b.Get(e.Key)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func dictHasKey(v *JValue, key string) bool {
	for _, e := range v.dictVal {
		if e.Key == key {
			return true
		}
	}
	return false
}
