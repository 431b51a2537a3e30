package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Kind tags the dynamic type held by a FeatureValue.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBool
	KindMap
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Features is the open-ended features_ht bag for precomputed values that the
// report shape does not model.
type Features map[string]FeatureValue

// FeatureValue is a tagged union over the JSON value kinds. Numbers keep their
// original textual form so nothing is lost on a round trip.
type FeatureValue struct {
	kind Kind
	num  json.Number
	str  string
	b    bool
	m    map[string]FeatureValue
	list []FeatureValue
}

// Null returns the null feature value.
func Null() FeatureValue { return FeatureValue{kind: KindNull} }

// Number wraps a float. NaN and infinities have no JSON form and become Null.
func Number(f float64) FeatureValue {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return FeatureValue{kind: KindNumber, num: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}
}

// String wraps a string.
func String(s string) FeatureValue { return FeatureValue{kind: KindString, str: s} }

// Bool wraps a boolean.
func Bool(b bool) FeatureValue { return FeatureValue{kind: KindBool, b: b} }

// Map wraps a nested mapping.
func Map(m map[string]FeatureValue) FeatureValue { return FeatureValue{kind: KindMap, m: m} }

// List wraps a sequence.
func List(items ...FeatureValue) FeatureValue { return FeatureValue{kind: KindList, list: items} }

func (v FeatureValue) Kind() Kind { return v.kind }

func (v FeatureValue) IsNull() bool { return v.kind == KindNull }

// Float64 returns the numeric value when v holds a number.
func (v FeatureValue) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := v.num.Float64()
	return f, err == nil
}

// Text returns the string value when v holds a string.
func (v FeatureValue) Text() (string, bool) {
	return v.str, v.kind == KindString
}

// Boolean returns the boolean value when v holds a bool.
func (v FeatureValue) Boolean() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Fields returns the nested mapping when v holds a map.
func (v FeatureValue) Fields() (map[string]FeatureValue, bool) {
	return v.m, v.kind == KindMap
}

// Items returns the sequence when v holds a list.
func (v FeatureValue) Items() ([]FeatureValue, bool) {
	return v.list, v.kind == KindList
}

// Keys returns the feature names in sorted order.
func (f Features) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (v FeatureValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindNumber:
		return []byte(v.num.String()), nil
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	case KindMap:
		if v.m == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.m)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	default:
		return nil, fmt.Errorf("feature value: unknown kind %d", int(v.kind))
	}
}

func (v *FeatureValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("feature value: empty input")
	}
	switch trimmed[0] {
	case 'n':
		*v = Null()
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case '{':
		var m map[string]FeatureValue
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return err
		}
		if m == nil {
			m = map[string]FeatureValue{}
		}
		*v = Map(m)
		return nil
	case '[':
		var items []FeatureValue
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*v = List(items...)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return err
		}
		*v = FeatureValue{kind: KindNumber, num: n}
		return nil
	}
}
