package table

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Record is one logical row as handed over by a page. No schema is enforced.
type Record map[string]any

// Get resolves a dotted path such as "employee.name" through nested maps.
func (r Record) Get(path string) (any, bool) {
	if r == nil || path == "" {
		return nil, false
	}
	var current any = map[string]any(r)
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, false
			}
			current = value
		case Record:
			value, ok := node[part]
			if !ok {
				return nil, false
			}
			current = value
		default:
			return nil, false
		}
	}
	return current, true
}

func (r Record) String(path string) string {
	value, ok := r.Get(path)
	if !ok {
		return ""
	}
	return Text(value)
}

func (r Record) Float(path string) float64 {
	value, ok := r.Get(path)
	if !ok {
		return 0
	}
	switch v := value.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	case float32:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}

// Clone copies the top level of the record. Nested values are shared.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Text returns the display text of a field value. nil, including a typed nil
// pointer, renders as the empty string; maps and slices render as their JSON text.
func Text(value any) string {
	if isNil(value) {
		return ""
	}
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	case map[string]any, Record, []any, []string, []Record:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	default:
		return fmt.Sprint(v)
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
