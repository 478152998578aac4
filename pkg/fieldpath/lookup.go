// Package fieldpath resolves dotted accessor paths such as "user.name"
// against arbitrary values. A path that cannot be followed is not an
// error: it resolves to "no value".
package fieldpath

import (
	"reflect"
	"strconv"
	"strings"
)

// Separator splits an accessor path into segments
const Separator = "."

// Split breaks a path into its segments. It reports false for an empty
// path or a path with an empty segment ("a..b", ".a", "a.").
func Split(path string) ([]string, bool) {
	if path == "" {
		return nil, false
	}
	segments := strings.Split(path, Separator)
	for _, seg := range segments {
		if seg == "" {
			return nil, false
		}
	}
	return segments, true
}

// Lookup walks path through v one segment at a time. Maps are indexed by
// key, structs by field name or yaml/json tag, slices and arrays by a
// numeric segment. Pointers and interfaces are followed. The second result
// is false when any segment is absent or the final value is nil.
func Lookup(v any, path string) (any, bool) {
	segments, ok := Split(path)
	if !ok {
		return nil, false
	}

	cur := reflect.ValueOf(v)
	for _, seg := range segments {
		cur, ok = step(cur, seg)
		if !ok {
			return nil, false
		}
	}

	cur, ok = indirect(cur)
	if !ok || !cur.CanInterface() {
		return nil, false
	}
	return cur.Interface(), true
}

// Has reports whether path resolves to a value
func Has(v any, path string) bool {
	_, ok := Lookup(v, path)
	return ok
}

func step(cur reflect.Value, seg string) (reflect.Value, bool) {
	cur, ok := indirect(cur)
	if !ok {
		return reflect.Value{}, false
	}

	switch cur.Kind() {
	case reflect.Map:
		return mapIndex(cur, seg)
	case reflect.Struct:
		return structField(cur, seg)
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= cur.Len() {
			return reflect.Value{}, false
		}
		return cur.Index(i), true
	default:
		return reflect.Value{}, false
	}
}

// indirect follows pointers and interfaces, failing on nil
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice:
		if v.IsNil() {
			return reflect.Value{}, false
		}
	}
	return v, true
}

func mapIndex(m reflect.Value, seg string) (reflect.Value, bool) {
	keyType := m.Type().Key()

	var key reflect.Value
	switch keyType.Kind() {
	case reflect.String:
		key = reflect.ValueOf(seg).Convert(keyType)
	case reflect.Interface:
		// map[any]any decoded from YAML may hold non-string keys
		key = reflect.ValueOf(seg)
		if val := m.MapIndex(key); val.IsValid() {
			return val, true
		}
		if i, err := strconv.Atoi(seg); err == nil {
			key = reflect.ValueOf(i)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(seg, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		key = reflect.New(keyType).Elem()
		if key.OverflowInt(i) {
			return reflect.Value{}, false
		}
		key.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(seg, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		key = reflect.New(keyType).Elem()
		if key.OverflowUint(u) {
			return reflect.Value{}, false
		}
		key.SetUint(u)
	default:
		return reflect.Value{}, false
	}

	if !key.Type().AssignableTo(keyType) {
		return reflect.Value{}, false
	}
	val := m.MapIndex(key)
	if !val.IsValid() {
		return reflect.Value{}, false
	}
	return val, true
}

func structField(s reflect.Value, seg string) (reflect.Value, bool) {
	t := s.Type()

	// promoted fields may sit behind a nil embedded pointer
	if f, ok := t.FieldByName(seg); ok && f.IsExported() {
		v, err := s.FieldByIndexErr(f.Index)
		if err != nil {
			return reflect.Value{}, false
		}
		return v, true
	}

	var folded reflect.Value
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tagName(f, "yaml") == seg || tagName(f, "json") == seg {
			return s.Field(i), true
		}
		if !folded.IsValid() && strings.EqualFold(f.Name, seg) {
			folded = s.Field(i)
		}
	}
	if folded.IsValid() {
		return folded, true
	}
	return reflect.Value{}, false
}

func tagName(f reflect.StructField, key string) string {
	tag := f.Tag.Get(key)
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}
