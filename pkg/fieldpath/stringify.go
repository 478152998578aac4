package fieldpath

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Stringify converts a resolved value into the text used for display and
// search. nil and nil pointers become the empty string. Sequences are
// joined with ", " and maps are rendered as "key: value" pairs in key
// order. A container that contains itself is rendered as "..." at the
// point it recurs.
func Stringify(v any) string {
	return stringify(v, nil)
}

// visit identifies a pointer, map or slice already being rendered
// further up
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

func stringify(v any, seen map[visit]bool) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}

	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return ""
		}
		id := visit{ptr: rv.Pointer(), typ: rv.Type()}
		if rv.Kind() != reflect.Pointer {
			id.len = rv.Len()
		}
		if seen[id] {
			return "..."
		}
		if seen == nil {
			seen = make(map[visit]bool)
		}
		seen[id] = true
		defer delete(seen, id)

		switch rv.Kind() {
		case reflect.Pointer:
			return stringify(rv.Elem().Interface(), seen)
		case reflect.Map:
			return stringifyMap(rv, seen)
		default:
			return stringifySeq(rv, seen)
		}
	case reflect.Array:
		return stringifySeq(rv, seen)
	}
	return fmt.Sprintf("%v", v)
}

func stringifySeq(rv reflect.Value, seen map[visit]bool) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = stringify(rv.Index(i).Interface(), seen)
	}
	return strings.Join(parts, ", ")
}

func stringifyMap(rv reflect.Value, seen map[visit]bool) string {
	keys := rv.MapKeys()
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, stringify(k.Interface(), seen)+": "+stringify(rv.MapIndex(k).Interface(), seen))
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ", ") + "}"
}

// Text resolves path against v and stringifies the result. An absent
// value yields "".
func Text(v any, path string) string {
	val, ok := Lookup(v, path)
	if !ok {
		return ""
	}
	return Stringify(val)
}
