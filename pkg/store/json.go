package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/pluqqy/shuttle/pkg/models"
)

func decodeJSON(content []byte) ([]models.Record, error) {
	if !gjson.ValidBytes(content) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidCollection)
	}

	root := gjson.ParseBytes(content)
	list := root
	if root.IsObject() {
		list = root.Get(ItemsKey)
		if !list.Exists() || list.Type == gjson.Null {
			return []models.Record{}, nil
		}
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: expected an array or an object with %q", ErrInvalidCollection, ItemsKey)
	}

	var items []any
	for _, el := range list.Array() {
		items = append(items, jsonValue(el))
	}
	return toRecords(items)
}

// jsonValue is gjson's Result.Value, except that integer literals decode to
// int64 or uint64 so that large identity keys survive a load and save
func jsonValue(r gjson.Result) any {
	switch {
	case r.Type == gjson.Number:
		return jsonNumber(r)
	case r.IsArray():
		values := []any{}
		r.ForEach(func(_, el gjson.Result) bool {
			values = append(values, jsonValue(el))
			return true
		})
		return values
	case r.IsObject():
		fields := map[string]any{}
		r.ForEach(func(key, el gjson.Result) bool {
			fields[key.String()] = jsonValue(el)
			return true
		})
		return fields
	default:
		return r.Value()
	}
}

func jsonNumber(r gjson.Result) any {
	raw := strings.TrimSpace(r.Raw)
	if strings.ContainsAny(raw, ".eE") {
		return r.Num
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return u
	}
	return r.Num
}

// encodeJSON keeps the shape of an existing document: a top-level array
// stays an array, an object gets its "items" key replaced.
func encodeJSON(existing []byte, records []models.Record) ([]byte, error) {
	if len(existing) > 0 && gjson.ValidBytes(existing) {
		root := gjson.ParseBytes(existing)
		switch {
		case root.IsArray():
			out, err := json.Marshal(records)
			if err != nil {
				return nil, err
			}
			return pretty.Pretty(out), nil
		case root.IsObject():
			out, err := sjson.SetBytes(existing, ItemsKey, records)
			if err != nil {
				return nil, err
			}
			return pretty.Pretty(out), nil
		}
	}

	out, err := sjson.SetBytes([]byte(`{}`), ItemsKey, records)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(out), nil
}
