package store

import (
	"github.com/oklog/ulid/v2"

	"github.com/pluqqy/shuttle/pkg/fieldpath"
	"github.com/pluqqy/shuttle/pkg/models"
)

// KeyFunc returns an identity function reading accessor from a record
func KeyFunc(accessor string) func(models.Record) string {
	return func(r models.Record) string {
		return fieldpath.Text(r, accessor)
	}
}

// FindByKeys returns the records matching keys, in keys order, and the
// keys that matched nothing
func FindByKeys(records []models.Record, keys []string, getID func(models.Record) string) (found []models.Record, missing []string) {
	index := make(map[string]models.Record, len(records))
	for _, r := range records {
		key := getID(r)
		if _, dup := index[key]; !dup {
			index[key] = r
		}
	}

	for _, key := range keys {
		if r, ok := index[key]; ok {
			found = append(found, r)
		} else {
			missing = append(missing, key)
		}
	}
	return found, missing
}

// StampIDs assigns a new ULID at accessor on every record whose key is
// empty or absent. Records are modified in place. Intermediate objects are
// created as needed; a record whose path runs through a non-object value
// is left alone. It returns the number of records stamped.
func StampIDs(records []models.Record, accessor string) int {
	segments, ok := fieldpath.Split(accessor)
	if !ok {
		return 0
	}

	stamped := 0
	for _, r := range records {
		if r == nil || fieldpath.Text(r, accessor) != "" {
			continue
		}
		if setPath(r, segments, ulid.Make().String()) {
			stamped++
		}
	}
	return stamped
}

func setPath(m map[string]any, segments []string, value any) bool {
	for _, seg := range segments[:len(segments)-1] {
		switch next := m[seg].(type) {
		case map[string]any:
			m = next
		case models.Record:
			m = next
		case nil:
			child := map[string]any{}
			m[seg] = child
			m = child
		default:
			return false
		}
	}
	m[segments[len(segments)-1]] = value
	return true
}
