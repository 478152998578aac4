package store

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/pluqqy/shuttle/pkg/models"
)

func decodeTOML(content []byte) ([]models.Record, error) {
	var doc map[string]any
	if _, err := toml.Decode(string(content), &doc); err != nil {
		return nil, err
	}

	items, ok := doc[ItemsKey]
	if !ok {
		return []models.Record{}, nil
	}

	switch list := items.(type) {
	case []map[string]any:
		records := make([]models.Record, len(list))
		for i, rec := range list {
			records[i] = models.Record(rec)
		}
		return records, nil
	case []any:
		return toRecords(list)
	default:
		return nil, fmt.Errorf("%w: %q must be an array of tables", ErrInvalidCollection, ItemsKey)
	}
}

func encodeTOML(records []models.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(models.Collection{Items: records}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
