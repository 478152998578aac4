package store

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/shuttle/pkg/models"
)

func decodeYAML(content []byte) ([]models.Record, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}

	switch root := doc.(type) {
	case nil:
		return []models.Record{}, nil
	case []any:
		return toRecords(root)
	case map[string]any:
		items, ok := root[ItemsKey]
		if !ok || items == nil {
			return []models.Record{}, nil
		}
		list, ok := items.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q must be a list", ErrInvalidCollection, ItemsKey)
		}
		return toRecords(list)
	default:
		return nil, fmt.Errorf("%w: expected a list or a mapping with %q", ErrInvalidCollection, ItemsKey)
	}
}

func encodeYAML(records []models.Record) ([]byte, error) {
	return yaml.Marshal(models.Collection{Items: records})
}
