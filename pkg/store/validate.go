package store

import (
	"fmt"

	"github.com/pluqqy/shuttle/pkg/models"
)

// ProblemKind classifies a contract violation found in collections
type ProblemKind string

const (
	ProblemEmptyKey     ProblemKind = "empty_key"
	ProblemDuplicateKey ProblemKind = "duplicate_key"
	ProblemNotAvailable ProblemKind = "not_available"
)

// Problem is one violation of the identity contract
type Problem struct {
	Kind  ProblemKind `json:"kind" yaml:"kind"`
	Side  models.Side `json:"side" yaml:"side"`
	Index int         `json:"index" yaml:"index"`
	Key   string      `json:"key" yaml:"key"`
}

func (p Problem) String() string {
	switch p.Kind {
	case ProblemEmptyKey:
		return fmt.Sprintf("%s item %d has no key", p.Side, p.Index+1)
	case ProblemDuplicateKey:
		return fmt.Sprintf("%s item %d repeats key %q", p.Side, p.Index+1, p.Key)
	case ProblemNotAvailable:
		return fmt.Sprintf("%s item %d key %q is not available", p.Side, p.Index+1, p.Key)
	default:
		return string(p.Kind)
	}
}

// Validate checks that every key is non-empty and unique per side, and
// that every selected key exists among available keys
func Validate(available, selected []models.Record, getID func(models.Record) string) []Problem {
	var problems []Problem

	availableKeys := checkSide(models.SideLeft, available, getID, &problems)
	checkSide(models.SideRight, selected, getID, &problems)

	for i, r := range selected {
		key := getID(r)
		if key == "" {
			continue
		}
		if _, ok := availableKeys[key]; !ok {
			problems = append(problems, Problem{Kind: ProblemNotAvailable, Side: models.SideRight, Index: i, Key: key})
		}
	}
	return problems
}

func checkSide(side models.Side, records []models.Record, getID func(models.Record) string, problems *[]Problem) map[string]struct{} {
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		key := getID(r)
		if key == "" {
			*problems = append(*problems, Problem{Kind: ProblemEmptyKey, Side: side, Index: i})
			continue
		}
		if _, dup := seen[key]; dup {
			*problems = append(*problems, Problem{Kind: ProblemDuplicateKey, Side: side, Index: i, Key: key})
			continue
		}
		seen[key] = struct{}{}
	}
	return seen
}
