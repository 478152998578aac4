package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pluqqy/shuttle/pkg/models"
)

func TestValidate(t *testing.T) {
	available := []models.Record{
		{"id": "a"},
		{"id": "b"},
		{"id": "a"},
		{"name": "no key"},
	}
	selected := []models.Record{
		{"id": "b"},
		{"id": "b"},
		{"id": "z"},
	}

	problems := Validate(available, selected, KeyFunc("id"))

	assert.Equal(t, []Problem{
		{Kind: ProblemDuplicateKey, Side: models.SideLeft, Index: 2, Key: "a"},
		{Kind: ProblemEmptyKey, Side: models.SideLeft, Index: 3},
		{Kind: ProblemDuplicateKey, Side: models.SideRight, Index: 1, Key: "b"},
		{Kind: ProblemNotAvailable, Side: models.SideRight, Index: 2, Key: "z"},
	}, problems)
}

func TestValidateClean(t *testing.T) {
	available := []models.Record{{"id": "a"}, {"id": "b"}}
	selected := []models.Record{{"id": "b"}}

	assert.Empty(t, Validate(available, selected, KeyFunc("id")))
}

func TestProblemString(t *testing.T) {
	tests := []struct {
		problem Problem
		want    string
	}{
		{Problem{Kind: ProblemEmptyKey, Side: models.SideLeft, Index: 0}, "left item 1 has no key"},
		{Problem{Kind: ProblemDuplicateKey, Side: models.SideRight, Index: 2, Key: "x"}, `right item 3 repeats key "x"`},
		{Problem{Kind: ProblemNotAvailable, Side: models.SideRight, Index: 0, Key: "z"}, `right item 1 key "z" is not available`},
	}
	for _, tt := range tests {
		t.Run(string(tt.problem.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.problem.String())
		})
	}
}
