//go:build !integration

package sliceutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		item     string
		expected bool
	}{
		{
			name:     "cell exists in slice",
			slice:    []string{"A1", "B2", "B3"},
			item:     "B2",
			expected: true,
		},
		{
			name:     "cell does not exist in slice",
			slice:    []string{"A1", "B2", "B3"},
			item:     "C9",
			expected: false,
		},
		{
			name:     "empty slice",
			slice:    []string{},
			item:     "A1",
			expected: false,
		},
		{
			name:     "nil slice",
			slice:    nil,
			item:     "A1",
			expected: false,
		},
		{
			name:     "empty string item exists",
			slice:    []string{"", "A1"},
			item:     "",
			expected: true,
		},
		{
			name:     "match is case sensitive",
			slice:    []string{"a1"},
			item:     "A1",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Contains(tt.slice, tt.item)
			assert.Equal(t, tt.expected, result,
				"Contains should return correct value for slice %v and item %q", tt.slice, tt.item)
		})
	}
}

func BenchmarkContains(b *testing.B) {
	slice := []string{"A1", "A2", "A3", "B1", "B2", "B3"}
	for b.Loop() {
		Contains(slice, "B1")
	}
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		expected []string
	}{
		{
			name:     "no duplicates",
			slice:    []string{"A1", "B2", "B3"},
			expected: []string{"A1", "B2", "B3"},
		},
		{
			name:     "keeps first occurrence order",
			slice:    []string{"B2", "A1", "B2", "C1", "A1"},
			expected: []string{"B2", "A1", "C1"},
		},
		{
			name:     "empty slice",
			slice:    []string{},
			expected: []string{},
		},
		{
			name:     "nil slice",
			slice:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Deduplicate(tt.slice)
			assert.Equal(t, tt.expected, result, "Deduplicate(%v)", tt.slice)
		})
	}
}

func TestDeduplicate_DoesNotModifyInput(t *testing.T) {
	input := []string{"A1", "A1", "B1"}
	_ = Deduplicate(input)
	assert.Equal(t, []string{"A1", "A1", "B1"}, input, "input slice should be left untouched")
}
