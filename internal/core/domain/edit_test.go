package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryEdit_Apply(t *testing.T) {
	tests := []struct {
		name  string
		query string
		edit  QueryEdit
		want  string
	}{
		{"append to empty", "", Append("a"), "a"},
		{"append text", "ap", Append("ple"), "apple"},
		{"backspace", "apple", Backspace(), "appl"},
		{"backspace empty", "", Backspace(), ""},
		{"backspace multibyte", "café", Backspace(), "caf"},
		{"clear", "apple", Clear(), ""},
		{"replace", "apple", Replace("pear"), "pear"},
		{"unknown op", "apple", QueryEdit{Op: EditOp(99)}, "apple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.edit.Apply(tt.query))
		})
	}
}
