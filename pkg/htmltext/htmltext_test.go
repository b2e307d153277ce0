package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "plain text passes through",
			fragment: "Кожаная сумка",
			want:     "Кожаная сумка",
		},
		{
			name:     "paragraphs become newlines",
			fragment: "<p>First</p><p>Second</p>",
			want:     "First\nSecond",
		},
		{
			name:     "br becomes newline",
			fragment: "First<br>Second<br/>Third",
			want:     "First\nSecond\nThird",
		},
		{
			name:     "nested markup is flattened",
			fragment: "<p>Made of <strong>leather</strong></p>",
			want:     "Made of leather",
		},
		{
			name:     "nbsp decodes to space",
			fragment: "Size:&nbsp;M",
			want:     "Size: M",
		},
		{
			name:     "empty fragment",
			fragment: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.fragment))
		})
	}
}

func TestCollapseNewlines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"runs collapse", "a\n\n\nb", "a\nb"},
		{"leading newline trimmed", "\na\nb", "a\nb"},
		{"single newlines untouched", "a\nb", "a\nb"},
		{"no newlines", "ab", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseNewlines(tt.in))
		})
	}
}
