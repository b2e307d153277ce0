package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateCategories(t *testing.T) {
	dict := SizeTemplates()

	tests := []struct {
		name       string
		categories []string
		want       []string
	}{
		{
			name:       "known categories keep order",
			categories: []string{"Для женщин", "Ж_плечевая"},
			want:       []string{"100F", "TOPSIZEF"},
		},
		{
			name:       "unknown categories yield nothing",
			categories: []string{"Новинки", "Распродажа"},
			want:       nil,
		},
		{
			name:       "mixed known and unknown",
			categories: []string{"Новинки", "М_обувь"},
			want:       []string{"BOTSIZEM"},
		},
		{
			name:       "empty input",
			categories: nil,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateCategories(tt.categories, dict))
		})
	}
}

func TestGenerateTags(t *testing.T) {
	tests := []struct {
		name      string
		templates []string
		sizes     []string
		want      []string
	}{
		{
			name:      "numeric sizes substitute into numeric template",
			templates: []string{"100F"},
			sizes:     []string{"36", "38"},
			want:      []string{"36F", "38F"},
		},
		{
			name:      "letter sizes substitute into string template",
			templates: []string{"TOPSIZEF"},
			sizes:     []string{"S", "M"},
			want:      []string{"TOPSF", "TOPMF"},
		},
		{
			name:      "one size choice wins over everything",
			templates: []string{"100F"},
			sizes:     []string{"One Size"},
			want:      []string{"*F"},
		},
		{
			name:      "star template wins over numeric sizes",
			templates: []string{"*F", "100F"},
			sizes:     []string{"36"},
			want:      []string{"*F"},
		},
		{
			name:      "cyrillic M size is normalized",
			templates: []string{"TOPSIZEM"},
			sizes:     []string{"М"},
			want:      []string{"TOPMM"},
		},
		{
			name:      "numeric sizes without numeric template yield nothing",
			templates: []string{"TOPSIZEF"},
			sizes:     []string{"36"},
			want:      nil,
		},
		{
			name:      "no templates yield nothing",
			templates: nil,
			sizes:     []string{"36"},
			want:      nil,
		},
		{
			name:      "no sizes yield nothing",
			templates: []string{"100F"},
			sizes:     nil,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateTags(tt.templates, tt.sizes))
		})
	}
}

func TestSplitSizeChoices(t *testing.T) {
	tests := []struct {
		name    string
		choices []string
		want    []string
	}{
		{
			name:    "plain choices pass through",
			choices: []string{"36", "38"},
			want:    []string{"36", "38"},
		},
		{
			name:    "composite choices flatten",
			choices: []string{"36/38", "40"},
			want:    []string{"36", "38", "40"},
		},
		{
			name:    "duplicates collapse in insertion order",
			choices: []string{"36/38", "38/40"},
			want:    []string{"36", "38", "40"},
		},
		{
			name:    "empty input",
			choices: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSizeChoices(tt.choices))
		})
	}
}
