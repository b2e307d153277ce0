package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRow(t *testing.T) {
	row := NewRow(RowFields{
		HandleID:    "Product_leather-bag",
		Name:        "Leather bag",
		Description: "A bag.",
		ImageURL:    "https://storage.googleapis.com/amby/img/1.jpg",
		Collection:  "Ж_аксессуары",
		SKU:         "LB-001",
		Price:       4100,
		Visible:     true,
		Sizes:       "S;M",
	})

	require.Len(t, row, len(Headers))

	assert.Equal(t, "Product_leather-bag", row[ColHandleID])
	assert.Equal(t, "Product", row[ColFieldType])
	assert.Equal(t, "4100", row[ColPrice])
	assert.Equal(t, "TRUE", row[ColVisible])
	assert.Equal(t, "Размер", row[ColOptionName])
	assert.Equal(t, "DROP_DOWN", row[ColOptionType])
	assert.Equal(t, "S;M", row[ColOptionDescription])
	assert.Empty(t, row[ColRibbon])
	assert.Empty(t, row[ColSurcharge])
}

func TestNewRowFractionalPrice(t *testing.T) {
	row := NewRow(RowFields{Price: 4100.5})
	assert.Equal(t, "4100.5", row[ColPrice])
}

func TestHandleID(t *testing.T) {
	assert.Equal(t, "Product_leather-bag", HandleID("leather-bag"))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "TRUE", FormatBool(true))
	assert.Equal(t, "FALSE", FormatBool(false))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"latin with spaces", "Leather Bag", "leather-bag"},
		{"cyrillic", "Кожаная Сумка", "кожаная-сумка"},
		{"whitespace runs collapse", "Leather   Bag", "leather-bag"},
		{"already a slug", "leather-bag", "leather-bag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestAddSizeOption(t *testing.T) {
	var p Product
	p.AddSizeOption(SizeOption{Value: "S"})
	p.AddSizeOption(SizeOption{Value: "M"})
	p.AddSizeOption(SizeOption{Value: "S"})

	assert.Equal(t, []string{"S", "M"}, p.SizeValues())
}

func TestStockState(t *testing.T) {
	tests := []struct {
		name    string
		visible bool
		inStock bool
		want    bool
	}{
		{"visible and in stock", true, true, true},
		{"visible but out of stock", true, false, false},
		{"hidden overrides stock", false, true, false},
		{"hidden and out of stock", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Visible: tt.visible, InStock: tt.inStock}
			assert.Equal(t, tt.want, p.StockState())
		})
	}
}
