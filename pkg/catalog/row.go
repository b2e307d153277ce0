package catalog

import (
	"strconv"

	"github.com/amby-app/feedsync/pkg/constants"
)

// Headers is the fixed column schema of the catalog export. Column order
// and count are part of the external contract and never vary per row.
var Headers = []string{
	"handleId", "fieldType", "name", "description", "productImageUrl",
	"collection", "sku", "ribbon", "price", "surcharge", "visible",
	"discountMode", "discountValue", "productOptionName2",
	"productOptionType2", "productOptionDescription2",
}

// Row is one export record matching Headers positionally.
type Row []string

// Column indexes into a Row. The trailing three columns always describe
// the size option group.
const (
	ColHandleID = iota
	ColFieldType
	ColName
	ColDescription
	ColImageURL
	ColCollection
	ColSKU
	ColRibbon
	ColPrice
	ColSurcharge
	ColVisible
	ColDiscountMode
	ColDiscountValue
	ColOptionName
	ColOptionType
	ColOptionDescription
)

// RowFields holds the final per-row values after override resolution.
type RowFields struct {
	HandleID      string
	Name          string
	Description   string
	ImageURL      string
	Collection    string
	SKU           string
	Price         float64
	Visible       bool
	DiscountMode  string
	DiscountValue string
	Sizes         string
}

// NewRow builds an export row from resolved field values. The option
// columns are fixed to the storefront's size drop-down group.
func NewRow(f RowFields) Row {
	return Row{
		f.HandleID,
		constants.FieldTypeProduct,
		f.Name,
		f.Description,
		f.ImageURL,
		f.Collection,
		f.SKU,
		"",
		formatPrice(f.Price),
		"",
		FormatBool(f.Visible),
		f.DiscountMode,
		f.DiscountValue,
		constants.SizeOptionName,
		constants.SizeOptionType,
		f.Sizes,
	}
}

// HandleID derives the export handle from a slug.
func HandleID(slug string) string {
	return constants.HandleIDPrefix + slug
}

// FormatBool renders booleans the way the storefront import expects.
func FormatBool(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// formatPrice renders a price without a fractional part when it is whole.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
