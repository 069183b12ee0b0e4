package pdffill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brokerdoc/internal/pdffill"
)

func TestMapFields_CurrencyFormatting(t *testing.T) {
	values := pdffill.MapFields(map[string]any{
		"purchase_price": 800000.0,
		"deposit_amount": "40000",
	})

	assert.Equal(t, "$800,000", values["PurchasePrice"].Text)
	assert.Equal(t, "$40,000", values["DepositAmount"].Text)
}

func TestMapFields_CurrencyWithExistingFormatting(t *testing.T) {
	values := pdffill.MapFields(map[string]any{
		"purchase_price": "$1,250,000",
	})

	assert.Equal(t, "$1,250,000", values["PurchasePrice"].Text)
}

func TestMapFields_DateNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso date", "2025-03-15", "2025-03-15"},
		{"long form", "March 15, 2025", "2025-03-15"},
		{"slash form", "03/15/2025", "2025-03-15"},
		{"unparsable passes through", "mid March sometime", "mid March sometime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := pdffill.MapFields(map[string]any{"balance_due_date": tt.input})
			assert.Equal(t, tt.want, values["ClosingDate"].Text)
		})
	}
}

func TestMapFields_UnmappedKeysDropped(t *testing.T) {
	values := pdffill.MapFields(map[string]any{
		"property_address": "123 Main St, Toronto",
		"favourite_colour": "teal",
	})

	assert.Len(t, values, 1)
	assert.Equal(t, "123 Main St, Toronto", values["PropertyAddress"].Text)
}

func TestMapFields_SkipsNilAndEmpty(t *testing.T) {
	values := pdffill.MapFields(map[string]any{
		"property_address": "",
		"buyer_full_name":  nil,
		"seller_full_name": "Pat Seller",
	})

	assert.Len(t, values, 1)
	assert.Equal(t, "Pat Seller", values["SellerName"].Text)
}

func TestMapFields_Booleans(t *testing.T) {
	values := pdffill.MapFields(map[string]any{
		"financing_condition":  true,
		"inspection_condition": false,
	})

	assert.True(t, values["FinancingCondition"].IsBool)
	assert.True(t, values["FinancingCondition"].Checked)
	assert.True(t, values["InspectionCondition"].IsBool)
	assert.False(t, values["InspectionCondition"].Checked)
}

func TestMapFields_SemanticToPDFNames(t *testing.T) {
	values := pdffill.MapFields(map[string]any{
		"buyer_full_name":  "Alex Buyer",
		"balance_due_date": "2025-06-30",
	})

	assert.Equal(t, "Alex Buyer", values["BuyerName"].Text)
	assert.Equal(t, "2025-06-30", values["ClosingDate"].Text)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$800,000", pdffill.FormatCurrency(800000))
	assert.Equal(t, "$1,000,000", pdffill.FormatCurrency(999999.6))
	assert.Equal(t, "$0", pdffill.FormatCurrency(0))
}
