// Package pdffill maps semantic document data onto PDF form fields and
// renders filled PDF artifacts, either through native AcroForm fields or a
// fixed-coordinate text overlay for flat documents.
package pdffill

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// fieldMapping translates semantic field names to the PDF form field
// identifiers of the Ontario purchase-agreement form.
var fieldMapping = map[string]string{
	// Property Information
	"property_address":  "PropertyAddress",
	"legal_description": "LegalDescription",

	// Financial Information
	"purchase_price":   "PurchasePrice",
	"deposit_amount":   "DepositAmount",
	"deposit_due_date": "DepositDueDate",
	"balance_due_date": "ClosingDate",

	// Buyer Information
	"buyer_full_name": "BuyerName",
	"buyer_address":   "BuyerAddress",
	"buyer_phone":     "BuyerPhone",
	"buyer_email":     "BuyerEmail",

	// Seller Information
	"seller_full_name": "SellerName",
	"seller_address":   "SellerAddress",
	"seller_phone":     "SellerPhone",
	"seller_email":     "SellerEmail",

	// Agent Information
	"buyer_agent_name":       "BuyerAgentName",
	"buyer_agent_brokerage":  "BuyerBrokerage",
	"seller_agent_name":      "SellerAgentName",
	"seller_agent_brokerage": "SellerBrokerage",

	// Conditions
	"financing_condition":          "FinancingCondition",
	"financing_deadline":           "FinancingDeadline",
	"inspection_condition":         "InspectionCondition",
	"inspection_deadline":          "InspectionDeadline",
	"status_certificate_condition": "StatusCertificateCondition",

	// Additional Information
	"inclusions":       "Inclusions",
	"exclusions":       "Exclusions",
	"additional_terms": "AdditionalTerms",
	"irrevocable_date": "IrrevocableDate",
	"irrevocable_time": "IrrevocableTime",
}

// FieldValue is a formatted value bound for a single PDF form field.
type FieldValue struct {
	Text    string
	Checked bool
	IsBool  bool
}

// MapFields translates a flat semantic field map into formatted values keyed
// by PDF form field identifier. Nil and empty-string entries are skipped,
// unmapped semantic keys are silently dropped, price/amount values are
// rendered as en-CA CAD currency, and date values as YYYY-MM-DD.
func MapFields(data map[string]any) map[string]FieldValue {
	out := make(map[string]FieldValue, len(data))

	for key, value := range data {
		target, ok := fieldMapping[key]
		if !ok || value == nil || value == "" {
			continue
		}

		if b, isBool := value.(bool); isBool {
			out[target] = FieldValue{Checked: b, IsBool: true, Text: strconv.FormatBool(b)}
			continue
		}

		text := stringify(value)
		switch {
		case strings.Contains(key, "price") || strings.Contains(key, "amount"):
			if n, err := toNumber(value); err == nil {
				text = FormatCurrency(n)
			}
		case strings.Contains(key, "date"):
			text = FormatDate(text)
		}
		out[target] = FieldValue{Text: text}
	}

	return out
}

var currencyPrinter = message.NewPrinter(language.MustParse("en-CA"))

// FormatCurrency renders an amount as a CAD currency string with zero
// decimal places, e.g. 800000 -> "$800,000".
func FormatCurrency(amount float64) string {
	return "$" + currencyPrinter.Sprintf("%d", int64(math.Round(amount)))
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// FormatDate normalizes a date string to YYYY-MM-DD. Unparsable input is
// returned unchanged (fails open, not closed).
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

func stringify(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		if n == math.Trunc(n) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(n, "$"), ",", "")), 64)
	}
	return 0, fmt.Errorf("not a number: %T", v)
}
